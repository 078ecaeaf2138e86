package models

import (
	"mindmatch-service/internal/pkg/constvars"
	"time"
)

type SubscriptionPlan struct {
	Name     string
	Sessions int
	Duration time.Duration
}

var subscriptionPlans = map[string]SubscriptionPlan{
	constvars.SubscriptionPlanStandard:  {Name: constvars.SubscriptionPlanStandard, Sessions: 1, Duration: 30 * 24 * time.Hour},
	constvars.SubscriptionPlanAdvanced:  {Name: constvars.SubscriptionPlanAdvanced, Sessions: 2, Duration: 30 * 24 * time.Hour},
	constvars.SubscriptionPlanIntensive: {Name: constvars.SubscriptionPlanIntensive, Sessions: 4, Duration: 30 * 24 * time.Hour},
}

func SubscriptionPlanByName(name string) (SubscriptionPlan, bool) {
	plan, ok := subscriptionPlans[name]
	return plan, ok
}
