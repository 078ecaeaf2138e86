package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanBook(t *testing.T) {
	now := time.Now()
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	fresh := &User{}
	assert.True(t, fresh.CanBook(now), "an unused free trial always allows booking")

	spent := &User{HasUsedFreeTrial: true}
	assert.False(t, spent.CanBook(now))

	subscribed := &User{HasUsedFreeTrial: true, RemainingSessions: 2, SubscriptionExpiry: &future}
	assert.True(t, subscribed.CanBook(now))

	drained := &User{HasUsedFreeTrial: true, RemainingSessions: 0, SubscriptionExpiry: &future}
	assert.False(t, drained.CanBook(now), "credits on an active subscription must be positive")

	expired := &User{HasUsedFreeTrial: true, RemainingSessions: 2, SubscriptionExpiry: &past}
	assert.False(t, expired.CanBook(now), "remaining credits die with the subscription")
}

func TestSubscriptionPlanByName(t *testing.T) {
	testCases := []struct {
		name     string
		sessions int
	}{
		{"standard", 1},
		{"advanced", 2},
		{"intensive", 4},
	}
	for _, tc := range testCases {
		plan, ok := SubscriptionPlanByName(tc.name)
		assert.True(t, ok)
		assert.Equal(t, tc.sessions, plan.Sessions)
		assert.Equal(t, 30*24*time.Hour, plan.Duration)
	}

	_, ok := SubscriptionPlanByName("platinum")
	assert.False(t, ok)
}
