package responses

import "time"

type SubscriptionResponse struct {
	Plan               string     `json:"plan"`
	RemainingSessions  int        `json:"remaining_sessions"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
}
