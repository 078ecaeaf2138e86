package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	FullName     string             `bson:"full_name" json:"full_name"`
	PhoneNumber  string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`

	HasUsedFreeTrial   bool       `bson:"has_used_free_trial" json:"has_used_free_trial"`
	SubscriptionPlan   string     `bson:"subscription_plan,omitempty" json:"subscription_plan,omitempty"`
	RemainingSessions  int        `bson:"remaining_sessions" json:"remaining_sessions"`
	SubscriptionExpiry *time.Time `bson:"subscription_expiry,omitempty" json:"subscription_expiry,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) HasActiveSubscription(now time.Time) bool {
	return u.SubscriptionExpiry != nil && u.SubscriptionExpiry.After(now)
}

// CanBook reports whether the user holds any booking credit: an unused
// free trial, or an active subscription with sessions left.
func (u *User) CanBook(now time.Time) bool {
	if !u.HasUsedFreeTrial {
		return true
	}
	return u.HasActiveSubscription(now) && u.RemainingSessions > 0
}
