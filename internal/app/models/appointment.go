package models

import (
	"mindmatch-service/internal/pkg/utils"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID         primitive.ObjectID `bson:"user_id" json:"user_id"`
	PractitionerID primitive.ObjectID `bson:"practitioner_id" json:"practitioner_id"`
	Date           string             `bson:"date" json:"date"`
	Time           string             `bson:"time" json:"time"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// StartsBefore reports whether the appointment slot is already in the past
// relative to the given instant.
func (a *Appointment) StartsBefore(now time.Time, loc *time.Location) bool {
	start, err := utils.CombineDateTime(a.Date, a.Time, loc)
	if err != nil {
		return false
	}
	return start.Before(now)
}
