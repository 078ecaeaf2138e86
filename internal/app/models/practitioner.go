package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Practitioner working hours are keyed by lowercase English weekday name
// ("monday".."sunday") with a "HH:MM-HH:MM" window, or "unavailable".
type Practitioner struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FirstName       string             `bson:"first_name" json:"first_name"`
	LastName        string             `bson:"last_name" json:"last_name"`
	Specialties     []string           `bson:"specialties" json:"specialties"`
	WorkingHours    map[string]string  `bson:"working_hours" json:"working_hours"`
	AverageRating   *float64           `bson:"average_rating,omitempty" json:"average_rating,omitempty"`
	Bio             string             `bson:"bio,omitempty" json:"bio,omitempty"`
	Languages       []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Gender          string             `bson:"gender,omitempty" json:"gender,omitempty"`
	Education       string             `bson:"education,omitempty" json:"education,omitempty"`
	ProfileImageKey string             `bson:"profile_image_key,omitempty" json:"-"`
}

func (p *Practitioner) FullName() string {
	return p.FirstName + " " + p.LastName
}

// RatingOrDefault orders unrated practitioners after every rated one.
func (p *Practitioner) RatingOrDefault() float64 {
	if p.AverageRating == nil {
		return -1
	}
	return *p.AverageRating
}
