package responses

import "time"

type AppointmentResponse struct {
	ID               string    `json:"id"`
	PractitionerID   string    `json:"practitioner_id"`
	PractitionerName string    `json:"practitioner_name,omitempty"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
