package models

import "time"

// NotificationMessage is the payload published to the notification queue
// after booking state changes. Delivery is fire-and-forget.
type NotificationMessage struct {
	Type             string    `json:"type"`
	UserID           string    `json:"user_id"`
	PractitionerID   string    `json:"practitioner_id"`
	AppointmentID    string    `json:"appointment_id"`
	AppointmentDate  string    `json:"appointment_date"`
	AppointmentTime  string    `json:"appointment_time"`
	PractitionerName string    `json:"practitioner_name,omitempty"`
	SentAt           time.Time `json:"sent_at"`
}
