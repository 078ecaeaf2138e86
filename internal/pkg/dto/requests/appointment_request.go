package requests

type CreateAppointmentRequest struct {
	PractitionerID string `json:"practitioner_id" validate:"required"`
	Date           string `json:"date" validate:"required,appointment_date"`
	Time           string `json:"time" validate:"required,appointment_time"`
}
