package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	FindByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	// FindActiveByPractitionerAndDate returns non-cancelled appointments
	// of a practitioner on a "YYYY-MM-DD" date.
	FindActiveByPractitionerAndDate(ctx context.Context, practitionerID, date string) ([]models.Appointment, error)
	ExistsActiveSlot(ctx context.Context, practitionerID, date, timeSlot string) (bool, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	Delete(ctx context.Context, appointmentID string) error
}
