package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, session *models.Session, request *requests.CreateAppointmentRequest) (*responses.AppointmentResponse, error)
	GetAppointments(ctx context.Context, session *models.Session, scope string) ([]responses.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.AppointmentResponse, error)
}
