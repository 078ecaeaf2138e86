package contracts

import (
	"context"
	"mindmatch-service/internal/pkg/dto/responses"
)

type PractitionerUsecase interface {
	GetAll(ctx context.Context) ([]responses.PractitionerResponse, error)
	GetByID(ctx context.Context, practitionerID string) (*responses.PractitionerResponse, error)
	GetAvailability(ctx context.Context, practitionerID, date string) (*responses.AvailabilityResponse, error)
}
