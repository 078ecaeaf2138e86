package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
)

type PractitionerRepository interface {
	FindAll(ctx context.Context) ([]models.Practitioner, error)
	FindByID(ctx context.Context, practitionerID string) (*models.Practitioner, error)
	FindBySpecialty(ctx context.Context, specialty string) ([]models.Practitioner, error)
}
