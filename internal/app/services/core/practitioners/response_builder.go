package practitioners

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/dto/responses"
	"time"
)

// BuildResponse maps a practitioner onto its API shape. The profile image
// URL is presigned best-effort: a storage failure leaves the field empty
// instead of failing the request.
func BuildResponse(ctx context.Context, practitioner *models.Practitioner, storage contracts.StorageService, presignExpiry time.Duration) responses.PractitionerResponse {
	response := responses.PractitionerResponse{
		ID:            practitioner.ID.Hex(),
		FullName:      practitioner.FullName(),
		Specialties:   practitioner.Specialties,
		AverageRating: practitioner.AverageRating,
		Bio:           practitioner.Bio,
		Languages:     practitioner.Languages,
		Gender:        practitioner.Gender,
		Education:     practitioner.Education,
		WorkingHours:  practitioner.WorkingHours,
	}

	if practitioner.ProfileImageKey != "" && storage != nil {
		url, err := storage.PresignedGetURL(ctx, practitioner.ProfileImageKey, presignExpiry)
		if err == nil {
			response.ProfileImageURL = url
		}
	}
	return response
}
