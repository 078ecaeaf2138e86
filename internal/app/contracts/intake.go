package contracts

import (
	"context"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
)

type IntakeUsecase interface {
	SubmitStep(ctx context.Context, intakeKey string, authenticated bool, request *requests.SubmitIntakeStepRequest) (*responses.SubmitIntakeStepResponse, error)
	Back(ctx context.Context, intakeKey string) (*responses.IntakeProgressResponse, error)
	Reset(ctx context.Context, intakeKey string) error
	GetProgress(ctx context.Context, intakeKey string) (*responses.IntakeProgressResponse, error)
}
