package contracts

import (
	"context"
	"mindmatch-service/internal/pkg/dto/responses"
)

type MatchingUsecase interface {
	GetResults(ctx context.Context, intakeKey string) (*responses.MatchingResultsResponse, error)
}
