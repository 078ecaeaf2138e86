package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
)

type SubscriptionUsecase interface {
	Subscribe(ctx context.Context, session *models.Session, request *requests.CreateSubscriptionRequest) (*responses.SubscriptionResponse, error)
}
