package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
)

type NotificationQueueService interface {
	Publish(ctx context.Context, message *models.NotificationMessage) error
}
