package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
