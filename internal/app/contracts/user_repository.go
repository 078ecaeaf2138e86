package contracts

import (
	"context"
	"mindmatch-service/internal/app/models"
	"time"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// ConsumeFreeTrial flips has_used_free_trial from false to true.
	// Returns false when the trial was already consumed.
	ConsumeFreeTrial(ctx context.Context, userID string) (bool, error)
	// ConsumeSessionCredit decrements remaining_sessions when it is
	// still positive. Returns false when no credit was available.
	ConsumeSessionCredit(ctx context.Context, userID string) (bool, error)
	RefundSessionCredit(ctx context.Context, userID string) error
	ApplySubscription(ctx context.Context, userID, plan string, sessions int, expiry time.Time, phoneNumber string) error
}
