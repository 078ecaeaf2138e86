package contracts

import (
	"context"
	"time"
)

type StorageService interface {
	PresignedGetURL(ctx context.Context, objectKey string, expiry time.Duration) (string, error)
}
