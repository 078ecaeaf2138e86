package contracts

import (
	"context"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterRequest) (*responses.AuthResponse, error)
	Login(ctx context.Context, request *requests.LoginRequest) (*responses.AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
}
