package middlewares

import (
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	SessionService contracts.SessionService
	Log            *zap.Logger
	JWTSecret      string
}

func NewMiddlewares(sessionService contracts.SessionService, internalConfig *config.InternalConfig, logger *zap.Logger) *Middlewares {
	return &Middlewares{
		SessionService: sessionService,
		Log:            logger,
		JWTSecret:      internalConfig.JWT.Secret,
	}
}
