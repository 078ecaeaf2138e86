package auth

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	SessionService contracts.SessionService
	Log            *zap.Logger
	JWTSecret      string
	SessionTTL     time.Duration
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	sessionService contracts.SessionService,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			SessionService: sessionService,
			Log:            logger,
			JWTSecret:      internalConfig.JWT.Secret,
			SessionTTL:     time.Duration(internalConfig.App.SessionExpiryInHours) * time.Hour,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterRequest) (*responses.AuthResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Email:        request.Email,
		PasswordHash: hash,
		FullName:     request.FullName,
	}
	user, err = uc.UserRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return uc.issueSession(ctx, user)
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginRequest) (*responses.AuthResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.PasswordHash) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	return uc.issueSession(ctx, user)
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) issueSession(ctx context.Context, user *models.User) (*responses.AuthResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID.Hex(),
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      constvars.MindMatchRoleMember,
	}
	if err := uc.SessionService.CreateSession(ctx, session, uc.SessionTTL); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.JWTSecret, uc.SessionTTL)
	if err != nil {
		uc.Log.Error("authUsecase.issueSession error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.issueSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &responses.AuthResponse{Token: token}, nil
}
