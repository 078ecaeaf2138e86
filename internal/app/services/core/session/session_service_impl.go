package session

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var (
	sessionServiceInstance contracts.SessionService
	onceSessionService     sync.Once
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
}

func NewSessionService(redisRepository contracts.RedisRepository, logger *zap.Logger) contracts.SessionService {
	onceSessionService.Do(func() {
		sessionServiceInstance = &sessionService{
			RedisRepository: redisRepository,
			Log:             logger,
		}
	})
	return sessionServiceInstance
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	return s.RedisRepository.Set(ctx, constvars.RedisSessionKeyPrefix+session.SessionID, session, ttl)
}

func (s *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.GetSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	data, err := s.RedisRepository.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrInvalidSession(err)
	}
	return &session, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("sessionService.DeleteSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return s.RedisRepository.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
