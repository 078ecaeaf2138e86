package subscriptions

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/dto/responses"
	"mindmatch-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	subscriptionUsecaseInstance contracts.SubscriptionUsecase
	onceSubscriptionUsecase     sync.Once
)

type subscriptionUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewSubscriptionUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.SubscriptionUsecase {
	onceSubscriptionUsecase.Do(func() {
		subscriptionUsecaseInstance = &subscriptionUsecase{
			UserRepository: userRepository,
			Log:            logger,
		}
	})
	return subscriptionUsecaseInstance
}

func (uc *subscriptionUsecase) Subscribe(ctx context.Context, session *models.Session, request *requests.CreateSubscriptionRequest) (*responses.SubscriptionResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("subscriptionUsecase.Subscribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPlanKey, request.Plan),
	)

	plan, ok := models.SubscriptionPlanByName(request.Plan)
	if !ok {
		return nil, exceptions.ErrSubscriptionUnknownPlan(nil, request.Plan)
	}

	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	expiry := time.Now().Add(plan.Duration)
	err = uc.UserRepository.ApplySubscription(ctx, session.UserID, plan.Name, plan.Sessions, expiry, request.PhoneNumber)
	if err != nil {
		uc.Log.Error("subscriptionUsecase.Subscribe error applying subscription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("subscriptionUsecase.Subscribe succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPlanKey, plan.Name),
	)
	return &responses.SubscriptionResponse{
		Plan:               plan.Name,
		RemainingSessions:  plan.Sessions,
		SubscriptionExpiry: &expiry,
	}, nil
}
