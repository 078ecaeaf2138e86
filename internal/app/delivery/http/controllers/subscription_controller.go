package controllers

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/app/models"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SubscriptionController struct {
	Log                 *zap.Logger
	SubscriptionUsecase contracts.SubscriptionUsecase
}

func NewSubscriptionController(logger *zap.Logger, subscriptionUsecase contracts.SubscriptionUsecase) *SubscriptionController {
	return &SubscriptionController{
		Log:                 logger,
		SubscriptionUsecase: subscriptionUsecase,
	}
}

func (ctrl *SubscriptionController) Subscribe(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("SubscriptionController.Subscribe requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("SubscriptionController.Subscribe sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := &requests.CreateSubscriptionRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("SubscriptionController.Subscribe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPlanKey, request.Plan))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.SubscriptionUsecase.Subscribe(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("SubscriptionController.Subscribe SubscriptionUsecase.Subscribe error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SubscriptionController.Subscribe succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPlanKey, response.Plan))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessCreateSubscription, response)
}
