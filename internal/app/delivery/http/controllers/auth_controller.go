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

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AuthController.Register requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AuthController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := &requests.RegisterRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Register(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Register AuthUsecase.Register error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, http.StatusCreated, constvars.SuccessRegister, response)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AuthController.Login requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := &requests.LoginRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login AuthUsecase.Login error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessLogin, response)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AuthController.Logout requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AuthController.Logout sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, session.SessionID); err != nil {
		ctrl.Log.Error("AuthController.Logout AuthUsecase.Logout error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AuthController.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessLogout, nil)
}

// contextWithRequestID carries the request ID into the usecase-facing
// context built per handler.
func contextWithRequestID(requestID string) context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}
