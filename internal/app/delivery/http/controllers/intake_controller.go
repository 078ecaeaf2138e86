package controllers

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/dto/requests"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeController struct {
	Log           *zap.Logger
	IntakeUsecase contracts.IntakeUsecase
}

func NewIntakeController(logger *zap.Logger, intakeUsecase contracts.IntakeUsecase) *IntakeController {
	return &IntakeController{
		Log:           logger,
		IntakeUsecase: intakeUsecase,
	}
}

func (ctrl *IntakeController) SubmitStep(w http.ResponseWriter, r *http.Request) {
	requestID, intakeKey, isGuest, ok := ctrl.intakeContext(w, r, "SubmitStep")
	if !ok {
		return
	}

	request := &requests.SubmitIntakeStepRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("IntakeController.SubmitStep called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey),
		zap.Int(constvars.LoggingStepKey, request.Step))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.IntakeUsecase.SubmitStep(ctx, intakeKey, !isGuest, request)
	if err != nil {
		ctrl.Log.Error("IntakeController.SubmitStep IntakeUsecase.SubmitStep error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeController.SubmitStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNextStepKey, response.NextStep))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessSubmitIntakeStep, response)
}

func (ctrl *IntakeController) Back(w http.ResponseWriter, r *http.Request) {
	requestID, intakeKey, _, ok := ctrl.intakeContext(w, r, "Back")
	if !ok {
		return
	}

	ctrl.Log.Info("IntakeController.Back called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.IntakeUsecase.Back(ctx, intakeKey)
	if err != nil {
		ctrl.Log.Error("IntakeController.Back IntakeUsecase.Back error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeController.Back succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepKey, response.CurrentStep))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessIntakeBack, response)
}

func (ctrl *IntakeController) Reset(w http.ResponseWriter, r *http.Request) {
	requestID, intakeKey, _, ok := ctrl.intakeContext(w, r, "Reset")
	if !ok {
		return
	}

	ctrl.Log.Info("IntakeController.Reset called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	if err := ctrl.IntakeUsecase.Reset(ctx, intakeKey); err != nil {
		ctrl.Log.Error("IntakeController.Reset IntakeUsecase.Reset error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeController.Reset succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessIntakeReset, nil)
}

func (ctrl *IntakeController) GetProgress(w http.ResponseWriter, r *http.Request) {
	requestID, intakeKey, _, ok := ctrl.intakeContext(w, r, "GetProgress")
	if !ok {
		return
	}

	ctrl.Log.Info("IntakeController.GetProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.IntakeUsecase.GetProgress(ctx, intakeKey)
	if err != nil {
		ctrl.Log.Error("IntakeController.GetProgress IntakeUsecase.GetProgress error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("IntakeController.GetProgress succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepKey, response.CurrentStep))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetIntakeProgress, response)
}

func (ctrl *IntakeController) intakeContext(w http.ResponseWriter, r *http.Request, handler string) (requestID, intakeKey string, isGuest, ok bool) {
	requestID, found := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !found {
		ctrl.Log.Error("IntakeController." + handler + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", "", false, false
	}

	intakeKey, found = r.Context().Value(constvars.CONTEXT_INTAKE_KEY).(string)
	if !found {
		ctrl.Log.Error("IntakeController."+handler+" intakeKey not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIntakeKey(nil))
		return "", "", false, false
	}

	isGuest, found = r.Context().Value(constvars.CONTEXT_IS_GUEST_KEY).(bool)
	if !found {
		isGuest = true
	}
	return requestID, intakeKey, isGuest, true
}
