package controllers

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PractitionerController struct {
	Log                 *zap.Logger
	PractitionerUsecase contracts.PractitionerUsecase
}

func NewPractitionerController(logger *zap.Logger, practitionerUsecase contracts.PractitionerUsecase) *PractitionerController {
	return &PractitionerController{
		Log:                 logger,
		PractitionerUsecase: practitionerUsecase,
	}
}

func (ctrl *PractitionerController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("PractitionerController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("PractitionerController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.GetAll(ctx)
	if err != nil {
		ctrl.Log.Error("PractitionerController.FindAll PractitionerUsecase.GetAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PractitionerController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetPractitioners, response)
}

func (ctrl *PractitionerController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("PractitionerController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	practitionerID := chi.URLParam(r, "practitionerID")
	if practitionerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "practitionerID"))
		return
	}

	ctrl.Log.Info("PractitionerController.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.GetByID(ctx, practitionerID)
	if err != nil {
		ctrl.Log.Error("PractitionerController.FindByID PractitionerUsecase.GetByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PractitionerController.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetPractitioner, response)
}

func (ctrl *PractitionerController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("PractitionerController.GetAvailability requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	practitionerID := chi.URLParam(r, "practitionerID")
	if practitionerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "practitionerID"))
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "date"))
		return
	}

	ctrl.Log.Info("PractitionerController.GetAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPractitionerIDKey, practitionerID),
		zap.String(constvars.LoggingDateKey, date))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.PractitionerUsecase.GetAvailability(ctx, practitionerID, date)
	if err != nil {
		ctrl.Log.Error("PractitionerController.GetAvailability PractitionerUsecase.GetAvailability error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PractitionerController.GetAvailability succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotCountKey, len(response.Slots)))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetAvailability, response)
}
