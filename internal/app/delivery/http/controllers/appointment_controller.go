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

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.sessionContext(w, r, "CreateAppointment")
	if !ok {
		return
	}

	request := &requests.CreateAppointmentRequest{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingPractitionerIDKey, request.PractitionerID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.String(constvars.LoggingTimeKey, request.Time))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment AppointmentUsecase.CreateAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID))
	utils.BuildSuccessResponse(w, http.StatusCreated, constvars.SuccessCreateAppointment, response)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.sessionContext(w, r, "FindAll")
	if !ok {
		return
	}

	scope := r.URL.Query().Get("scope")
	if scope != "" && scope != constvars.AppointmentScopeUpcoming && scope != constvars.AppointmentScopePast {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "scope"))
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.GetAppointments(ctx, session, scope)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll AppointmentUsecase.GetAppointments error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetAppointments, response)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.sessionContext(w, r, "CancelAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "appointmentID"))
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CancelAppointment(ctx, session, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CancelAppointment AppointmentUsecase.CancelAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessCancelAppointment, response)
}

func (ctrl *AppointmentController) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.sessionContext(w, r, "CompleteAppointment")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, "appointmentID")
	if appointmentID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, "appointmentID"))
		return
	}

	ctrl.Log.Info("AppointmentController.CompleteAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.CompleteAppointment(ctx, session, appointmentID)
	if err != nil {
		ctrl.Log.Error("AppointmentController.CompleteAppointment AppointmentUsecase.CompleteAppointment error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.CompleteAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessCompleteAppointment, response)
}

func (ctrl *AppointmentController) sessionContext(w http.ResponseWriter, r *http.Request, handler string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController." + handler + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AppointmentController."+handler+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}
	return requestID, session, true
}
