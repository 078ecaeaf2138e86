package controllers

import (
	"context"
	"mindmatch-service/internal/app/contracts"
	"mindmatch-service/internal/pkg/constvars"
	"mindmatch-service/internal/pkg/exceptions"
	"mindmatch-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type MatchingController struct {
	Log             *zap.Logger
	MatchingUsecase contracts.MatchingUsecase
}

func NewMatchingController(logger *zap.Logger, matchingUsecase contracts.MatchingUsecase) *MatchingController {
	return &MatchingController{
		Log:             logger,
		MatchingUsecase: matchingUsecase,
	}
}

// GetResults serves the practitioner recommendations for a finished
// questionnaire. Guests are told to sign in first; their answers stay
// stored under the anonymous intake key in the meantime.
func (ctrl *MatchingController) GetResults(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MatchingController.GetResults requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	intakeKey, ok := r.Context().Value(constvars.CONTEXT_INTAKE_KEY).(string)
	if !ok {
		ctrl.Log.Error("MatchingController.GetResults intakeKey not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingIntakeKey(nil))
		return
	}

	if isGuest, found := r.Context().Value(constvars.CONTEXT_IS_GUEST_KEY).(bool); !found || isGuest {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrResultsRequireAccount(nil))
		return
	}

	ctrl.Log.Info("MatchingController.GetResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingIntakeKeyKey, intakeKey))

	ctx, cancel := context.WithTimeout(contextWithRequestID(requestID), 10*time.Second)
	defer cancel()

	response, err := ctrl.MatchingUsecase.GetResults(ctx, intakeKey)
	if err != nil {
		ctrl.Log.Error("MatchingController.GetResults MatchingUsecase.GetResults error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))

		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MatchingController.GetResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SuccessGetMatchingResults, response)
}
