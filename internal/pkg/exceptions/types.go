package exceptions

import (
	"fmt"
	"mindmatch-service/internal/pkg/constvars"
	"net/http"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseDate)
	}
	ErrCannotParseTime = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseTime)
	}
	ErrBuildRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildRequest)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}
	ErrMissingSessionData = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevMissingSessionData)
	}
	ErrMissingIntakeKey = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingIntakeKey)
	}

	// Auth
	ErrHashPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFailedToHashPassword)
	}
	ErrInvalidEmailOrPassword = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientInvalidEmailOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrEmailAlreadyExist = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevEmailAlreadyExists)
	}
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthGenerateToken)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}
	ErrInvalidSession = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthInvalidSession)
	}

	// Not found
	ErrUserNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientUserNotFound, constvars.ErrDevUserNotExists)
	}
	ErrPractitionerNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientPractitionerNotFound, constvars.ErrDevPractitionerNotExists)
	}
	ErrAppointmentNotExist = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusNotFound, constvars.ErrClientAppointmentNotFound, constvars.ErrDevAppointmentNotExists)
	}

	// Authorization
	ErrNotAppointmentOwner = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevNotAppointmentOwner)
	}
	ErrNotAppointmentPractitioner = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientNotAuthorized, constvars.ErrDevNotAppointmentPractitioner)
	}
	ErrResultsRequireAccount = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientResultsRequireAccount, constvars.ErrDevResultsPendingAuthentication)
	}

	// Booking
	ErrSlotConflict = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientSlotAlreadyBooked, constvars.ErrDevSlotAlreadyBooked)
	}
	ErrNoSessionCredits = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusPaymentRequired, constvars.ErrClientNoSessionCredits, constvars.ErrDevNoSessionCredits)
	}
	ErrBookingRequiresAccount = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusForbidden, constvars.ErrClientBookingRequiresAccount, constvars.ErrDevBookingRequiresAccount)
	}
	ErrOutsideWorkingHours = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusUnprocessableEntity, constvars.ErrClientOutsideWorkingHours, constvars.ErrDevOutsideWorkingHours)
	}
	ErrAppointmentNotCancellable = func(err error, currentStatus string) *CustomError {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientAppointmentNotCancellable, fmt.Sprintf(constvars.ErrDevAppointmentStateNotPlanned, currentStatus))
	}
	ErrAppointmentNotCompletable = func(err error, currentStatus string) *CustomError {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientAppointmentNotCompletable, fmt.Sprintf(constvars.ErrDevAppointmentStateNotPlanned, currentStatus))
	}

	// Intake
	ErrIntakeStepOutOfRange = func(err error, step int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeStepOutOfRange, step))
	}
	ErrIntakeAnswerNotAllowed = func(err error, step int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeAnswerNotAllowed, step))
	}
	ErrIntakeTooManySelections = func(err error, step, max int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeTooManySelections, step, max))
	}
	ErrIntakeAnswerTooLong = func(err error, step, max int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeAnswerTooLong, step, max))
	}
	ErrIntakeAnswerOutOfRange = func(err error, step, min, max int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeAnswerOutOfRange, step, min, max))
	}
	ErrIntakeAnswerWrongKind = func(err error, step int) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientInvalidIntakeStep, fmt.Sprintf(constvars.ErrDevIntakeAnswerWrongKind, step))
	}

	// Subscription
	ErrSubscriptionUnknownPlan = func(err error, plan string) *CustomError {
		return BuildNewCustomError(err, http.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevSubscriptionUnknownPlan, plan))
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrMongoDBIterateDocuments = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToIterateDocuments)
	}
	ErrMongoDBNotObjectID = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBStringNotObjectID)
	}

	// Redis
	ErrRedisSetData = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSetData)
	}
	ErrRedisGetData = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToGetData)
	}
	ErrRedisDeleteData = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDeleteData)
	}
	ErrFailedToAcquireLock = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, http.StatusConflict, constvars.ErrClientSlotAlreadyBooked, fmt.Sprintf(constvars.ErrDevFailedToAcquireLock, key))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRabbitMQPublishMessage)
	}

	// Minio
	ErrMinioPresignObject = func(err error) *CustomError {
		return BuildNewCustomError(err, http.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMinioPresignObject)
	}
)
