package constvars

const (
	ResponseUnknown = "unknown"
)

// Client-facing messages. Never leak internals here.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientTooManyRequests               = "too many requests, please try again later"

	ErrClientPractitionerNotFound      = "practitioner not found"
	ErrClientAppointmentNotFound       = "appointment not found"
	ErrClientUserNotFound              = "user not found"
	ErrClientSlotAlreadyBooked         = "this time slot has just been booked, please pick another one"
	ErrClientNoSessionCredits          = "you have no remaining session credits, please subscribe to a plan first"
	ErrClientBookingRequiresAccount    = "please sign in before booking an appointment"
	ErrClientOutsideWorkingHours       = "the practitioner is not available at the requested time"
	ErrClientAppointmentNotCancellable = "this appointment can no longer be cancelled"
	ErrClientAppointmentNotCompletable = "this appointment cannot be marked as completed"
	ErrClientInvalidIntakeStep         = "the questionnaire step you submitted is not valid"
	ErrClientResultsRequireAccount     = "please sign in to see your matching results"
)

// Dev messages, surfaced in logs only.
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevCannotParseTime          = "cannot parse the requested time"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded when processing request"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevMissingRequestID         = "request ID not found in request context"
	ErrDevMissingSessionData       = "session data not found in request context"
	ErrDevMissingIntakeKey         = "intake key not found in request context"

	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevEmailAlreadyExists   = "email already exists"
	ErrDevUserNotExists        = "user not exists in our system"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"
	ErrDevAuthGenerateToken         = "failed to generate token"

	ErrDevPractitionerNotExists        = "practitioner not exists in our system"
	ErrDevAppointmentNotExists         = "appointment not exists in our system"
	ErrDevNotAppointmentOwner          = "request done by user who does not own the appointment"
	ErrDevNotAppointmentPractitioner   = "request done by practitioner not assigned to the appointment"
	ErrDevSlotAlreadyBooked            = "slot already has a non-cancelled appointment"
	ErrDevNoSessionCredits             = "user has no free trial and no remaining subscription credits"
	ErrDevBookingRequiresAccount       = "booking attempted without an authenticated user"
	ErrDevOutsideWorkingHours          = "requested time is outside the practitioner working hours"
	ErrDevAppointmentStateNotPlanned   = "appointment status transition requires status planned, got %s"
	ErrDevIntakeStepOutOfRange         = "intake step %d is not part of the flow"
	ErrDevIntakeAnswerNotAllowed       = "answer is not one of the allowed choices for step %d"
	ErrDevIntakeTooManySelections      = "step %d accepts at most %d selections"
	ErrDevIntakeAnswerTooLong          = "free-text answer for step %d exceeds %d characters"
	ErrDevIntakeAnswerOutOfRange       = "numeric answer for step %d must be between %d and %d"
	ErrDevIntakeAnswerWrongKind        = "answer for step %d has the wrong kind"
	ErrDevSubscriptionUnknownPlan      = "unknown subscription plan %s"
	ErrDevAvailabilityDateInPast       = "availability requested for a past date"
	ErrDevFailedToAcquireLock          = "failed to acquire lock for key %s"
	ErrDevFailedToConsumeCredit        = "failed to consume a session credit for user %s"
	ErrDevFailedToRefundCredit         = "failed to refund a session credit for user %s"
	ErrDevCompensationDeleteFailed     = "failed to delete appointment %s after credit consumption failure"
	ErrDevPractitionerImageURL         = "failed to build presigned URL for practitioner profile image"
	ErrDevNotificationPublish          = "failed to publish notification message to queue"
	ErrDevIntakeProgressDecode         = "failed to decode intake progress from redis"
	ErrDevResultsPendingAuthentication = "matching results requested before completing the questionnaire"

	ErrDevDBFailedToInsertDocument   = "failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document into database"
	ErrDevDBFailedToFindDocument     = "failed when do find document on database"
	ErrDevDBFailedToDeleteDocument   = "failed when do delete document on database"
	ErrDevDBFailedToIterateDocuments = "failed when iterating documents from database"
	ErrDevDBStringNotObjectID        = "given string cannot be converted to mongo ObjectID"

	ErrDevRedisFailedToSetData    = "failed to set data to redis"
	ErrDevRedisFailedToGetData    = "failed to get data from redis"
	ErrDevRedisFailedToDeleteData = "failed to delete data from redis"
	ErrDevRedisLockNotHeld        = "lock is not held by the caller anymore"

	ErrDevRabbitMQPublishMessage = "failed to publish message to RabbitMQ"
	ErrDevRabbitMQDeclareQueue   = "failed to declare RabbitMQ queue"

	ErrDevMinioPresignObject = "failed to presign minio object"
)
