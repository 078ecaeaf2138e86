package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingSessionDataKey        = "session_data"
	LoggingIntakeKeyKey          = "intake_key"
	LoggingStepKey               = "step"
	LoggingNextStepKey           = "next_step"
	LoggingQueryParamsKey        = "query_params"
	LoggingResponseKey           = "response"
	LoggingRequestKey            = "request"
	LoggingResponseLengthKey     = "response_length"
	LoggingUserIDKey             = "user_id"
	LoggingPractitionerIDKey     = "practitioner_id"
	LoggingAppointmentIDKey      = "appointment_id"
	LoggingAppointmentCountKey   = "appointment_count"
	LoggingSpecialtyKey          = "specialty"
	LoggingSlotCountKey          = "slot_count"
	LoggingDateKey               = "date"
	LoggingTimeKey               = "time"
	LoggingPlanKey               = "plan"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingLockStoredValueKey    = "lock_stored_value"
	LoggingLockExpectedValueKey  = "lock_expected_value"
	LoggingAttemptKey            = "attempt"
	LoggingQueueNameKey          = "queue_name"
	LoggingNotificationTypeKey   = "notification_type"
	LoggingMethodKey             = "method"
	LoggingEndpointKey           = "endpoint"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
)
