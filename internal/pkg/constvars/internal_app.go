package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_INTAKE_KEY               ContextKey = "intake_key"
	CONTEXT_IS_GUEST_KEY             ContextKey = "is_guest"
)

const (
	REQUEST_ID_PREFIX = "MNDMTCH_SVC_"
)

const (
	MindMatchRoleGuest  = "Guest"
	MindMatchRoleMember = "Member"
)

const (
	AppointmentStatusPlanned   = "planned"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

const (
	SubscriptionPlanStandard  = "standard"
	SubscriptionPlanAdvanced  = "advanced"
	SubscriptionPlanIntensive = "intensive"
)

const (
	AppointmentScopeUpcoming = "upcoming"
	AppointmentScopePast     = "past"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

const (
	WorkingHoursUnavailable = "unavailable"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionPractitioners = "practitioners"
	MongoCollectionAppointments  = "appointments"
)

const (
	RedisSessionKeyPrefix        = "session:"
	RedisIntakeProgressKeyPrefix = "intake_progress:"
	RedisSlotLockKeyFormat       = "lock:slot:%s:%s:%s"
)

const (
	IntakeSessionCookieName = "mm_intake_session"
	IntakeAnonymousPrefix   = "anon:"
	IntakeUserPrefix        = "user:"
)

const (
	NotificationTypeBookingConfirmed    = "booking_confirmed"
	NotificationTypeBookingCancelled    = "booking_cancelled"
	NotificationTypeBookingSecondNotice = "booking_second_notice"
)
