package config

type InternalConfig struct {
	App App
	JWT JWT
}

type App struct {
	Env                       string
	Port                      string
	Version                   string
	Address                   string
	Timezone                  string
	EndpointPrefix            string
	MaxRequests               int
	MaxTimeRequestsPerSeconds int
	ShutdownTimeoutInSeconds  int

	SessionExpiryInHours     int
	IntakeProgressTTLInHours int

	// AvailabilityOffsetHours is how far ahead of now a same-day slot must
	// start to remain bookable.
	AvailabilityOffsetHours int

	SlotLockTTLInSeconds           int
	BookingRateLimitPerMinute      int
	MinioPresignedURLExpiryInHours int
	RabbitMQNotificationQueue      string
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}
