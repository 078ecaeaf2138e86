package config

import (
	"mindmatch-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mindmatch"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mindmatch"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                       utils.GetEnvString("APP_ENV", "development"),
			Port:                      utils.GetEnvString("APP_PORT", ":8080"),
			Version:                   utils.GetEnvString("APP_VERSION", "v1"),
			Address:                   utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                  utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:            utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:               utils.GetEnvInt("APP_MAX_REQUEST", 100),
			MaxTimeRequestsPerSeconds: utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:  utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),

			SessionExpiryInHours:     utils.GetEnvInt("APP_SESSION_EXPIRY_IN_HOURS", 24),
			IntakeProgressTTLInHours: utils.GetEnvInt("APP_INTAKE_PROGRESS_TTL_IN_HOURS", 72),

			AvailabilityOffsetHours: utils.GetEnvInt("APP_AVAILABILITY_OFFSET_HOURS", 3),

			SlotLockTTLInSeconds:           utils.GetEnvInt("APP_SLOT_LOCK_TTL_IN_SECONDS", 10),
			BookingRateLimitPerMinute:      utils.GetEnvInt("APP_BOOKING_RATE_LIMIT_PER_MINUTE", 10),
			MinioPresignedURLExpiryInHours: utils.GetEnvInt("APP_MINIO_PRESIGNED_URL_EXPIRY_IN_HOURS", 1),
			RabbitMQNotificationQueue:      utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "mindmatch.notifications"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
	}
}
