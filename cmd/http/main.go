package main

import (
	"context"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"
	"mindmatch-service/internal/app/delivery/http/routers"
	"mindmatch-service/internal/app/drivers/database"
	"mindmatch-service/internal/app/drivers/logger"
	"mindmatch-service/internal/app/drivers/messaging"
	"mindmatch-service/internal/app/drivers/storage"
	"mindmatch-service/internal/app/services/core/appointments"
	"mindmatch-service/internal/app/services/core/auth"
	"mindmatch-service/internal/app/services/core/intake"
	"mindmatch-service/internal/app/services/core/matching"
	"mindmatch-service/internal/app/services/core/practitioners"
	"mindmatch-service/internal/app/services/core/session"
	"mindmatch-service/internal/app/services/core/subscriptions"
	"mindmatch-service/internal/app/services/core/users"
	"mindmatch-service/internal/app/services/shared/locker"
	"mindmatch-service/internal/app/services/shared/notificationqueue"
	redisrepo "mindmatch-service/internal/app/services/shared/redis"
	miniostorage "mindmatch-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Mongo:          mongoClient,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQConn,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing app dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	storageService := miniostorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName)
	notificationQueue, err := notificationqueue.NewNotificationQueueService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.App.RabbitMQNotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		logrus.Fatalf("Error setting up notification queue: %v", err)
	}

	// Session
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.Mongo, bootstrap.DriverConfig.MongoDB.DbName)
	practitionerMongoRepository := practitioners.NewPractitionerMongoRepository(bootstrap.Mongo, bootstrap.DriverConfig.MongoDB.DbName)
	appointmentMongoRepository := appointments.NewAppointmentMongoRepository(bootstrap.Mongo, bootstrap.DriverConfig.MongoDB.DbName)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.Logger, bootstrap.InternalConfig)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// Intake
	intakeUsecase := intake.NewIntakeUsecase(redisRepository, bootstrap.Logger, bootstrap.InternalConfig)
	intakeController := controllers.NewIntakeController(bootstrap.Logger, intakeUsecase)

	// Matching
	matchingUsecase := matching.NewMatchingUsecase(practitionerMongoRepository, redisRepository, storageService, bootstrap.Logger, bootstrap.InternalConfig)
	matchingController := controllers.NewMatchingController(bootstrap.Logger, matchingUsecase)

	// Practitioner
	practitionerUsecase := practitioners.NewPractitionerUsecase(practitionerMongoRepository, appointmentMongoRepository, storageService, bootstrap.Logger, bootstrap.InternalConfig)
	practitionerController := controllers.NewPractitionerController(bootstrap.Logger, practitionerUsecase)

	// Appointment
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentMongoRepository,
		userMongoRepository,
		practitionerMongoRepository,
		lockerService,
		notificationQueue,
		bootstrap.Logger,
		bootstrap.InternalConfig,
	)
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Subscription
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(userMongoRepository, bootstrap.Logger)
	subscriptionController := controllers.NewSubscriptionController(bootstrap.Logger, subscriptionUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		middlewares,
		authController,
		intakeController,
		matchingController,
		practitionerController,
		appointmentController,
		subscriptionController,
	)
}
