package routers

import (
	"fmt"
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	intakeController *controllers.IntakeController,
	matchingController *controllers.MatchingController,
	practitionerController *controllers.PractitionerController,
	appointmentController *controllers.AppointmentController,
	subscriptionController *controllers.SubscriptionController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/intake", func(r chi.Router) {
				attachIntakeRoutes(r, middlewares, intakeController)
			})

			r.Route("/matching", func(r chi.Router) {
				attachMatchingRoutes(r, middlewares, matchingController)
			})

			r.Route("/practitioners", func(r chi.Router) {
				attachPractitionerRoutes(r, practitionerController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, internalConfig, middlewares, appointmentController)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				attachSubscriptionRoutes(r, middlewares, subscriptionController)
			})
		})
	})
}
