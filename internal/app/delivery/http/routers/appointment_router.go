package routers

import (
	"mindmatch-service/internal/app/config"
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, internalConfig *config.InternalConfig, mw *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	// Booking gets its own stricter per-IP limiter on top of the global one.
	bookingLimiter := middlewares.NewRateLimiter(internalConfig.App.BookingRateLimitPerMinute, time.Minute, 5*time.Minute)

	router.With(mw.Authenticate).Get("/", appointmentController.FindAll)
	router.With(mw.Authenticate, bookingLimiter.Limit).Post("/", appointmentController.CreateAppointment)
	router.With(mw.Authenticate).Patch("/{appointmentID}/cancel", appointmentController.CancelAppointment)
	router.With(mw.Authenticate).Patch("/{appointmentID}/complete", appointmentController.CompleteAppointment)
}
