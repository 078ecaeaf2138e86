package routers

import (
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachIntakeRoutes(router chi.Router, middlewares *middlewares.Middlewares, intakeController *controllers.IntakeController) {
	router.With(middlewares.IntakeSession).Get("/", intakeController.GetProgress)
	router.With(middlewares.IntakeSession).Post("/steps", intakeController.SubmitStep)
	router.With(middlewares.IntakeSession).Post("/back", intakeController.Back)
	router.With(middlewares.IntakeSession).Delete("/", intakeController.Reset)
}
