package routers

import (
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachMatchingRoutes(router chi.Router, middlewares *middlewares.Middlewares, matchingController *controllers.MatchingController) {
	router.With(middlewares.IntakeSession).Get("/results", matchingController.GetResults)
}
