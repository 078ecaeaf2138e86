package routers

import (
	"mindmatch-service/internal/app/delivery/http/controllers"
	"mindmatch-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *controllers.SubscriptionController) {
	router.With(middlewares.Authenticate).Post("/", subscriptionController.Subscribe)
}
