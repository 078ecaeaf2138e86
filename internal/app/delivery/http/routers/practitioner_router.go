package routers

import (
	"mindmatch-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, practitionerController *controllers.PractitionerController) {
	router.Get("/", practitionerController.FindAll)
	router.Get("/{practitionerID}", practitionerController.FindByID)
	router.Get("/{practitionerID}/availability", practitionerController.GetAvailability)
}
