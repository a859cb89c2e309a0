package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/services/localitem/application/handlers"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
)

// ItemRoutes registers localitem endpoints on the provided chi router.
// All routes are open: the map is public and the login gate only guards
// destructive cross-client surfaces elsewhere.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	r.Route("/local-items", func(r chi.Router) {
		r.Get("/", handlers.NewListItemsHandler(svcs).Execute)
		r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
		r.Get("/tags", handlers.NewGetTagsHandler(svcs).Execute)
		r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{id}", handlers.NewPutItemHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
	})

	r.Route("/boundary", func(r chi.Router) {
		r.Get("/", handlers.NewGetBoundaryHandler().Execute)
		r.Post("/check", handlers.NewCheckBoundaryHandler().Execute)
	})
}
