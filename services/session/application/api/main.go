package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/services/session/application/handlers"
)

// SessionRoutes registers the login-gate endpoints on the provided chi router.
func SessionRoutes(r chi.Router, a *app.Application) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.NewLoginHandler(a.SessionStore, a.Logger).Execute)
		r.Post("/logout", handlers.NewLogoutHandler(a.SessionStore, a.Logger).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Get("/me", handlers.NewMeHandler().Execute)
		})
	})
}
