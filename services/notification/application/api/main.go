package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/services/notification/application/handlers"
	appsvcs "github.com/ghuser/locallister/services/notification/application/services"
)

// NotificationRoutes registers notification endpoints on the provided chi
// router. The center is created at bootstrap so it can also be wired to the
// event bus subscribers before traffic starts.
//
// Reading the feed is open; dismissing requires a session, since a dismissal
// is destructive for every connected client.
func NotificationRoutes(r chi.Router, a *app.Application, center *appsvcs.Center) {
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", handlers.NewGetNotificationsHandler(center).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.SessionStore, a.Logger))
			r.Delete("/{id}", handlers.NewDeleteNotificationHandler(center).Execute)
		})
	})
}
