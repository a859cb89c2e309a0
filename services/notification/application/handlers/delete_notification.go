package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/errhttp"
	appsvcs "github.com/ghuser/locallister/services/notification/application/services"
)

// DeleteNotificationHandler handles DELETE /api/notifications/{id} requests.
type DeleteNotificationHandler struct {
	center *appsvcs.Center
}

// NewDeleteNotificationHandler returns a handler backed by the given center.
func NewDeleteNotificationHandler(center *appsvcs.Center) *DeleteNotificationHandler {
	return &DeleteNotificationHandler{center: center}
}

// Execute dismisses a notification by id.
//
//	@Summary		Dismiss notification
//	@Description	Removes a notification from the feed
//	@Tags			notifications
//	@Produce		json
//	@Param			id	path	string	true	"Notification ID"
//	@Success		204
//	@Failure		404	{object}	map[string]string
//	@Router			/notifications/{id} [delete]
func (h *DeleteNotificationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.center.Dismiss(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
