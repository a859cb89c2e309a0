package handlers

import (
	"net/http"

	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/notification/application/services"
	"github.com/ghuser/locallister/services/notification/domain/models"
)

// GetNotificationsHandler handles GET /api/notifications requests.
type GetNotificationsHandler struct {
	center *appsvcs.Center
}

// NewGetNotificationsHandler returns a handler backed by the given center.
func NewGetNotificationsHandler(center *appsvcs.Center) *GetNotificationsHandler {
	return &GetNotificationsHandler{center: center}
}

// Execute lists the active notifications, newest first.
//
//	@Summary		List notifications
//	@Description	Returns active (not expired, not dismissed) notifications, newest first
//	@Tags			notifications
//	@Produce		json
//	@Success		200	{array}	models.Notification
//	@Router			/notifications [get]
func (h *GetNotificationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	active := h.center.Active(r.Context())
	if active == nil {
		active = []models.Notification{}
	}
	httpx.JSON(w, http.StatusOK, active)
}
