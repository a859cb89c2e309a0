package handlers

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/pkg/httpx"
	"github.com/ghuser/locallister/pkg/logger"
)

// LogoutHandler handles POST /api/auth/logout requests.
type LogoutHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewLogoutHandler returns a LogoutHandler backed by the given session store.
func NewLogoutHandler(store sessions.Store, log logger.Logger) *LogoutHandler {
	return &LogoutHandler{store: store, log: log}
}

// Execute closes the session. Logging out without a session is a no-op
// success, so the operation is idempotent.
//
//	@Summary		Log out
//	@Tags			auth
//	@Success		204
//	@Router			/auth/logout [post]
func (h *LogoutHandler) Execute(w http.ResponseWriter, r *http.Request) {
	session, _ := h.store.Get(r, auth.SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "session teardown failed", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "could not close session")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
