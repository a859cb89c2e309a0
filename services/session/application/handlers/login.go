// Package handlers contains the HTTP handlers for the session context: the
// login gate in front of the app shell. The gate is demonstration-grade:
// any non-blank username/password pair is accepted and no user records
// exist. Authorization beyond "logged in" is out of scope.
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/pkg/httpx"
	"github.com/ghuser/locallister/pkg/logger"
)

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" example:"demo"`
	Password string `json:"password" example:"hunter2"`
} // @name LoginRequest

// LoginResponse is returned on successful login. Token is the server-side
// session id; the cookie, not the token, carries authentication.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
} // @name LoginResponse

// LoginHandler handles POST /api/auth/login requests.
type LoginHandler struct {
	store sessions.Store
	log   logger.Logger
}

// NewLoginHandler returns a LoginHandler backed by the given session store.
func NewLoginHandler(store sessions.Store, log logger.Logger) *LoginHandler {
	return &LoginHandler{store: store, log: log}
}

// Execute opens a session. Blank or whitespace-only credentials are
// rejected; anything else passes the gate.
//
//	@Summary		Log in
//	@Description	Opens a session; any non-blank credentials are accepted
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	LoginResponse
//	@Failure		401		{object}	map[string]string
//	@Router			/auth/login [post]
func (h *LoginHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || strings.TrimSpace(req.Password) == "" {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	session, err := h.store.Get(r, auth.SessionName)
	if err != nil {
		// Tampered cookie; start over with a fresh session.
		h.log.WarnContext(r.Context(), "discarding undecodable session", "error", err)
	}
	session.Values[auth.SessionUsernameKey] = username
	if err := session.Save(r, w); err != nil {
		h.log.ErrorContext(r.Context(), "session save failed", "error", err)
		httpx.JSONError(w, http.StatusInternalServerError, "could not open session")
		return
	}

	h.log.InfoContext(r.Context(), "login", "username", username)
	httpx.JSON(w, http.StatusOK, LoginResponse{Token: session.ID, Username: username})
}
