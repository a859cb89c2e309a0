package handlers

import (
	"net/http"

	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/pkg/httpx"
)

// MeResponse is returned by GET /api/auth/me.
type MeResponse struct {
	Username string `json:"username"`
} // @name MeResponse

// MeHandler handles GET /api/auth/me requests. Runs behind RequireAuth.
type MeHandler struct{}

// NewMeHandler returns a MeHandler.
func NewMeHandler() *MeHandler {
	return &MeHandler{}
}

// Execute reports who the session belongs to.
//
//	@Summary		Current session
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	MeResponse
//	@Failure		401	{object}	map[string]string
//	@Router			/auth/me [get]
func (h *MeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	username, err := auth.UsernameFromCtx(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	httpx.JSON(w, http.StatusOK, MeResponse{Username: username})
}
