package handlers

import (
	"net/http"

	"github.com/ghuser/locallister/pkg/httpx"
	domainsvcs "github.com/ghuser/locallister/services/localitem/domain/services"
)

// GetBoundaryHandler handles GET /api/boundary requests.
type GetBoundaryHandler struct{}

// NewGetBoundaryHandler returns a GetBoundaryHandler.
func NewGetBoundaryHandler() *GetBoundaryHandler {
	return &GetBoundaryHandler{}
}

// Execute returns the city boundary ring so the map client can draw it.
//
//	@Summary		Get city boundary
//	@Tags			boundary
//	@Produce		json
//	@Success		200	{array}	models.Coordinates
//	@Router			/boundary [get]
func (h *GetBoundaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, domainsvcs.CityBoundary)
}
