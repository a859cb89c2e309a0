package handlers

import (
	"net/http"

	"github.com/ghuser/locallister/pkg/errhttp"
	"github.com/ghuser/locallister/pkg/httpx"
	pkgvalidator "github.com/ghuser/locallister/pkg/validator"
	"github.com/ghuser/locallister/services/localitem/domain/models"
	domainsvcs "github.com/ghuser/locallister/services/localitem/domain/services"
)

// CheckBoundaryRequest is the request body for POST /boundary/check.
type CheckBoundaryRequest struct {
	Lat *float64 `json:"lat" validate:"required" example:"42.27"`
	Lng *float64 `json:"lng" validate:"required" example:"42.69"`
} // @name CheckBoundaryRequest

// CheckBoundaryResponse reports whether the point lies inside the boundary.
type CheckBoundaryResponse struct {
	Inside bool `json:"inside"`
} // @name CheckBoundaryResponse

// CheckBoundaryHandler handles POST /api/boundary/check requests.
type CheckBoundaryHandler struct{}

// NewCheckBoundaryHandler returns a CheckBoundaryHandler.
func NewCheckBoundaryHandler() *CheckBoundaryHandler {
	return &CheckBoundaryHandler{}
}

// Execute runs the point-in-polygon check against the city boundary.
// Coordinates are pointers in the request type so lat 0 and an absent lat
// stay distinguishable to the required validator.
//
//	@Summary		Check point against boundary
//	@Description	Reports whether the point is inside the city boundary; edge and vertex count as inside
//	@Tags			boundary
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CheckBoundaryRequest	true	"Point to check"
//	@Success		200		{object}	CheckBoundaryResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/boundary/check [post]
func (h *CheckBoundaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CheckBoundaryRequest](w, r)
	if !ok {
		return
	}

	inside, err := domainsvcs.InsideCity(models.Coordinates{Lat: *req.Lat, Lng: *req.Lng})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, CheckBoundaryResponse{Inside: inside})
}
