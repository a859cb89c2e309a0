package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ghuser/locallister/pkg/errhttp"
	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// PostItemHandler handles POST /api/local-items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item. The body is decoded straight into the model;
// the required-fields rule lives in the service so the canonical "Name and
// coordinates required" payload has a single source.
//
//	@Summary		Create local item
//	@Description	Creates an item; the server assigns the id
//	@Tags			local-items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.LocalItem	true	"Item to create (id ignored)"
//	@Success		201		{object}	models.LocalItem
//	@Failure		400		{object}	ErrorResponse
//	@Router			/local-items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var candidate models.LocalItem
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.Item.Create(r.Context(), candidate)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}
