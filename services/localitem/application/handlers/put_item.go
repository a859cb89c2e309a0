package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/errhttp"
	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// PutItemHandler handles PUT /api/local-items/{id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute shallow-merges the request body onto an existing item. Fields
// absent from the body keep their prior values; the id is immutable.
//
//	@Summary		Update local item
//	@Description	Partial update; omitted fields are left untouched
//	@Tags			local-items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		models.ItemPatch	true	"Fields to change"
//	@Success		200		{object}	models.LocalItem
//	@Failure		404		{object}	ErrorResponse
//	@Router			/local-items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var patch models.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	item, err := h.svc.Item.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}
