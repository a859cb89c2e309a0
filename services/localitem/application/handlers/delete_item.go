package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/errhttp"
	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
)

// DeleteItemHandler handles DELETE /api/local-items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute removes an item and returns the removed record, so clients can
// offer an undo without a prior fetch.
//
//	@Summary		Delete local item
//	@Tags			local-items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	models.LocalItem
//	@Failure		404	{object}	ErrorResponse
//	@Router			/local-items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	removed, err := h.svc.Item.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, removed)
}
