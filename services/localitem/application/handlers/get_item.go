package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/locallister/pkg/errhttp"
	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
)

// GetItemHandler handles GET /api/local-items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches a single item by id.
//
//	@Summary		Get local item
//	@Tags			local-items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	models.LocalItem
//	@Failure		404	{object}	ErrorResponse
//	@Router			/local-items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Item.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}
