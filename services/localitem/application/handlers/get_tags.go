package handlers

import (
	"net/http"

	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
)

// GetTagsHandler handles GET /api/local-items/tags requests.
type GetTagsHandler struct {
	svc *appsvcs.Services
}

// NewGetTagsHandler returns a GetTagsHandler backed by the given services.
func NewGetTagsHandler(svc *appsvcs.Services) *GetTagsHandler {
	return &GetTagsHandler{svc: svc}
}

// Execute returns the tag union across all items, first-seen order.
//
//	@Summary		List all tags
//	@Tags			local-items
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/local-items/tags [get]
func (h *GetTagsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	tags := h.svc.Item.Tags(r.Context())
	if tags == nil {
		tags = []string{}
	}
	httpx.JSON(w, http.StatusOK, tags)
}
