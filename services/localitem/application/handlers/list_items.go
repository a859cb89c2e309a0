// Package handlers contains the HTTP handlers for the localitem context.
// Handlers decode and validate requests, delegate to the application
// services, and translate domain errors via errhttp.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ghuser/locallister/pkg/httpx"
	appsvcs "github.com/ghuser/locallister/services/localitem/application/services"
	domainsvcs "github.com/ghuser/locallister/services/localitem/domain/services"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

// ListItemsHandler handles GET /api/local-items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists items in stored order, optionally filtered. With no query
// parameters the full collection is returned unchanged.
//
//	@Summary		List local items
//	@Description	Returns all items, optionally narrowed by search, tag, rating, trending, events, or bookmarks
//	@Tags			local-items
//	@Produce		json
//	@Param			search		query	string	false	"Case-insensitive name substring"
//	@Param			tag			query	string	false	"Exact tag match"
//	@Param			minRating	query	number	false	"Minimum rating (inclusive)"
//	@Param			trending	query	bool	false	"Only trending items"
//	@Param			events		query	bool	false	"Only items of type event"
//	@Param			bookmarks	query	string	false	"Comma-separated bookmarked ids; restricts results to them"
//	@Success		200	{array}	models.LocalItem
//	@Router			/local-items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := domainsvcs.Filter{
		Search: q.Get("search"),
		Tag:    q.Get("tag"),
	}
	if v := q.Get("minRating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = f
		}
	}
	filter.OnlyTrending = parseBool(q.Get("trending"))
	filter.OnlyEvents = parseBool(q.Get("events"))

	var bookmarked map[string]bool
	if v := q.Get("bookmarks"); v != "" {
		filter.OnlyBookmarks = true
		bookmarked = make(map[string]bool)
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				bookmarked[id] = true
			}
		}
	}

	httpx.JSON(w, http.StatusOK, h.svc.Item.List(r.Context(), filter, bookmarked))
}

// parseBool treats "true" and "1" as true; anything else, including an
// unparseable value, leaves the toggle off.
func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
