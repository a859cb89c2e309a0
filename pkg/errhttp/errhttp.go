// Package errhttp maps domain sentinel errors to HTTP status codes and
// canonical response payloads. Add a case to each switch for new sentinels.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/locallister/pkg/httpx"
	itemdomain "github.com/ghuser/locallister/services/localitem/domain"
	notifdomain "github.com/ghuser/locallister/services/notification/domain"
)

// WriteError maps err to an HTTP status code and writes a JSON error response.
// Uses errors.Is() so wrapped sentinel errors are matched correctly.
// Defaults to 500 Internal Server Error for unrecognized errors.
//
// Sentinels with a fixed API payload ("Item not found", "Name and
// coordinates required") are written verbatim regardless of wrapping, so
// adding context with fmt.Errorf never leaks into client-visible text.
func WriteError(w http.ResponseWriter, err error) {
	httpx.JSONError(w, mapErrorToStatus(err), messageFor(err))
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, itemdomain.ErrValidation):
		return http.StatusBadRequest // 400
	case errors.Is(err, itemdomain.ErrInvalidPolygon):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, notifdomain.ErrNotificationNotFound):
		return http.StatusNotFound // 404
	default:
		return http.StatusInternalServerError // 500
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, itemdomain.ErrValidation):
		return "Name and coordinates required"
	case errors.Is(err, notifdomain.ErrNotificationNotFound):
		return "Notification not found"
	default:
		return err.Error()
	}
}
