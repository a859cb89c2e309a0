package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/locallister/pkg/httpx"
	"github.com/ghuser/locallister/pkg/logger"
)

// SessionName is the cookie name of the login-gate session.
const SessionName = "locallister_session"

// SessionUsernameKey is the session value holding the authenticated username.
const SessionUsernameKey = "username"

// RequireAuth is a chi middleware that enforces the login gate via session
// cookies. It reads the session cookie, extracts the username, and injects
// it into the request context. Returns 401 Unauthorized if the session is
// missing, invalid, or lacks a username.
//
// After this middleware, handlers can safely call auth.UsernameFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, SessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			username, ok := session.Values[SessionUsernameKey].(string)
			if !ok || username == "" {
				log.WarnContext(r.Context(), "session missing username")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithUsername(r.Context(), username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
