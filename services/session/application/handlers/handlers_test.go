package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/pkg/config"
	"github.com/ghuser/locallister/pkg/logger"
	"github.com/ghuser/locallister/services/session/application/api"
)

// newTestRouter mounts the auth routes over a CookieStore; the production
// RedisStore implements the same sessions.Store interface.
func newTestRouter() *chi.Mux {
	a := &app.Application{
		Logger: logger.New(&config.Config{LogLevel: "error"}),
		SessionStore: sessions.NewCookieStore(
			[]byte("test-auth-key-must-be-32-bytes!!"),
			[]byte("test-enc-key-must-be-32-bytes!!!"),
		),
	}
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		api.SessionRoutes(r, a)
	})
	return r
}

func login(t *testing.T, r http.Handler, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	r := newTestRouter()
	w := login(t, r, "nino", "secret")

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Username != "nino" {
		t.Errorf("username: got %q", resp.Username)
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("no session cookie set")
	}
}

func TestLogin_BlankCredentialsRejected(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "secret"},
		{"empty password", "nino", ""},
		{"whitespace username", "   ", "secret"},
		{"whitespace password", "nino", "\t "},
		{"both blank", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := login(t, r, tt.username, tt.password)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want 401", w.Code)
			}
			var body map[string]string
			_ = json.Unmarshal(w.Body.Bytes(), &body)
			if body["error"] != "invalid credentials" {
				t.Fatalf("body: %v", body)
			}
		})
	}
}

func TestMe_WithSession(t *testing.T) {
	r := newTestRouter()
	loginResp := login(t, r, "giorgi", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	for _, c := range loginResp.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", w.Code, w.Body)
	}
	var resp struct {
		Username string `json:"username"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Username != "giorgi" {
		t.Errorf("username: got %q", resp.Username)
	}
}

func TestMe_WithoutSession(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want 401", w.Code)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	r := newTestRouter()
	loginResp := login(t, r, "nino", "secret")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	for _, c := range loginResp.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("logout status: got %d", w.Code)
	}

	// The Set-Cookie from logout must expire the session.
	var expired bool
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("logout did not expire the session cookie")
	}
}

func TestLogout_WithoutSessionIsIdempotent(t *testing.T) {
	r := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status: got %d, want 204", w.Code)
	}
}
