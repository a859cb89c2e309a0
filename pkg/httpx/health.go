package httpx

import (
	"context"
	"net/http"
	"time"
)

// healthyStatus is the documented healthy payload value; the map client
// checks it verbatim.
const healthyStatus = "Backend is healthy"

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (file item store, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Nil fields are skipped and reported as "ok".
type HealthChecks struct {
	Store    HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers. While everything passes it reports the canonical
// "Backend is healthy" payload; any failing probe degrades the status and
// the response code becomes 503.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:   healthyStatus,
			Store:    "ok",
			Redis:    "ok",
			EventBus: "ok",
		}

		if checks.Store != nil && checks.Store.Ping(ctx) != nil {
			resp.Status = "degraded"
			resp.Store = "unreachable"
		}
		if checks.Redis != nil && checks.Redis.Ping(ctx) != nil {
			resp.Status = "degraded"
			resp.Redis = "unreachable"
		}
		if checks.EventBus != nil && checks.EventBus.Ping(ctx) != nil {
			resp.Status = "degraded"
			resp.EventBus = "unreachable"
		}

		status := http.StatusOK
		if resp.Status != healthyStatus {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
