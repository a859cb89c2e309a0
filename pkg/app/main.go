package app

import (
	"github.com/gorilla/sessions"

	"github.com/ghuser/locallister/pkg/cache"
	"github.com/ghuser/locallister/pkg/events"
	"github.com/ghuser/locallister/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to every service's route-registration call during server init.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's
// context methods and trace_id, span_id, and request_id are injected
// automatically:
//
//	app.Logger.InfoContext(ctx, "item created", "item_id", id)
//	app.Logger.ErrorContext(ctx, "write failed", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger        logger.Logger
	EventBus      *events.EventBus
	Redis         *cache.RedisClient
	SessionStore  sessions.Store // Redis-backed session store
	ItemStorePath string         // location of the flat JSON item document
}
