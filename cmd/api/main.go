package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/locallister/docs/swagger"
	"github.com/ghuser/locallister/pkg/app"
	"github.com/ghuser/locallister/pkg/auth"
	"github.com/ghuser/locallister/pkg/cache"
	"github.com/ghuser/locallister/pkg/config"
	"github.com/ghuser/locallister/pkg/events"
	"github.com/ghuser/locallister/pkg/httpx"
	"github.com/ghuser/locallister/pkg/logger"
	"github.com/ghuser/locallister/pkg/telemetry"
	itemApi "github.com/ghuser/locallister/services/localitem/application/api"
	"github.com/ghuser/locallister/services/localitem/infrastructure/persistence/file"
	notifApi "github.com/ghuser/locallister/services/notification/application/api"
	notifSvcs "github.com/ghuser/locallister/services/notification/application/services"
	sessionApi "github.com/ghuser/locallister/services/session/application/api"
)

// @title					LocalLister API
// @version				1.0
// @description			Backend for the local items map: flat-file item CRUD, city boundary checks, sessions, and notifications.
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:3001
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional — log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	sessionStore := auth.NewSessionStore(
		redisClient.Client(),
		[]byte(cfg.SessionAuthKey),
		[]byte(cfg.SessionEncryptionKey),
		cfg.Environment == config.EnvProduction,
	)
	log.Info("session store initialized", "backend", "redis")

	itemStore := file.NewItemStore(cfg.ItemStorePath)
	log.Info("item store ready", "path", itemStore.Path())

	appConfig := &app.Application{
		Logger:        log,
		EventBus:      eventBus,
		Redis:         redisClient,
		SessionStore:  sessionStore,
		ItemStorePath: cfg.ItemStorePath,
	}

	// Notification subscribers must be in place before the first mutation;
	// the in-process bus does not replay.
	notifCenter := notifSvcs.NewCenter()
	if err := notifSvcs.RegisterSubscribers(ctx, eventBus, notifCenter, log); err != nil {
		log.Error("failed to register notification subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Store:    itemStore,
		Redis:    redisClient,
		EventBus: eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig, notifCenter)
	})

	srv := httpx.NewServer(cfg.ListenAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application, notifCenter *notifSvcs.Center) {
	itemApi.ItemRoutes(r, a)
	sessionApi.SessionRoutes(r, a)
	notifApi.NotificationRoutes(r, a, notifCenter)
}
