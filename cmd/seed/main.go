// Command seed populates the item store with a starter collection of
// Kutaisi points of interest. It refuses to overwrite an existing
// non-empty document, so it is safe to run on every deploy.
package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/ghuser/locallister/pkg/config"
	"github.com/ghuser/locallister/pkg/logger"
	"github.com/ghuser/locallister/services/localitem/domain/models"
	"github.com/ghuser/locallister/services/localitem/infrastructure/persistence/file"
)

//go:embed items.json
var seedData []byte

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)

	ctx := context.Background()
	store := file.NewItemStore(cfg.ItemStorePath)

	if existing, err := store.ReadAll(ctx); err == nil && len(existing) > 0 {
		log.Info("item store already populated, nothing to do",
			"path", store.Path(), "items", len(existing))
		return
	}

	var items []models.LocalItem
	if err := json.Unmarshal(seedData, &items); err != nil {
		log.Error("embedded seed data is malformed", "error", err)
		os.Exit(1)
	}

	if err := store.WriteAll(ctx, items); err != nil {
		log.Error("failed to write item store", "path", store.Path(), "error", err)
		os.Exit(1)
	}
	log.Info("item store seeded", "path", store.Path(), "items", len(items))
}
