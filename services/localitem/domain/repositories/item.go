package repositories

import (
	"context"

	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// ItemStore is the persistence interface for the LocalItem collection.
// The domain layer owns this interface; infrastructure implements it.
//
// The contract is deliberately coarse: the persisted document always holds
// the complete collection, so every mutation is one ReadAll followed by one
// WriteAll. There is no locking — concurrent read/write pairs race and the
// last writer wins. Implementations must not "fix" this silently.
type ItemStore interface {
	// ReadAll loads and deserializes the persisted document.
	ReadAll(ctx context.Context) ([]models.LocalItem, error)

	// WriteAll serializes the full collection and overwrites the document.
	WriteAll(ctx context.Context, items []models.LocalItem) error
}

// KV is the minimal key-value interface the bookmark set persists through.
// It abstracts browser localStorage; swappable implementations exist for a
// flat file and for Redis. Get returns ("", nil) for an absent key.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
