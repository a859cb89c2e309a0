package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghuser/locallister/services/localitem/domain/repositories"
)

// DefaultBookmarksKey is the KV key the browser client historically used.
const DefaultBookmarksKey = "bookmarks"

// Bookmarks is the per-client bookmark set: item ids persisted as a JSON
// string array under a single KV key. It is an annotation layer fully
// independent of the item collection — deleting an item does not touch the
// bookmark set, and a bookmark may reference an id that no longer exists.
type Bookmarks struct {
	kv  repositories.KV
	key string
}

// NewBookmarks returns a bookmark set over kv under DefaultBookmarksKey.
func NewBookmarks(kv repositories.KV) *Bookmarks {
	return &Bookmarks{kv: kv, key: DefaultBookmarksKey}
}

// List returns the bookmarked ids in insertion order. An absent or empty
// key yields an empty list.
func (b *Bookmarks) List(ctx context.Context) ([]string, error) {
	raw, err := b.kv.Get(ctx, b.key)
	if err != nil {
		return nil, fmt.Errorf("bookmarks: get: %w", err)
	}
	if raw == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("bookmarks: decode: %w", err)
	}
	return ids, nil
}

// IDSet returns the bookmarked ids as a membership set for the filter engine.
func (b *Bookmarks) IDSet(ctx context.Context) (map[string]bool, error) {
	ids, err := b.List(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// Contains reports whether id is bookmarked.
func (b *Bookmarks) Contains(ctx context.Context, id string) (bool, error) {
	set, err := b.IDSet(ctx)
	if err != nil {
		return false, err
	}
	return set[id], nil
}

// Add bookmarks id. Adding an already-bookmarked id is a no-op.
func (b *Bookmarks) Add(ctx context.Context, id string) error {
	ids, err := b.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return b.save(ctx, append(ids, id))
}

// Remove drops id from the set. Removing an unknown id is a no-op.
func (b *Bookmarks) Remove(ctx context.Context, id string) error {
	ids, err := b.List(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return b.save(ctx, kept)
}

func (b *Bookmarks) save(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("bookmarks: encode: %w", err)
	}
	if err := b.kv.Set(ctx, b.key, string(raw)); err != nil {
		return fmt.Errorf("bookmarks: set: %w", err)
	}
	return nil
}
