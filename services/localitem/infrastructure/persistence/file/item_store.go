// Package file implements the localitem persistence contract against a
// single flat JSON document: the whole collection is read and rewritten on
// every mutation. There is no locking, versioning, or checksum — two
// overlapping read/modify/write sequences race and the last writer wins.
// That is the documented deployment assumption (single operator, low
// concurrency), not an oversight; upgrading to per-record storage with
// concurrency control is an explicit design change, never an implicit one.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ghuser/locallister/services/localitem/domain"
	"github.com/ghuser/locallister/services/localitem/domain/models"
)

// ItemStore persists the LocalItem collection at a fixed path.
type ItemStore struct {
	path string
}

// NewItemStore returns an ItemStore writing to path. The file is created on
// first WriteAll; a missing file surfaces as ErrStorageRead until then.
func NewItemStore(path string) *ItemStore {
	return &ItemStore{path: path}
}

// Path returns the location of the persisted document.
func (s *ItemStore) Path() string {
	return s.path
}

// ReadAll loads the persisted document and deserializes the collection.
// A missing file, unreadable file, malformed JSON, or a top-level value
// that is not an array (including null) yields an ErrStorageRead-wrapped
// error. Callers are expected to degrade to an empty collection and log.
func (s *ItemStore) ReadAll(_ context.Context) ([]models.LocalItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageRead, s.path, err)
	}

	if string(bytes.TrimSpace(data)) == "null" {
		return nil, fmt.Errorf("%w: %s: document is null, expected array", domain.ErrStorageRead, s.path)
	}

	var items []models.LocalItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrStorageRead, s.path, err)
	}
	return items, nil
}

// WriteAll serializes the full collection pretty-printed with two-space
// indentation and overwrites the document. An empty collection is written
// as [], never null. Failures yield an ErrStorageWrite-wrapped error; the
// caller logs and continues, accepting that the write may not have taken
// effect.
func (s *ItemStore) WriteAll(_ context.Context, items []models.LocalItem) error {
	if items == nil {
		items = []models.LocalItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageWrite, s.path, err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrStorageWrite, s.path, err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrStorageWrite, s.path, err)
	}
	return nil
}

// Ping satisfies the health-check interface: the store is reachable when
// its directory is statable. A not-yet-created document is healthy.
func (s *ItemStore) Ping(_ context.Context) error {
	if _, err := os.Stat(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("item store ping: %w", err)
	}
	return nil
}
