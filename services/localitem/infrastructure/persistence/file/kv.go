package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// KV is a flat-file key-value store: a single JSON object of string keys to
// string values. It is the server-side analogue of browser localStorage and
// backs the bookmark set when no Redis is available. A process-local mutex
// serializes writers; cross-process writers still race, like the item store.
type KV struct {
	mu   sync.Mutex
	path string
}

// NewKV returns a KV persisting to path.
func NewKV(path string) *KV {
	return &KV{path: path}
}

// Get returns the value for key, or "" when the key or the file is absent.
func (k *KV) Get(_ context.Context, key string) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := k.load()
	if err != nil {
		return "", err
	}
	return entries[key], nil
}

// Set stores value under key, creating the file on first use.
func (k *KV) Set(_ context.Context, key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	entries, err := k.load()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	entries[key] = value

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("kv: encode %s: %w", k.path, err)
	}
	if dir := filepath.Dir(k.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("kv: mkdir for %s: %w", k.path, err)
		}
	}
	if err := os.WriteFile(k.path, data, 0o644); err != nil {
		return fmt.Errorf("kv: write %s: %w", k.path, err)
	}
	return nil
}

func (k *KV) load() (map[string]string, error) {
	data, err := os.ReadFile(k.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv: read %s: %w", k.path, err)
	}
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("kv: decode %s: %w", k.path, err)
	}
	return entries, nil
}
