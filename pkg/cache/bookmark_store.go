package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const bookmarkKeyPrefix = "bookmarks"

// BookmarkStore is the Redis implementation of the bookmark key-value
// interface (Get/Set of a JSON blob under one key). It exists so clients
// without browser storage — CLIs, kiosks — can keep their bookmark set
// server-side. Keys are scoped per client: "bookmarks:{clientID}:{key}".
//
// Bookmarks have no TTL: unlike a read-model cache, the set is the source
// of truth for the client's annotations and must not silently expire.
type BookmarkStore struct {
	client   *RedisClient
	clientID string
}

// NewBookmarkStore returns a BookmarkStore scoped to clientID (typically
// the session username).
func NewBookmarkStore(r *RedisClient, clientID string) *BookmarkStore {
	return &BookmarkStore{client: r, clientID: clientID}
}

// Get returns the value stored under key, or "" when the key is absent.
func (s *BookmarkStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Client().Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("bookmark store get: %w", err)
	}
	return val, nil
}

// Set stores value under key with no expiry.
func (s *BookmarkStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Client().Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("bookmark store set: %w", err)
	}
	return nil
}

// key builds the Redis key: "bookmarks:{clientID}:{key}"
func (s *BookmarkStore) key(key string) string {
	return fmt.Sprintf("%s:%s:%s", bookmarkKeyPrefix, s.clientID, key)
}
