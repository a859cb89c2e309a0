package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/locallister/services/notification/domain"
	"github.com/ghuser/locallister/services/notification/domain/models"
)

// maxFeedSize bounds the in-memory feed. When full, the oldest notification
// is evicted on push.
const maxFeedSize = 100

// Center is the in-memory notification feed. Notifications are pushed by
// event subscribers after item mutations, expire on their severity's
// auto-dismiss schedule, and can be dismissed explicitly. The feed is not
// persisted; a restart starts empty.
type Center struct {
	mu   sync.Mutex
	feed []models.Notification

	// now is swappable in tests to control expiry.
	now func() time.Time
}

// NewCenter returns an empty notification center.
func NewCenter() *Center {
	return &Center{now: time.Now}
}

// Push appends a notification with the given message and severity and
// returns it. Expired entries are pruned first; when the feed is still full
// the oldest entry is evicted.
func (c *Center) Push(_ context.Context, message string, severity models.Severity) models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.prune(now)

	n := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
	}
	if d := severity.AutoDismissAfter(); d > 0 {
		n.AutoDismiss = true
		n.ExpiresAt = now.Add(d)
	}

	if len(c.feed) >= maxFeedSize {
		c.feed = c.feed[1:]
	}
	c.feed = append(c.feed, n)
	return n
}

// Active returns the non-expired notifications, newest first.
func (c *Center) Active(_ context.Context) []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune(c.now())

	out := make([]models.Notification, 0, len(c.feed))
	for i := len(c.feed) - 1; i >= 0; i-- {
		out = append(out, c.feed[i])
	}
	return out
}

// Dismiss removes the notification with the given id. An unknown, already
// dismissed, or expired id yields ErrNotificationNotFound.
func (c *Center) Dismiss(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune(c.now())

	for i, n := range c.feed {
		if n.ID == id {
			c.feed = append(c.feed[:i], c.feed[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// prune drops expired entries. Callers must hold c.mu.
func (c *Center) prune(now time.Time) {
	kept := c.feed[:0]
	for _, n := range c.feed {
		if n.AutoDismiss && !now.Before(n.ExpiresAt) {
			continue
		}
		kept = append(kept, n)
	}
	c.feed = kept
}
