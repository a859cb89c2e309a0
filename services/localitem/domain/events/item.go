package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the item application service.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemEvent is the payload shared by all three item topics.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated) etc.
type ItemEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     string    `json:"item_id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}
