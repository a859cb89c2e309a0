package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	pkgevents "github.com/ghuser/locallister/pkg/events"
	"github.com/ghuser/locallister/pkg/logger"
	itemdomain "github.com/ghuser/locallister/services/localitem/domain"
	"github.com/ghuser/locallister/services/localitem/domain/events"
	"github.com/ghuser/locallister/services/localitem/domain/models"
	"github.com/ghuser/locallister/services/localitem/domain/repositories"
	domainsvcs "github.com/ghuser/locallister/services/localitem/domain/services"
)

// ItemService orchestrates CRUD over the flat-file item collection. Every
// mutation is a full read-modify-write of the document.
//
// Error posture follows the store's weak-consistency contract: a failed read
// degrades to an empty collection, and a failed write is logged while the
// operation still reports its intended outcome. Only ErrItemNotFound and
// ErrValidation reach callers.
type ItemService struct {
	store repositories.ItemStore
	bus   *pkgevents.EventBus
	log   logger.Logger
}

// NewItemService returns an ItemService over the given store. The bus may be
// nil; publishing is then skipped.
func NewItemService(store repositories.ItemStore, bus *pkgevents.EventBus, log logger.Logger) *ItemService {
	return &ItemService{store: store, bus: bus, log: log}
}

// List returns the full collection in stored order, optionally narrowed by
// filter. A read failure yields an empty list, never an error.
func (s *ItemService) List(ctx context.Context, filter domainsvcs.Filter, bookmarked map[string]bool) []models.LocalItem {
	items := s.readAll(ctx)
	if !filter.Active() {
		return items
	}
	return filter.Apply(items, bookmarked)
}

// Get returns the item with the given id, or ErrItemNotFound.
func (s *ItemService) Get(ctx context.Context, id string) (models.LocalItem, error) {
	for _, item := range s.readAll(ctx) {
		if item.ID == id {
			return item, nil
		}
	}
	return models.LocalItem{}, itemdomain.ErrItemNotFound
}

// Tags returns the de-duplicated union of all tags, first-seen order.
func (s *ItemService) Tags(ctx context.Context) []string {
	return domainsvcs.AllTags(s.readAll(ctx))
}

// Create validates and persists a new item. Validation runs before the
// collection is touched: a candidate without a name or coordinates yields
// ErrValidation and no read or write happens. The server always assigns the
// id; any client-supplied id is discarded.
func (s *ItemService) Create(ctx context.Context, candidate models.LocalItem) (models.LocalItem, error) {
	if candidate.Name == "" || candidate.Coordinates == nil {
		return models.LocalItem{}, itemdomain.ErrValidation
	}

	items := s.readAll(ctx)
	candidate.ID = uuid.NewString()
	items = append(items, candidate)
	s.writeAll(ctx, items)

	s.publish(ctx, events.TopicItemCreated, candidate)
	return candidate, nil
}

// Update shallow-merges patch onto the item with the given id and persists
// the collection. An unknown id yields ErrItemNotFound before any write.
func (s *ItemService) Update(ctx context.Context, id string, patch models.ItemPatch) (models.LocalItem, error) {
	items := s.readAll(ctx)
	idx := indexOf(items, id)
	if idx < 0 {
		return models.LocalItem{}, itemdomain.ErrItemNotFound
	}

	patch.ApplyTo(&items[idx])
	items[idx].ID = id
	s.writeAll(ctx, items)

	s.publish(ctx, events.TopicItemUpdated, items[idx])
	return items[idx], nil
}

// Delete removes the item with the given id, preserving the order of the
// rest, and returns the removed item. An unknown id yields ErrItemNotFound.
// Deleting the last item persists an empty array, not an empty file.
func (s *ItemService) Delete(ctx context.Context, id string) (models.LocalItem, error) {
	items := s.readAll(ctx)
	idx := indexOf(items, id)
	if idx < 0 {
		return models.LocalItem{}, itemdomain.ErrItemNotFound
	}

	removed := items[idx]
	items = append(items[:idx], items[idx+1:]...)
	s.writeAll(ctx, items)

	s.publish(ctx, events.TopicItemDeleted, removed)
	return removed, nil
}

// readAll loads the collection, degrading to empty on any read failure.
func (s *ItemService) readAll(ctx context.Context) []models.LocalItem {
	items, err := s.store.ReadAll(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "item store read failed, serving empty collection", "error", err)
		return []models.LocalItem{}
	}
	if items == nil {
		items = []models.LocalItem{}
	}
	return items
}

// writeAll persists the collection, logging failures without surfacing them.
func (s *ItemService) writeAll(ctx context.Context, items []models.LocalItem) {
	if err := s.store.WriteAll(ctx, items); err != nil {
		s.log.ErrorContext(ctx, "item store write failed, response reflects unpersisted state", "error", err)
	}
}

// publish emits an ItemEvent on topic. Event delivery is best effort and
// never fails the mutation.
func (s *ItemService) publish(ctx context.Context, topic string, item models.LocalItem) {
	if s.bus == nil {
		return
	}
	payload, err := json.Marshal(events.ItemEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		Type:       string(item.Type),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "item event encode failed", "topic", topic, "error", err)
		return
	}
	if err := s.bus.Publish(ctx, topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		s.log.ErrorContext(ctx, "item event publish failed", "topic", topic, "error", err)
	}
}

func indexOf(items []models.LocalItem, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
