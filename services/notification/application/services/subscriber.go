package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	pkgevents "github.com/ghuser/locallister/pkg/events"
	"github.com/ghuser/locallister/pkg/logger"
	itemevents "github.com/ghuser/locallister/services/localitem/domain/events"
	"github.com/ghuser/locallister/services/notification/domain/models"
)

// RegisterSubscribers subscribes the center to the item mutation topics so
// every create, update, and delete produces a feed entry. Must be called
// before the HTTP server starts accepting traffic; the in-process bus does
// not replay messages published before a subscription exists.
func RegisterSubscribers(ctx context.Context, bus *pkgevents.EventBus, center *Center, log logger.Logger) error {
	topics := map[string]func(itemevents.ItemEvent) (string, models.Severity){
		itemevents.TopicItemCreated: func(e itemevents.ItemEvent) (string, models.Severity) {
			return fmt.Sprintf("%q added to the map", e.Name), models.SeveritySuccess
		},
		itemevents.TopicItemUpdated: func(e itemevents.ItemEvent) (string, models.Severity) {
			return fmt.Sprintf("%q updated", e.Name), models.SeverityInfo
		},
		itemevents.TopicItemDeleted: func(e itemevents.ItemEvent) (string, models.Severity) {
			return fmt.Sprintf("%q removed from the map", e.Name), models.SeverityInfo
		},
	}

	for topic, render := range topics {
		errCh, err := bus.Subscribe(ctx, topic, makeHandler(center, render, log))
		if err != nil {
			return fmt.Errorf("notifications: subscribe %s: %w", topic, err)
		}
		go func(topic string) {
			for err := range errCh {
				log.ErrorContext(ctx, "notifications: subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}
	return nil
}

func makeHandler(center *Center, render func(itemevents.ItemEvent) (string, models.Severity), log logger.Logger) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var e itemevents.ItemEvent
		if err := json.Unmarshal(msg.Payload, &e); err != nil {
			// Malformed payloads never succeed on retry; drop with a log.
			log.ErrorContext(ctx, "notifications: malformed event payload", "error", err)
			return nil
		}
		text, severity := render(e)
		n := center.Push(ctx, text, severity)
		log.InfoContext(ctx, "notification pushed",
			"notification_id", n.ID, "severity", n.Severity, "item_id", e.ItemID)
		return nil
	}
}
