// Package notifications centralizes structured logging of bot events
// (toggles, announcements, server transitions) to ease future ingestion.
package notifications

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"guildBot/internal/app/events"
)

type EventLogger struct {
	bus *events.Bus
	now func() time.Time
}

func NewEventLogger(bus *events.Bus) *EventLogger {
	return &EventLogger{
		bus: bus,
		now: time.Now,
	}
}

// Run consumes bus events until ctx is cancelled.
func (l *EventLogger) Run(ctx context.Context) {
	topics := []string{
		events.TopicInteraction,
		events.TopicAnnouncement,
		events.TopicServerState,
		events.TopicServerPlayer,
		events.TopicAppError,
	}

	type delivery struct {
		topic   string
		payload any
	}
	merged := make(chan delivery, 16)

	for _, topic := range topics {
		ch, cancel := l.bus.Subscribe(topic)
		defer cancel()
		go func(topic string, ch <-chan any) {
			for payload := range ch {
				select {
				case merged <- delivery{topic: topic, payload: payload}:
				case <-ctx.Done():
					return
				}
			}
		}(topic, ch)
	}

	for {
		select {
		case d := <-merged:
			l.logPayload(d.topic, d.payload)
		case <-ctx.Done():
			return
		}
	}
}

func (l *EventLogger) logPayload(topic string, payload any) {
	entry := map[string]any{
		"timestamp": l.now().UTC().Format(time.RFC3339Nano),
		"topic":     topic,
		"payload":   payload,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		log.Printf("[bot-events] %v", entry)
		return
	}
	log.Printf("[bot-events] %s", data)
}
