package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
)

// Event routing keys published to the message broker.
const (
	EventOrderCreated      = "order.created"
	EventOrderStatusChange = "order.status_changed"
	EventInventoryApproved = "inventory.approved"
)

// EventPublisher publishes domain events. Satisfied by the RabbitMQ
// client; mocked in tests.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// Envelope wraps every published event with an ID and timestamp so
// consumers can deduplicate.
type Envelope struct {
	EventID    string      `json:"event_id"`
	EventType  string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload"`
}

// publishEvent sends an enveloped event. Publish failures are logged and
// swallowed: events are notifications, never part of the transactional
// outcome.
func publishEvent(publisher EventPublisher, eventType string, payload interface{}) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(Envelope{
		EventID:    uuid.New().String(),
		EventType:  eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := publisher.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
