package storage

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"taam-menu/internal/bus"
	"taam-menu/internal/domain"
)

// KafkaEventMirror forwards bus events to an analytics topic. It is an
// ordinary subscriber: in-process delivery does not depend on it, and a
// broker failure only costs the mirrored copy.
type KafkaEventMirror struct {
	Writer *kafka.Writer
}

func NewKafkaEventMirror(writer *kafka.Writer) *KafkaEventMirror {
	return &KafkaEventMirror{Writer: writer}
}

// Attach subscribes the mirror to every event the dashboard publishes.
func (m *KafkaEventMirror) Attach(events *bus.Bus) {
	for _, name := range []string{
		domain.EventRestaurantUpdated,
		domain.EventSubscriptionUpdated,
		domain.EventDashboardNavigate,
	} {
		eventName := name
		events.Subscribe(eventName, func(detail domain.EventDetail) {
			m.publish(eventName, detail)
		})
	}
}

func (m *KafkaEventMirror) publish(name string, detail domain.EventDetail) {
	msg := domain.EventMessage{
		Type:      name,
		Team:      detail.Team,
		Panel:     detail.Panel,
		Timestamp: time.Now(),
	}
	payload, _ := json.Marshal(msg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(name),
		Value: payload,
	}); err != nil {
		log.Printf("[events] kafka mirror write failed: %v", err)
	}
}
