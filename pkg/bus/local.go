package bus

import (
	"context"
	"fmt"
	"log"
	"strings"

	"counselling-portal-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const topicPrefix = "events."

// EventHandler is a function that processes an event.
type EventHandler = func(ctx context.Context, event events.Event) error

// LocalBus is an in-process event bus used when NATS is not reachable.
// Events are lost on restart and only reach subscribers registered before publishing.
type LocalBus struct {
	pubSub *gochannel.GoChannel
	ctx    context.Context
	cancel context.CancelFunc
}

func NewLocalBus() *LocalBus {
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NopLogger{},
	)
	ctx, cancel := context.WithCancel(context.Background())
	return &LocalBus{pubSub: pubSub, ctx: ctx, cancel: cancel}
}

// Publish sends an event on the events.<TYPE> topic.
func (b *LocalBus) Publish(ctx context.Context, event events.Event) error {
	data, err := events.Encode(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.SetContext(ctx)

	topic := topicPrefix + event.EventType()
	if err := b.pubSub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish event to topic %s: %w", topic, err)
	}
	return nil
}

// Subscribe registers a handler for a topic. The durable name is accepted for
// parity with the NATS subscriber and ignored.
func (b *LocalBus) Subscribe(subject string, _ string, handler EventHandler) error {
	messages, err := b.pubSub.Subscribe(b.ctx, subject)
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
	}

	eventType := strings.TrimPrefix(subject, topicPrefix)
	go func() {
		for msg := range messages {
			b.process(eventType, msg, handler)
		}
	}()
	return nil
}

func (b *LocalBus) process(eventType string, msg *message.Message, handler EventHandler) {
	event, err := events.Decode(eventType, msg.Payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack()
		return
	}

	// Nack redelivers immediately on a gochannel, so failures are logged and acked.
	if err := handler(msg.Context(), event); err != nil {
		log.Printf("[ERROR] Handler failed for event %s: %v", eventType, err)
	}
	msg.Ack()
}

func (b *LocalBus) Close() {
	b.cancel()
	if err := b.pubSub.Close(); err != nil {
		log.Printf("[WARN] Failed to close local bus: %v", err)
	}
}
