package audit

import (
	"context"
	"fmt"

	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/pkg/events"
)

// EventSource is satisfied by *nats.Subscriber and *bus.LocalBus.
type EventSource interface {
	Subscribe(subject string, durableName string, handler func(ctx context.Context, event events.Event) error) error
}

// Trail consumes report audit events and appends them to a dedicated log file.
type Trail struct {
	source EventSource
	sink   logger.ILogger
}

func NewTrail(source EventSource, sink logger.ILogger) *Trail {
	return &Trail{
		source: source,
		sink:   sink,
	}
}

// Start registers one durable consumer per audit event type.
func (t *Trail) Start() error {
	if t.source == nil {
		return nil
	}
	for _, eventType := range []string{EventReportGenerated, EventReportExported} {
		subject := "events." + eventType
		if err := t.source.Subscribe(subject, "report-audit-"+eventType, t.Handle); err != nil {
			return fmt.Errorf("subscribe %s: %w", subject, err)
		}
	}
	return nil
}

func (t *Trail) Handle(ctx context.Context, event events.Event) error {
	details := make(map[string]interface{}, len(event.Payload())+1)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["event_type"] = event.EventType()

	t.sink.Info("AUDIT", event.EventType(), details)
	return nil
}
