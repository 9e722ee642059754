package audit

import (
	"context"
	"time"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/pkg/logger"
	pkgEvents "counselling-portal-be/pkg/events"
)

const (
	EventReportGenerated = "REPORT_GENERATED"
	EventReportExported  = "REPORT_EXPORTED"

	// DefaultPublishTimeout bounds how long a report request waits on the bus.
	DefaultPublishTimeout = time.Second
)

// Publisher abstracts audit publishing for report operations. Publishing is
// best-effort: failures are logged and never reach the caller.
type Publisher interface {
	PublishReportGenerated(ctx context.Context, principal entity.Principal, reportType, groupBy string, total int)
	PublishReportExported(ctx context.Context, principal entity.Principal, reportType, filename string, rows, columns int)
}

// EventSink is satisfied by *nats.Publisher and *bus.LocalBus.
type EventSink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// BusPublisher implements Publisher on top of an event bus.
type BusPublisher struct {
	sink    EventSink
	logger  logger.ILogger
	now     func() time.Time
	timeout time.Duration
}

// NewBusPublisher accepts a nil sink, in which case every publish is a no-op.
func NewBusPublisher(sink EventSink, logger logger.ILogger) *BusPublisher {
	return &BusPublisher{
		sink:    sink,
		logger:  logger,
		now:     time.Now,
		timeout: DefaultPublishTimeout,
	}
}

func (p *BusPublisher) PublishReportGenerated(ctx context.Context, principal entity.Principal, reportType, groupBy string, total int) {
	now := p.now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: EventReportGenerated,
		Data: map[string]interface{}{
			"user_id":     principal.Id.String(),
			"role":        string(principal.Role),
			"report_type": reportType,
			"group_by":    groupBy,
			"total":       total,
			"entity_type": "report",
			"occurred_at": now,
		},
		OccurredAt: now,
	})
}

func (p *BusPublisher) PublishReportExported(ctx context.Context, principal entity.Principal, reportType, filename string, rows, columns int) {
	now := p.now()
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: EventReportExported,
		Data: map[string]interface{}{
			"user_id":     principal.Id.String(),
			"role":        string(principal.Role),
			"report_type": reportType,
			"filename":    filename,
			"rows":        rows,
			"columns":     columns,
			"entity_type": "report",
			"occurred_at": now,
		},
		OccurredAt: now,
	})
}

func (p *BusPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p == nil || p.sink == nil {
		return
	}
	// the audit event outlives a cancelled request but never stalls it for long
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("AUDIT", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
