package stats

import (
	"context"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/internal/repository/specification"
	"counselling-portal-be/internal/repository/unitofwork"
	"counselling-portal-be/pkg/report"

	"github.com/google/uuid"
)

// Aggregator computes the report dashboard counters.
type Aggregator struct {
	logger logger.ILogger
}

func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats counts over everything, or only one counsellor's caseload when
// counsellorId is set. Each counter is an independent read.
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork, counsellorId *uuid.UUID) (*report.Stats, error) {
	var appointmentScope, sessionScope []specification.Specification
	if counsellorId != nil {
		appointmentScope = append(appointmentScope, specification.ByCounsellor{Column: specification.AppointmentCounsellor, CounsellorID: *counsellorId})
		sessionScope = append(sessionScope, specification.ByCounsellor{Column: specification.SessionCounsellor, CounsellorID: *counsellorId})
	}

	appointments := uow.AppointmentRepository()
	sessions := uow.SessionRepository()

	totalSessions, err := sessions.Count(ctx, sessionScope...)
	if err != nil {
		return nil, report.StorageError("count sessions", err)
	}

	totalAppointments, err := appointments.Count(ctx, appointmentScope...)
	if err != nil {
		return nil, report.StorageError("count appointments", err)
	}

	pending, err := appointments.Count(ctx, with(appointmentScope,
		specification.Filter(specification.AppointmentStatus, string(entity.AppointmentPending)))...)
	if err != nil {
		return nil, report.StorageError("count pending appointments", err)
	}

	completed, err := sessions.Count(ctx, with(sessionScope,
		specification.Filter(specification.SessionProgress, string(entity.ProgressResolved)))...)
	if err != nil {
		return nil, report.StorageError("count resolved sessions", err)
	}

	followUp, err := sessions.Count(ctx, with(sessionScope,
		specification.Filter(specification.SessionFollowUp, true))...)
	if err != nil {
		return nil, report.StorageError("count follow-up sessions", err)
	}

	counts, err := appointments.CountByCategory(ctx, appointmentScope...)
	if err != nil {
		return nil, report.StorageError("count appointments by category", err)
	}

	breakdown := make([]report.CategoryStat, 0, len(counts))
	for _, c := range counts {
		breakdown = append(breakdown, report.CategoryStat{
			Category: string(c.Category),
			Count:    c.Count,
		})
	}

	a.logger.Debug("REPORT", "Stats computed", map[string]interface{}{
		"scoped":             counsellorId != nil,
		"total_appointments": totalAppointments,
		"total_sessions":     totalSessions,
	})

	return &report.Stats{
		Overview: report.Overview{
			TotalSessions:       totalSessions,
			TotalAppointments:   totalAppointments,
			PendingAppointments: pending,
			CompletedSessions:   completed,
			FollowUpRequired:    followUp,
		},
		CategoryBreakdown: breakdown,
	}, nil
}

func with(scope []specification.Specification, extra ...specification.Specification) []specification.Specification {
	out := make([]specification.Specification, 0, len(scope)+len(extra))
	out = append(out, scope...)
	return append(out, extra...)
}
