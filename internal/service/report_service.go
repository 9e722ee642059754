package service

import (
	"context"

	"counselling-portal-be/internal/dto"
	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/mapper"
	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/internal/repository/specification"
	"counselling-portal-be/internal/repository/unitofwork"
	"counselling-portal-be/pkg/audit"
	"counselling-portal-be/pkg/report"
	"counselling-portal-be/pkg/report/stats"

	"github.com/google/uuid"
)

type IReportService interface {
	Generate(ctx context.Context, principal entity.Principal, q report.Query) (*report.Result, error)
	Export(ctx context.Context, principal entity.Principal, req *dto.ExportReportRequest) (*report.File, error)
	Stats(ctx context.Context, principal entity.Principal) (*report.Stats, error)
}

type reportService struct {
	uowFactory unitofwork.RepositoryFactory
	clock      report.Clock
	mapper     *mapper.ReportMapper
	exporter   *report.Exporter
	aggregator *stats.Aggregator
	audit      audit.Publisher
	logger     logger.ILogger
}

func NewReportService(
	uowFactory unitofwork.RepositoryFactory,
	clock report.Clock,
	auditPublisher audit.Publisher,
	logger logger.ILogger,
) IReportService {
	return &reportService{
		uowFactory: uowFactory,
		clock:      clock,
		mapper:     mapper.NewReportMapper(),
		exporter:   report.NewExporter(clock),
		aggregator: stats.NewAggregator(logger),
		audit:      auditPublisher,
		logger:     logger,
	}
}

func (s *reportService) Generate(ctx context.Context, principal entity.Principal, q report.Query) (*report.Result, error) {
	if !principal.CanReport() {
		return nil, report.PermissionDenied()
	}
	if q == nil {
		return nil, report.InvalidField("reportType", "required")
	}

	bounds, err := report.ResolveDateRange(*q.Base(), s.clock)
	if err != nil {
		return nil, err
	}

	counsellorId := scopeFor(principal, q.Base().CounsellorId)
	applied := report.Filters{
		ResidenceType: q.Base().ResidenceType,
		Department:    q.Base().Department,
		CounsellorId:  counsellorId,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var records []*report.Record
	switch q := q.(type) {
	case *report.AppointmentQuery:
		specs := []specification.Specification{
			specification.DateBetween{Column: specification.AppointmentCreatedAt, From: bounds.Start, To: bounds.End},
		}
		if q.Status != "" {
			specs = append(specs, specification.Filter(specification.AppointmentStatus, string(q.Status)))
			applied.Status = string(q.Status)
		}
		if q.Category != "" {
			specs = append(specs, specification.Filter(specification.AppointmentCategory, string(q.Category)))
			applied.Category = string(q.Category)
		}
		if counsellorId != nil {
			specs = append(specs, specification.ByCounsellor{Column: specification.AppointmentCounsellor, CounsellorID: *counsellorId})
		}
		specs = append(specs, specification.OrderBy{Field: specification.AppointmentCreatedAt, Desc: true})

		appointments, err := uow.AppointmentRepository().FindAllWithParties(ctx, specs...)
		if err != nil {
			return nil, s.storageError("load appointments", principal, err)
		}
		records = s.mapper.FromAppointments(appointments)

	case *report.SessionQuery:
		specs := []specification.Specification{
			specification.DateBetween{Column: specification.SessionDate, From: bounds.Start, To: bounds.End},
		}
		// echoed, never applied
		applied.Status = q.Status
		if q.Category != "" {
			// Sessions have no category column; match the parent appointment's.
			specs = append(specs, specification.SessionAppointmentCategory{Category: string(q.Category)})
			applied.Category = string(q.Category)
		}
		if counsellorId != nil {
			specs = append(specs, specification.ByCounsellor{Column: specification.SessionCounsellor, CounsellorID: *counsellorId})
		}
		specs = append(specs, specification.OrderBy{Field: specification.SessionDate, Desc: true})

		sessions, err := uow.SessionRepository().FindAllWithParties(ctx, specs...)
		if err != nil {
			return nil, s.storageError("load sessions", principal, err)
		}
		records = s.mapper.FromSessions(sessions)

	default:
		return nil, report.InvalidField("reportType", "must be one of sessions, appointments")
	}

	res := report.Assemble(q, bounds, applied, records, s.clock.Location())

	s.logger.Info("REPORT", "Report generated", map[string]interface{}{
		"user_id":     principal.Id.String(),
		"report_type": string(q.Kind()),
		"group_by":    string(q.Base().GroupBy),
		"total":       res.Summary.Total,
	})
	s.audit.PublishReportGenerated(ctx, principal, string(q.Kind()), string(q.Base().GroupBy), res.Summary.Total)

	return res, nil
}

func (s *reportService) Export(ctx context.Context, principal entity.Principal, req *dto.ExportReportRequest) (*report.File, error) {
	if !principal.CanReport() {
		return nil, report.PermissionDenied()
	}
	if req == nil {
		return nil, report.InvalidField("data", "required")
	}

	file, err := s.exporter.Export(req.Data, req.Fields, req.Title)
	if err != nil {
		s.logger.Error("REPORT", "Report export failed", map[string]interface{}{
			"user_id": principal.Id.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	s.logger.Info("REPORT", "Report exported", map[string]interface{}{
		"user_id":  principal.Id.String(),
		"filename": file.Filename,
		"rows":     len(req.Data),
		"columns":  len(req.Fields),
	})
	s.audit.PublishReportExported(ctx, principal, req.ReportType, file.Filename, len(req.Data), len(req.Fields))

	return file, nil
}

func (s *reportService) Stats(ctx context.Context, principal entity.Principal) (*report.Stats, error) {
	if !principal.CanReport() {
		return nil, report.PermissionDenied()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	res, err := s.aggregator.GetStats(ctx, uow, scopeFor(principal, nil))
	if err != nil {
		s.logger.Error("REPORT", "Failed to compute report stats", map[string]interface{}{
			"user_id": principal.Id.String(),
			"error":   err.Error(),
		})
		return nil, err
	}
	return res, nil
}

func (s *reportService) storageError(op string, principal entity.Principal, err error) error {
	s.logger.Error("REPORT", "Report query failed", map[string]interface{}{
		"op":      op,
		"user_id": principal.Id.String(),
		"error":   err.Error(),
	})
	return report.StorageError(op, err)
}

// scopeFor returns the counsellor a query is restricted to. Counsellors only
// ever see their own caseload, whatever they asked for; admins see the
// requested counsellor, or everyone.
func scopeFor(principal entity.Principal, requested *uuid.UUID) *uuid.UUID {
	if principal.IsCounsellor() {
		id := principal.Id
		return &id
	}
	return requested
}
