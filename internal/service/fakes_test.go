package service

import (
	"context"
	"sort"
	"time"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/repository/contract"
	"counselling-portal-be/internal/repository/specification"
	"counselling-portal-be/internal/repository/unitofwork"
)

// store is an in-memory stand-in for the database. Its repositories interpret
// the specifications the services build, so scoping and filtering are tested
// without postgres.
type store struct {
	users        []*entity.User
	appointments []*entity.Appointment
	sessions     []*entity.Session

	err       error
	userReads int
	lastSpecs []specification.Specification
}

type fakeFactory struct{ s *store }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{s: f.s}
}

type fakeUnitOfWork struct{ s *store }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository {
	return &fakeUserRepository{s: u.s}
}
func (u *fakeUnitOfWork) AppointmentRepository() contract.AppointmentRepository {
	return &fakeAppointmentRepository{s: u.s}
}
func (u *fakeUnitOfWork) SessionRepository() contract.SessionRepository {
	return &fakeSessionRepository{s: u.s}
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

type fakeUserRepository struct{ s *store }

func (r *fakeUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.users = append(r.s.users, user)
	return r.s.err
}

func (r *fakeUserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.userReads++
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeUserRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	if r.s.err != nil {
		return nil, r.s.err
	}
	var out []*entity.User
	for _, u := range r.s.users {
		ok := true
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				ok = ok && u.Id == sp.ID
			case specification.ByRole:
				ok = ok && string(u.Role) == sp.Role
			case specification.ActiveUsers:
				ok = ok && u.IsActive
			}
		}
		if ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeAppointmentRepository struct{ s *store }

func (r *fakeAppointmentRepository) matches(a *entity.Appointment, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.DateBetween:
			if !inRange(a.CreatedAt, sp.From, sp.To) {
				return false
			}
		case specification.ByCounsellor:
			if a.CounsellorId == nil || *a.CounsellorId != sp.CounsellorID {
				return false
			}
		case specification.FilterBy:
			switch sp.Field {
			case specification.AppointmentStatus:
				if string(a.Status) != sp.Value {
					return false
				}
			case specification.AppointmentCategory:
				if string(a.Category) != sp.Value {
					return false
				}
			}
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		}
	}
	return true
}

func (r *fakeAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.s.appointments = append(r.s.appointments, appointment)
	return r.s.err
}

func (r *fakeAppointmentRepository) FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Appointment, error) {
	r.s.lastSpecs = specs
	if r.s.err != nil {
		return nil, r.s.err
	}
	var out []*entity.Appointment
	for _, a := range r.s.appointments {
		if r.matches(a, specs) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAllWithParties(ctx, specs...)
	return int64(len(all)), err
}

func (r *fakeAppointmentRepository) CountByCategory(ctx context.Context, specs ...specification.Specification) ([]entity.CategoryCount, error) {
	all, err := r.FindAllWithParties(ctx, specs...)
	if err != nil {
		return nil, err
	}
	counts := map[entity.Category]int64{}
	for _, a := range all {
		counts[a.Category]++
	}
	var out []entity.CategoryCount
	for c, n := range counts {
		out = append(out, entity.CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

type fakeSessionRepository struct{ s *store }

func (r *fakeSessionRepository) matches(s *entity.Session, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.DateBetween:
			if !inRange(s.SessionDate, sp.From, sp.To) {
				return false
			}
		case specification.ByCounsellor:
			if s.CounsellorId != sp.CounsellorID {
				return false
			}
		case specification.SessionAppointmentCategory:
			if s.Appointment == nil || string(s.Appointment.Category) != sp.Category {
				return false
			}
		case specification.FilterBy:
			switch sp.Field {
			case specification.SessionProgress:
				if string(s.Progress) != sp.Value {
					return false
				}
			case specification.SessionFollowUp:
				if s.IsFollowUpRequired != sp.Value {
					return false
				}
			}
		}
	}
	return true
}

func (r *fakeSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	r.s.sessions = append(r.s.sessions, session)
	return r.s.err
}

func (r *fakeSessionRepository) FindAllWithParties(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	r.s.lastSpecs = specs
	if r.s.err != nil {
		return nil, r.s.err
	}
	var out []*entity.Session
	for _, s := range r.s.sessions {
		if r.matches(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, err := r.FindAllWithParties(ctx, specs...)
	return int64(len(all)), err
}

type recordedAudit struct {
	kind       string
	principal  entity.Principal
	reportType string
	total      int
	filename   string
}

type fakeAudit struct {
	events []recordedAudit
}

func (a *fakeAudit) PublishReportGenerated(ctx context.Context, principal entity.Principal, reportType, groupBy string, total int) {
	a.events = append(a.events, recordedAudit{kind: "generated", principal: principal, reportType: reportType, total: total})
}

func (a *fakeAudit) PublishReportExported(ctx context.Context, principal entity.Principal, reportType, filename string, rows, columns int) {
	a.events = append(a.events, recordedAudit{kind: "exported", principal: principal, reportType: reportType, filename: filename, total: rows})
}
