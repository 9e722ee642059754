package report

import (
	"fmt"
	"strings"

	"counselling-portal-be/internal/entity"

	"github.com/google/uuid"
)

type Kind string

const (
	KindAppointments Kind = "appointments"
	KindSessions     Kind = "sessions"
)

type DateRange string

const (
	RangeAll    DateRange = ""
	RangeToday  DateRange = "today"
	RangeWeek   DateRange = "week"
	RangeMonth  DateRange = "month"
	RangeCustom DateRange = "custom"
)

type GroupBy string

const (
	GroupNone       GroupBy = ""
	GroupCounsellor GroupBy = "counsellor"
	GroupCategory   GroupBy = "category"
	GroupDate       GroupBy = "date"
	GroupDepartment GroupBy = "department"
)

// Criteria holds the parts of a report request shared by every report kind.
type Criteria struct {
	DateRange DateRange
	// StartDate and EndDate are RFC3339 timestamps or YYYY-MM-DD days.
	StartDate string
	EndDate   string

	ResidenceType string
	Department    string
	CounsellorId  *uuid.UUID

	GroupBy GroupBy
	Fields  []string
}

// Query is a report request. It is either an *AppointmentQuery or a *SessionQuery.
type Query interface {
	Kind() Kind
	Base() *Criteria
}

type AppointmentQuery struct {
	Criteria
	Status   entity.AppointmentStatus
	Category entity.Category
}

func (q *AppointmentQuery) Kind() Kind      { return KindAppointments }
func (q *AppointmentQuery) Base() *Criteria { return &q.Criteria }

// SessionQuery filters category through the session's parent appointment,
// since sessions carry no category of their own. Sessions have no status, so
// Status is only echoed back in the summary filters.
type SessionQuery struct {
	Criteria
	Status   string
	Category entity.Category
}

func (q *SessionQuery) Kind() Kind      { return KindSessions }
func (q *SessionQuery) Base() *Criteria { return &q.Criteria }

// Spec is the untyped form of a report request as it arrives from a client.
type Spec struct {
	ReportType    string
	DateRange     string
	StartDate     string
	EndDate       string
	Category      string
	Status        string
	ResidenceType string
	Department    string
	CounsellorId  string
	GroupBy       string
	Fields        []string
}

// ParseQuery validates a Spec and turns it into the Query variant for its report type.
func ParseQuery(s Spec) (Query, error) {
	fields := map[string]string{}

	criteria := Criteria{
		DateRange:     DateRange(strings.TrimSpace(s.DateRange)),
		StartDate:     strings.TrimSpace(s.StartDate),
		EndDate:       strings.TrimSpace(s.EndDate),
		ResidenceType: strings.TrimSpace(s.ResidenceType),
		Department:    strings.TrimSpace(s.Department),
		GroupBy:       GroupBy(strings.TrimSpace(s.GroupBy)),
		Fields:        s.Fields,
	}

	switch criteria.DateRange {
	case RangeAll, RangeToday, RangeWeek, RangeMonth:
	case RangeCustom:
		if criteria.StartDate == "" {
			fields["startDate"] = "required when dateRange is custom"
		}
		if criteria.EndDate == "" {
			fields["endDate"] = "required when dateRange is custom"
		}
	default:
		fields["dateRange"] = "must be one of today, week, month, custom"
	}

	switch criteria.GroupBy {
	case GroupNone, GroupCounsellor, GroupCategory, GroupDate, GroupDepartment:
	default:
		fields["groupBy"] = "must be one of counsellor, category, date, department"
	}

	if criteria.ResidenceType != "" && !entity.ResidenceType(criteria.ResidenceType).IsValid() {
		fields["residenceType"] = fmt.Sprintf("unknown residence type %q", criteria.ResidenceType)
	}

	if id := strings.TrimSpace(s.CounsellorId); id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			fields["counsellorId"] = "must be a valid id"
		} else {
			criteria.CounsellorId = &parsed
		}
	}

	category := entity.Category(strings.TrimSpace(s.Category))
	if category != "" && !category.IsValid() {
		fields["category"] = fmt.Sprintf("unknown category %q", category)
	}

	var q Query
	switch Kind(strings.TrimSpace(s.ReportType)) {
	case KindAppointments:
		status := entity.AppointmentStatus(strings.TrimSpace(s.Status))
		if status != "" && !status.IsValid() {
			fields["status"] = fmt.Sprintf("unknown status %q", status)
		}
		q = &AppointmentQuery{Criteria: criteria, Status: status, Category: category}
	case KindSessions:
		q = &SessionQuery{Criteria: criteria, Status: strings.TrimSpace(s.Status), Category: category}
	default:
		fields["reportType"] = "must be one of sessions, appointments"
	}

	if len(fields) > 0 {
		return nil, InvalidRequest("malformed report query", fields)
	}
	return q, nil
}
