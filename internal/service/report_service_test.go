package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"counselling-portal-be/internal/dto"
	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/pkg/logger"
	"counselling-portal-be/pkg/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Friday 15 March 2024, noon.
var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store   *store
	audit   *fakeAudit
	service IReportService

	admin, asha, ben, client entity.Principal
	a1, a2, a3               *entity.Appointment
	s1, s2, s3               *entity.Session
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{store: &store{}, audit: &fakeAudit{}}

	ashaUser := &entity.User{Id: uuid.New(), Name: "Dr. Asha", Email: "asha@uni.edu", Role: entity.UserRoleCounsellor, IsActive: true}
	benUser := &entity.User{Id: uuid.New(), Name: "Dr. Ben", Email: "ben@uni.edu", Role: entity.UserRoleCounsellor, IsActive: true}
	hosteller := &entity.User{Id: uuid.New(), Name: "Riya", Role: entity.UserRoleClient, Department: "CSE", ResidenceType: entity.ResidenceHosteller, RegistrationNumber: "21BCE001", IsActive: true}
	dayScholar := &entity.User{Id: uuid.New(), Name: "Arjun", Role: entity.UserRoleClient, Department: "ECE", ResidenceType: entity.ResidenceDayScholar, IsActive: true}

	f.admin = entity.Principal{Id: uuid.New(), Role: entity.UserRoleAdmin}
	f.asha = entity.Principal{Id: ashaUser.Id, Role: entity.UserRoleCounsellor}
	f.ben = entity.Principal{Id: benUser.Id, Role: entity.UserRoleCounsellor}
	f.client = entity.Principal{Id: hosteller.Id, Role: entity.UserRoleClient}

	f.a1 = &entity.Appointment{Id: uuid.New(), ClientId: hosteller.Id, Client: hosteller, Category: entity.CategoryAnxiety, Status: entity.AppointmentPending, CreatedAt: time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)}
	f.a1.Accept(ashaUser.Id, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), "10:00")
	f.a1.Counsellor = ashaUser

	f.a2 = &entity.Appointment{Id: uuid.New(), ClientId: dayScholar.Id, Client: dayScholar, Category: entity.CategoryAcademicStress, Status: entity.AppointmentPending, CreatedAt: time.Date(2024, 3, 12, 10, 0, 0, 0, time.UTC)}

	f.a3 = &entity.Appointment{Id: uuid.New(), ClientId: hosteller.Id, Client: hosteller, Category: entity.CategoryDepression, Status: entity.AppointmentPending, CreatedAt: time.Date(2024, 2, 20, 8, 0, 0, 0, time.UTC)}
	f.a3.Accept(benUser.Id, time.Date(2024, 2, 21, 0, 0, 0, 0, time.UTC), "11:00")
	f.a3.Counsellor = benUser

	f.s1 = entity.NewSession(f.a1, "Breathing exercises", entity.ProgressResolved, time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC))
	f.s1.Client, f.s1.Counsellor = hosteller, ashaUser
	f.s2 = entity.NewSession(f.a3, "Initial assessment", entity.ProgressFollowUpRequired, time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC))
	f.s2.Client, f.s2.Counsellor = hosteller, benUser
	f.s3 = entity.NewSession(f.a1, "Check-in", entity.ProgressOngoing, time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC))
	f.s3.ClientId, f.s3.Client, f.s3.Counsellor = dayScholar.Id, dayScholar, ashaUser

	f.store.users = []*entity.User{ashaUser, benUser, hosteller, dayScholar}
	f.store.appointments = []*entity.Appointment{f.a1, f.a2, f.a3}
	f.store.sessions = []*entity.Session{f.s1, f.s2, f.s3}

	f.service = NewReportService(fakeFactory{s: f.store}, report.FixedClock{At: now}, f.audit, logger.NewNopLogger())
	return f
}

func generate(t *testing.T, f *fixture, principal entity.Principal, spec report.Spec) *report.Result {
	t.Helper()
	q, err := report.ParseQuery(spec)
	require.NoError(t, err)
	res, err := f.service.Generate(context.Background(), principal, q)
	require.NoError(t, err)
	return res
}

func ids(records []*report.Record) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		out = append(out, uuid.MustParse(r.Id))
	}
	return out
}

func TestReportService_RejectsClients(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	q, err := report.ParseQuery(report.Spec{ReportType: "sessions"})
	require.NoError(t, err)

	_, err = f.service.Generate(ctx, f.client, q)
	assert.ErrorIs(t, err, report.ErrPermissionDenied)

	_, err = f.service.Export(ctx, f.client, &dto.ExportReportRequest{Data: []*report.Record{}, Fields: []string{"summary"}})
	assert.ErrorIs(t, err, report.ErrPermissionDenied)

	_, err = f.service.Stats(ctx, f.client)
	assert.ErrorIs(t, err, report.ErrPermissionDenied)

	assert.Empty(t, f.audit.events)
}

func TestGenerate_SessionsSortedByDateDesc(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions"})

	assert.False(t, res.Grouped())
	assert.Equal(t, []uuid.UUID{f.s1.Id, f.s3.Id, f.s2.Id}, ids(res.Records))
	assert.Equal(t, 3, res.Summary.Total)
	assert.Equal(t, report.KindSessions, res.Summary.ReportType)
}

func TestGenerate_CounsellorIsAlwaysScopedToSelf(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.asha, report.Spec{ReportType: "sessions", CounsellorId: f.ben.Id.String()})

	assert.Equal(t, []uuid.UUID{f.s1.Id, f.s3.Id}, ids(res.Records))
	for _, r := range res.Records {
		assert.Equal(t, f.asha.Id.String(), r.Counsellor.Id)
	}
	require.NotNil(t, res.Summary.Filters.CounsellorId)
	assert.Equal(t, f.asha.Id, *res.Summary.Filters.CounsellorId)
}

func TestGenerate_AdminMayScopeToCounsellor(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "appointments", CounsellorId: f.ben.Id.String()})

	assert.Equal(t, []uuid.UUID{f.a3.Id}, ids(res.Records))
}

func TestGenerate_DateRanges(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name     string
		spec     report.Spec
		expected func() []uuid.UUID
	}{
		{
			name:     "today",
			spec:     report.Spec{ReportType: "appointments", DateRange: "today"},
			expected: func() []uuid.UUID { return []uuid.UUID{f.a1.Id} },
		},
		{
			name:     "week starts on sunday",
			spec:     report.Spec{ReportType: "appointments", DateRange: "week"},
			expected: func() []uuid.UUID { return []uuid.UUID{f.a1.Id, f.a2.Id} },
		},
		{
			name:     "month",
			spec:     report.Spec{ReportType: "sessions", DateRange: "month"},
			expected: func() []uuid.UUID { return []uuid.UUID{f.s1.Id, f.s3.Id, f.s2.Id} },
		},
		{
			name:     "custom end date covers the whole day",
			spec:     report.Spec{ReportType: "sessions", DateRange: "custom", StartDate: "2024-03-01", EndDate: "2024-03-14"},
			expected: func() []uuid.UUID { return []uuid.UUID{f.s3.Id, f.s2.Id} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := generate(t, f, f.admin, tt.spec)
			assert.Equal(t, tt.expected(), ids(res.Records))
		})
	}
}

func TestGenerate_CustomRangeRequiresBothBounds(t *testing.T) {
	f := newFixture(t)

	q := &report.SessionQuery{Criteria: report.Criteria{DateRange: report.RangeCustom, StartDate: "2024-03-01"}}
	_, err := f.service.Generate(context.Background(), f.admin, q)
	assert.ErrorIs(t, err, report.ErrInvalidRequest)
}

func TestGenerate_AppointmentFilters(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "appointments", Status: "pending"})
	assert.Equal(t, []uuid.UUID{f.a2.Id}, ids(res.Records))
	assert.Equal(t, "pending", res.Summary.Filters.Status)

	res = generate(t, f, f.admin, report.Spec{ReportType: "appointments", Category: "Depression"})
	assert.Equal(t, []uuid.UUID{f.a3.Id}, ids(res.Records))
}

func TestGenerate_SessionCategoryUsesParentAppointment(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions", Category: "Anxiety"})

	assert.Equal(t, []uuid.UUID{f.s1.Id, f.s3.Id}, ids(res.Records))
	assert.Equal(t, "Anxiety", res.Summary.Filters.Category)
}

func TestGenerate_SessionStatusIsEchoedNotApplied(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions", Status: "completed"})

	assert.Equal(t, []uuid.UUID{f.s1.Id, f.s3.Id, f.s2.Id}, ids(res.Records))
	assert.Equal(t, "completed", res.Summary.Filters.Status)
}

func TestGenerate_ClientPostFilters(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions", ResidenceType: "Hosteller"})
	assert.Equal(t, []uuid.UUID{f.s1.Id, f.s2.Id}, ids(res.Records))
	assert.Equal(t, 2, res.Summary.Total)

	res = generate(t, f, f.admin, report.Spec{ReportType: "appointments", Department: "ECE"})
	assert.Equal(t, []uuid.UUID{f.a2.Id}, ids(res.Records))
}

func TestGenerate_GroupByCounsellor(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "appointments", GroupBy: "counsellor"})

	require.True(t, res.Grouped())
	assert.Nil(t, res.Records)
	assert.Equal(t, 3, res.Summary.Total)
	assert.Equal(t, []uuid.UUID{f.a1.Id}, ids(res.Groups["Dr. Asha"]))
	assert.Equal(t, []uuid.UUID{f.a3.Id}, ids(res.Groups["Dr. Ben"]))
	assert.Equal(t, []uuid.UUID{f.a2.Id}, ids(res.Groups[report.UnassignedKey]))
}

func TestGenerate_GroupSessionsByDate(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions", GroupBy: "date"})

	assert.Len(t, res.Groups, 3)
	assert.Equal(t, []uuid.UUID{f.s1.Id}, ids(res.Groups["2024-03-15"]))
	assert.Equal(t, []uuid.UUID{f.s2.Id}, ids(res.Groups["2024-03-01"]))
}

func TestGenerate_Idempotent(t *testing.T) {
	f := newFixture(t)
	spec := report.Spec{ReportType: "sessions", DateRange: "month", GroupBy: "category"}

	first := generate(t, f, f.admin, spec)
	second := generate(t, f, f.admin, spec)

	assert.Equal(t, first, second)
}

func TestGenerate_EmptyResult(t *testing.T) {
	f := newFixture(t)

	res := generate(t, f, f.ben, report.Spec{ReportType: "appointments", DateRange: "today"})

	assert.Empty(t, res.Records)
	assert.Equal(t, 0, res.Summary.Total)
}

func TestGenerate_StorageFailure(t *testing.T) {
	f := newFixture(t)
	f.store.err = errors.New("connection refused")

	q, err := report.ParseQuery(report.Spec{ReportType: "appointments"})
	require.NoError(t, err)

	_, err = f.service.Generate(context.Background(), f.admin, q)
	assert.ErrorIs(t, err, report.ErrStorage)
	assert.Empty(t, f.audit.events)
}

func TestGenerate_PublishesAudit(t *testing.T) {
	f := newFixture(t)

	generate(t, f, f.asha, report.Spec{ReportType: "sessions"})

	require.Len(t, f.audit.events, 1)
	assert.Equal(t, "generated", f.audit.events[0].kind)
	assert.Equal(t, f.asha, f.audit.events[0].principal)
	assert.Equal(t, "sessions", f.audit.events[0].reportType)
	assert.Equal(t, 2, f.audit.events[0].total)
}

func TestExport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res := generate(t, f, f.admin, report.Spec{ReportType: "sessions"})

	file, err := f.service.Export(ctx, f.admin, &dto.ExportReportRequest{
		Data:       res.Records,
		ReportType: "sessions",
		Fields:     []string{"client.name", "sessionDate", "progress"},
		Title:      "March Sessions",
	})
	require.NoError(t, err)

	assert.Equal(t, "March Sessions_2024-03-15.xlsx", file.Filename)
	assert.Equal(t, report.ContentTypeXLSX, file.ContentType)
	assert.NotEmpty(t, file.Data)

	require.Len(t, f.audit.events, 2)
	assert.Equal(t, "exported", f.audit.events[1].kind)
	assert.Equal(t, 3, f.audit.events[1].total)
}

func TestExport_InvalidInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.service.Export(ctx, f.admin, &dto.ExportReportRequest{Data: []*report.Record{}})
	assert.ErrorIs(t, err, report.ErrInvalidRequest)

	_, err = f.service.Export(ctx, f.admin, &dto.ExportReportRequest{Data: []*report.Record{}, Fields: []string{}})
	assert.ErrorIs(t, err, report.ErrInvalidRequest)

	_, err = f.service.Export(ctx, f.admin, &dto.ExportReportRequest{Fields: []string{"summary"}})
	assert.ErrorIs(t, err, report.ErrInvalidRequest)

	_, err = f.service.Export(ctx, f.admin, nil)
	assert.ErrorIs(t, err, report.ErrInvalidRequest)
}

func TestStats_Admin(t *testing.T) {
	f := newFixture(t)

	st, err := f.service.Stats(context.Background(), f.admin)
	require.NoError(t, err)

	assert.Equal(t, report.Overview{
		TotalSessions:       3,
		TotalAppointments:   3,
		PendingAppointments: 1,
		CompletedSessions:   1,
		FollowUpRequired:    1,
	}, st.Overview)

	assert.Equal(t, []report.CategoryStat{
		{Category: "Academic Stress", Count: 1},
		{Category: "Anxiety", Count: 1},
		{Category: "Depression", Count: 1},
	}, st.CategoryBreakdown)
}

func TestStats_CounsellorScoped(t *testing.T) {
	f := newFixture(t)

	st, err := f.service.Stats(context.Background(), f.asha)
	require.NoError(t, err)

	assert.Equal(t, report.Overview{
		TotalSessions:       2,
		TotalAppointments:   1,
		PendingAppointments: 0,
		CompletedSessions:   1,
		FollowUpRequired:    0,
	}, st.Overview)
	assert.Equal(t, []report.CategoryStat{{Category: "Anxiety", Count: 1}}, st.CategoryBreakdown)
}

func TestStats_StorageFailure(t *testing.T) {
	f := newFixture(t)
	f.store.err = errors.New("timeout")

	_, err := f.service.Stats(context.Background(), f.admin)
	assert.ErrorIs(t, err, report.ErrStorage)
}
