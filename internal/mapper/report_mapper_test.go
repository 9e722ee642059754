package mapper

import (
	"testing"
	"time"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/model"
	"counselling-portal-be/pkg/report"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSessionModelToRecord(t *testing.T) {
	at := time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC)
	clientId, counsellorId, appointmentId := uuid.New(), uuid.New(), uuid.New()

	m := &model.Session{
		Id:            uuid.New(),
		AppointmentId: appointmentId,
		ClientId:      clientId,
		CounsellorId:  counsellorId,
		SessionDate:   at,
		Duration:      45,
		Summary:       "Discussed exam anxiety",
		Interventions: datatypes.JSONSlice[string]{"CBT"},
		Progress:      string(entity.ProgressResolved),
		Attachments: datatypes.JSONSlice[model.SessionAttachment]{
			{Filename: "notes.pdf", StoragePath: "/uploads/notes.pdf", UploadDate: at},
		},
		ConfidentialityLevel: string(entity.ConfidentialityHigh),
		Appointment:          model.Appointment{Id: appointmentId, Category: string(entity.CategoryAnxiety)},
		Client: model.User{
			Id:            clientId,
			Name:          "Riya",
			Department:    "CSE",
			ResidenceType: string(entity.ResidenceHosteller),
		},
		Counsellor: model.User{Id: counsellorId, Name: "Dr. Asha", Department: "Counselling"},
	}

	record := NewReportMapper().FromSession(NewSessionMapper().ToEntity(m))
	require.NotNil(t, record)

	assert.Equal(t, report.KindSessions, record.Kind)
	assert.Equal(t, "Riya", record.Client.Name)
	assert.Equal(t, "Hosteller", record.Client.ResidenceType)
	assert.Equal(t, "Dr. Asha", record.Counsellor.Name)
	// counsellors only expose identity fields
	assert.Empty(t, record.Counsellor.Department)

	require.NotNil(t, record.SessionDetail.Appointment)
	assert.Equal(t, appointmentId.String(), record.SessionDetail.Appointment.Id)
	assert.Equal(t, "Anxiety", record.CategoryOf())
	assert.Equal(t, report.NewTimestamp(at), *record.SessionDetail.SessionDate)
	assert.Equal(t, []string{"CBT"}, record.SessionDetail.Interventions)
	assert.Equal(t, []report.Attachment{{Filename: "notes.pdf", Path: "/uploads/notes.pdf", UploadDate: report.NewTimestamp(at)}}, record.SessionDetail.Attachments)
	assert.Equal(t, "high", record.SessionDetail.ConfidentialityLevel)
}

func TestSessionModelToRecord_WithoutRelations(t *testing.T) {
	m := &model.Session{Id: uuid.New(), Summary: "orphan"}

	record := NewReportMapper().FromSession(NewSessionMapper().ToEntity(m))

	assert.Nil(t, record.Client)
	assert.Nil(t, record.Counsellor)
	assert.Nil(t, record.SessionDetail.Appointment)
	assert.Nil(t, record.SessionDetail.SessionDate)
	assert.Equal(t, "", record.CategoryOf())
}

func TestAppointmentModelToRecord(t *testing.T) {
	clientId := uuid.New()
	m := &model.Appointment{
		Id:            uuid.New(),
		ClientId:      clientId,
		Category:      string(entity.CategoryAcademicStress),
		Status:        string(entity.AppointmentPending),
		Priority:      string(entity.PriorityHigh),
		PreferredDate: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		Client:        model.User{Id: clientId, Name: "Arjun", Department: "ECE"},
	}

	record := NewReportMapper().FromAppointment(NewAppointmentMapper().ToEntity(m))

	assert.Equal(t, report.KindAppointments, record.Kind)
	assert.Equal(t, "Arjun", record.Client.Name)
	assert.Nil(t, record.Counsellor)
	assert.Equal(t, "Academic Stress", record.CategoryOf())
	assert.Equal(t, "pending", record.AppointmentDetail.Status)
	assert.Equal(t, "high", record.AppointmentDetail.Priority)
	assert.Nil(t, record.SessionDetail)
}

func TestFromAppointments_Empty(t *testing.T) {
	records := NewReportMapper().FromAppointments(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
