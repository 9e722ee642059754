package report

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	expected := map[string]string{
		"client.name":               "Client Name",
		"client.registrationNumber": "Registration Number",
		"client.department":         "Department",
		"client.residenceType":      "Residence Type",
		"counsellor.name":           "Counsellor",
		"category":                  "Category",
		"status":                    "Status",
		"sessionDate":               "Session Date",
		"summary":                   "Summary",
		"progress":                  "Progress",
		"createdAt":                 "Created Date",
	}
	for path, header := range expected {
		assert.Equal(t, header, Header(path), path)
	}

	assert.Equal(t, "client.email", Header("client.email"))
	assert.Equal(t, "duration", Header("duration"))
	assert.Len(t, Headers(), len(expected))
}

func TestLookup(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	parent := uuid.NewString()
	session := &Record{
		Kind:       KindSessions,
		Id:         uuid.NewString(),
		Client:     &Party{Name: "Riya", Department: "CSE"},
		Counsellor: nil,
		CreatedAt:  NewTimestamp(at),
		SessionDetail: &SessionDetail{
			Appointment:   &AppointmentRef{Id: parent, Category: "Anxiety"},
			SessionDate:   TimestampOf(&at),
			Duration:      45,
			Interventions: []string{"CBT", "Journaling"},
		},
	}

	assert.Equal(t, "Riya", Lookup(session, "client.name"))
	assert.Equal(t, "CSE", Lookup(session, "client.department"))
	assert.Equal(t, NewTimestamp(at), Lookup(session, "sessionDate"))
	assert.Equal(t, 45, Lookup(session, "duration"))
	assert.Equal(t, []string{"CBT", "Journaling"}, Lookup(session, "interventions"))
	assert.Equal(t, "Anxiety", Lookup(session, "appointment.category"))
	assert.Equal(t, parent, Lookup(session, "appointment.id"))

	// absent relation, absent detail, unknown paths
	assert.Nil(t, Lookup(session, "counsellor.name"))
	assert.Nil(t, Lookup(session, "status"))
	assert.Nil(t, Lookup(session, "nextSessionDate"))
	assert.Nil(t, Lookup(session, "client.shoeSize"))
	assert.Nil(t, Lookup(session, "pet.name"))
	assert.Nil(t, Lookup(session, "nope"))
	assert.Nil(t, Lookup(nil, "summary"))
}

func TestLookup_SplitsOnFirstDotOnly(t *testing.T) {
	r := &Record{Client: &Party{Name: "Riya"}}
	assert.Nil(t, Lookup(r, "client.name.first"))
}
