package entity

import (
	"time"

	"github.com/google/uuid"
)

type Progress string
type ConfidentialityLevel string

const (
	ProgressNotStarted       Progress = "Not Started"
	ProgressOngoing          Progress = "Ongoing"
	ProgressResolved         Progress = "Resolved"
	ProgressFollowUpRequired Progress = "Follow-Up Required"

	ConfidentialityStandard ConfidentialityLevel = "standard"
	ConfidentialityHigh     ConfidentialityLevel = "high"
	ConfidentialityCritical ConfidentialityLevel = "critical"
)

const DefaultSessionDurationMin = 60

type SessionAttachment struct {
	Filename    string    `json:"filename"`
	StoragePath string    `json:"path"`
	UploadDate  time.Time `json:"uploadDate"`
}

type Session struct {
	Id            uuid.UUID
	AppointmentId uuid.UUID
	Appointment   *Appointment
	ClientId      uuid.UUID
	Client        *User
	CounsellorId  uuid.UUID
	Counsellor    *User

	SessionDate          time.Time
	Duration             int // minutes
	Summary              string
	Interventions        []string
	Progress             Progress
	NextSessionDate      *time.Time
	Attachments          []SessionAttachment
	IsFollowUpRequired   bool
	FollowUpNotes        string
	ConfidentialityLevel ConfidentialityLevel

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession records a session for an accepted appointment, applying defaults
// and completing the appointment.
func NewSession(appointment *Appointment, summary string, progress Progress, at time.Time) *Session {
	if progress == "" {
		progress = ProgressNotStarted
	}
	if at.IsZero() {
		at = time.Now()
	}

	s := &Session{
		Id:                   uuid.New(),
		AppointmentId:        appointment.Id,
		Appointment:          appointment,
		ClientId:             appointment.ClientId,
		SessionDate:          at,
		Duration:             DefaultSessionDurationMin,
		Summary:              summary,
		Progress:             progress,
		IsFollowUpRequired:   progress == ProgressFollowUpRequired,
		ConfidentialityLevel: ConfidentialityStandard,
	}
	if appointment.CounsellorId != nil {
		s.CounsellorId = *appointment.CounsellorId
	}

	appointment.Complete()
	return s
}
