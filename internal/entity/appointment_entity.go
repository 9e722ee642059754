package entity

import (
	"time"

	"github.com/google/uuid"
)

type Category string
type AppointmentStatus string
type Priority string

const (
	CategoryAcademicStress      Category = "Academic Stress"
	CategoryFamilyIssues        Category = "Family Issues"
	CategoryAnxiety             Category = "Anxiety"
	CategoryDepression          Category = "Depression"
	CategoryPeerConflict        Category = "Peer Conflict"
	CategoryRelationshipIssues  Category = "Relationship Issues"
	CategoryCareerGuidance      Category = "Career Guidance"
	CategoryPersonalDevelopment Category = "Personal Development"
	CategoryOther               Category = "Other"

	AppointmentPending   AppointmentStatus = "pending"
	AppointmentAccepted  AppointmentStatus = "accepted"
	AppointmentRejected  AppointmentStatus = "rejected"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"

	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Categories = []Category{
	CategoryAcademicStress,
	CategoryFamilyIssues,
	CategoryAnxiety,
	CategoryDepression,
	CategoryPeerConflict,
	CategoryRelationshipIssues,
	CategoryCareerGuidance,
	CategoryPersonalDevelopment,
	CategoryOther,
}

func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentPending, AppointmentAccepted, AppointmentRejected, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type Appointment struct {
	Id           uuid.UUID
	ClientId     uuid.UUID
	Client       *User
	CounsellorId *uuid.UUID // unset while pending
	Counsellor   *User

	Category      Category
	Description   string
	PreferredDate time.Time
	PreferredTime string
	Status        AppointmentStatus
	Priority      Priority
	IsAnonymous   bool
	Notes         string
	ScheduledDate *time.Time
	ScheduledTime string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Accept assigns the counsellor and schedules the appointment.
func (a *Appointment) Accept(counsellorId uuid.UUID, date time.Time, slot string) {
	a.CounsellorId = &counsellorId
	a.Status = AppointmentAccepted
	a.ScheduledDate = &date
	a.ScheduledTime = slot
}

// Complete marks the appointment done; recording a session does this.
func (a *Appointment) Complete() {
	a.Status = AppointmentCompleted
}

type CategoryCount struct {
	Category Category
	Count    int64
}
