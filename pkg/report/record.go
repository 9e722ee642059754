package report

import "time"

// Party is the joined client or counsellor of a record.
type Party struct {
	Id                 string `json:"id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registrationNumber,omitempty"`
	Department         string `json:"department,omitempty"`
	ResidenceType      string `json:"residenceType,omitempty"`
}

// AppointmentRef is the parent appointment joined onto a session record.
type AppointmentRef struct {
	Id       string `json:"id"`
	Category string `json:"category"`
}

type AppointmentDetail struct {
	Category      string     `json:"category"`
	Description   string     `json:"description,omitempty"`
	PreferredDate *Timestamp `json:"preferredDate,omitempty"`
	PreferredTime string     `json:"preferredTime,omitempty"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority,omitempty"`
	IsAnonymous   bool       `json:"isAnonymous"`
	Notes         string     `json:"notes,omitempty"`
	ScheduledDate *Timestamp `json:"scheduledDate,omitempty"`
	ScheduledTime string     `json:"scheduledTime,omitempty"`
}

type Attachment struct {
	Filename   string    `json:"filename"`
	Path       string    `json:"path"`
	UploadDate Timestamp `json:"uploadDate"`
}

type SessionDetail struct {
	Appointment          *AppointmentRef `json:"appointment,omitempty"`
	SessionDate          *Timestamp      `json:"sessionDate,omitempty"`
	Duration             int             `json:"duration"`
	Summary              string          `json:"summary"`
	Interventions        []string        `json:"interventions,omitempty"`
	Progress             string          `json:"progress"`
	NextSessionDate      *Timestamp      `json:"nextSessionDate,omitempty"`
	Attachments          []Attachment    `json:"attachments,omitempty"`
	IsFollowUpRequired   bool            `json:"isFollowUpRequired"`
	FollowUpNotes        string          `json:"followUpNotes,omitempty"`
	ConfidentialityLevel string          `json:"confidentialityLevel,omitempty"`
}

// Record is a denormalized appointment or session. Exactly one of the embedded
// details is set; on the wire their fields are flattened into the record. Ids are
// opaque strings so records exported from elsewhere, or without an id, still decode.
type Record struct {
	Kind       Kind      `json:"kind"`
	Id         string    `json:"id"`
	Client     *Party    `json:"client"`
	Counsellor *Party    `json:"counsellor"`
	CreatedAt  Timestamp `json:"createdAt"`
	UpdatedAt  Timestamp `json:"updatedAt"`

	*AppointmentDetail
	*SessionDetail
}

// ReportDate is the field date ranges, sorting and date grouping apply to.
func (r *Record) ReportDate() time.Time {
	if r.SessionDetail != nil && r.SessionDate != nil {
		return r.SessionDate.Time
	}
	return r.CreatedAt.Time
}

// CategoryOf returns the appointment category, looking through the parent
// appointment for sessions.
func (r *Record) CategoryOf() string {
	if r.SessionDetail != nil && r.SessionDetail.Appointment != nil && r.SessionDetail.Appointment.Category != "" {
		return r.SessionDetail.Appointment.Category
	}
	if r.AppointmentDetail != nil {
		return r.AppointmentDetail.Category
	}
	return ""
}
