package specification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Qualified columns used by report queries. Session queries may join
// appointments, so bare column names would be ambiguous.
const (
	AppointmentCreatedAt  = "appointments.created_at"
	AppointmentStatus     = "appointments.status"
	AppointmentCategory   = "appointments.category"
	AppointmentCounsellor = "appointments.counsellor_id"

	SessionDate        = "sessions.session_date"
	SessionCounsellor  = "sessions.counsellor_id"
	SessionProgress    = "sessions.progress"
	SessionFollowUp    = "sessions.is_follow_up_required"
	SessionAppointment = "sessions.appointment_id"
)

// DateBetween keeps rows whose column falls inside [From, To]. A nil side is open.
type DateBetween struct {
	Column string
	From   *time.Time
	To     *time.Time
}

func (s DateBetween) Apply(db *gorm.DB) *gorm.DB {
	if s.From != nil {
		db = db.Where(fmt.Sprintf("%s >= ?", s.Column), *s.From)
	}
	if s.To != nil {
		db = db.Where(fmt.Sprintf("%s <= ?", s.Column), *s.To)
	}
	return db
}

// ByCounsellor scopes rows to a single counsellor.
type ByCounsellor struct {
	Column       string
	CounsellorID uuid.UUID
}

func (s ByCounsellor) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(fmt.Sprintf("%s = ?", s.Column), s.CounsellorID)
}

// SessionAppointmentCategory filters sessions by the category of their parent appointment.
// Sessions store no category, so a plain column filter would match no session at all.
type SessionAppointmentCategory struct {
	Category string
}

func (s SessionAppointmentCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins(fmt.Sprintf("JOIN appointments ON appointments.id = %s", SessionAppointment)).
		Where(fmt.Sprintf("%s = ?", AppointmentCategory), s.Category)
}
