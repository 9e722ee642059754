package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionAttachment struct {
	Filename    string    `json:"filename"`
	StoragePath string    `json:"path"`
	UploadDate  time.Time `json:"uploadDate"`
}

type Session struct {
	Id                   uuid.UUID                              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AppointmentId        uuid.UUID                              `gorm:"type:uuid;not null;index"`
	ClientId             uuid.UUID                              `gorm:"type:uuid;not null;index"`
	CounsellorId         uuid.UUID                              `gorm:"type:uuid;not null;index"`
	SessionDate          time.Time                              `gorm:"not null;index"`
	Duration             int                                    `gorm:"not null;default:60"`
	Summary              string                                 `gorm:"type:text;not null"`
	Interventions        datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	Progress             string                                 `gorm:"type:varchar(30);not null;default:'Not Started';index"`
	NextSessionDate      *time.Time
	Attachments          datatypes.JSONSlice[SessionAttachment] `gorm:"type:jsonb"`
	IsFollowUpRequired   bool                                   `gorm:"default:false;index"`
	FollowUpNotes        string                                 `gorm:"type:text"`
	ConfidentialityLevel string                                 `gorm:"type:varchar(20);not null;default:'standard'"`
	CreatedAt            time.Time                              `gorm:"autoCreateTime"`
	UpdatedAt            time.Time                              `gorm:"autoUpdateTime"`

	Appointment Appointment `gorm:"foreignKey:AppointmentId"`
	Client      User        `gorm:"foreignKey:ClientId"`
	Counsellor  User        `gorm:"foreignKey:CounsellorId"`
}

func (Session) TableName() string {
	return "sessions"
}
