package model

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	Id            uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClientId      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CounsellorId  *uuid.UUID `gorm:"type:uuid;index"`
	Category      string     `gorm:"type:varchar(50);not null;index"`
	Description   string     `gorm:"type:text;not null"`
	PreferredDate time.Time  `gorm:"not null"`
	PreferredTime string     `gorm:"type:varchar(20);not null"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	Priority      string     `gorm:"type:varchar(20);not null;default:'medium'"`
	IsAnonymous   bool       `gorm:"default:false"`
	Notes         string     `gorm:"type:text"`
	ScheduledDate *time.Time
	ScheduledTime string    `gorm:"type:varchar(20)"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`

	Client     User  `gorm:"foreignKey:ClientId"`
	Counsellor *User `gorm:"foreignKey:CounsellorId"`
}

func (Appointment) TableName() string {
	return "appointments"
}
