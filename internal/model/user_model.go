package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}

type AvailableSlot struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type User struct {
	Id                 uuid.UUID                              `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	GoogleId           string                                 `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email              string                                 `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string                                 `gorm:"type:varchar(255);not null"`
	Avatar             *string                                `gorm:"type:text"`
	Role               string                                 `gorm:"type:varchar(20);not null;default:'client';index"`
	IsProfileComplete  bool                                   `gorm:"default:false"`
	RegistrationNumber string                                 `gorm:"type:varchar(100)"`
	EmployeeId         string                                 `gorm:"type:varchar(100)"`
	Gender             string                                 `gorm:"type:varchar(20)"`
	MobileNumber       string                                 `gorm:"type:varchar(30)"`
	ResidenceType      string                                 `gorm:"type:varchar(20)"`
	Address            string                                 `gorm:"type:text"`
	Department         string                                 `gorm:"type:varchar(255);index"`
	School             string                                 `gorm:"type:varchar(255)"`
	EmergencyContact   datatypes.JSONType[EmergencyContact]   `gorm:"type:jsonb"`
	Specialization     datatypes.JSONSlice[string]            `gorm:"type:jsonb"`
	AvailableSlots     datatypes.JSONSlice[AvailableSlot]     `gorm:"type:jsonb"`
	IsActive           bool                                   `gorm:"default:true"`
	CreatedAt          time.Time                              `gorm:"autoCreateTime"`
	UpdatedAt          time.Time                              `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt                         `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
