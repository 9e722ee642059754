// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string
type ResidenceType string
type Gender string

const (
	UserRoleClient     UserRole = "client"
	UserRoleCounsellor UserRole = "counsellor"
	UserRoleAdmin      UserRole = "admin"

	ResidenceHosteller  ResidenceType = "Hosteller"
	ResidenceDayScholar ResidenceType = "Day Scholar"

	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleClient, UserRoleCounsellor, UserRoleAdmin:
		return true
	}
	return false
}

func (r ResidenceType) IsValid() bool {
	return r == ResidenceHosteller || r == ResidenceDayScholar
}

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
	Id                uuid.UUID
	GoogleId          string
	Email             string
	Name              string
	Avatar            *string
	Role              UserRole
	IsProfileComplete bool

	// Profile
	RegistrationNumber string
	EmployeeId         string
	Gender             Gender
	MobileNumber       string
	ResidenceType      ResidenceType
	Address            string
	Department         string
	School             string
	EmergencyContact   EmergencyContact

	// Counsellor only
	Specialization []string
	AvailableSlots []AvailableSlot

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Principal is the authenticated caller a request runs on behalf of.
type Principal struct {
	Id   uuid.UUID
	Role UserRole
}

// CanReport reports whether the principal may generate, export or view report stats.
func (p Principal) CanReport() bool {
	return p.Role == UserRoleCounsellor || p.Role == UserRoleAdmin
}

func (p Principal) IsCounsellor() bool {
	return p.Role == UserRoleCounsellor
}
