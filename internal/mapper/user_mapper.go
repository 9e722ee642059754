package mapper

import (
	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/model"

	"gorm.io/datatypes"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	contact := u.EmergencyContact.Data()
	slots := make([]entity.AvailableSlot, 0, len(u.AvailableSlots))
	for _, s := range u.AvailableSlots {
		slots = append(slots, entity.AvailableSlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}

	return &entity.User{
		Id:                 u.Id,
		GoogleId:           u.GoogleId,
		Email:              u.Email,
		Name:               u.Name,
		Avatar:             u.Avatar,
		Role:               entity.UserRole(u.Role),
		IsProfileComplete:  u.IsProfileComplete,
		RegistrationNumber: u.RegistrationNumber,
		EmployeeId:         u.EmployeeId,
		Gender:             entity.Gender(u.Gender),
		MobileNumber:       u.MobileNumber,
		ResidenceType:      entity.ResidenceType(u.ResidenceType),
		Address:            u.Address,
		Department:         u.Department,
		School:             u.School,
		EmergencyContact: entity.EmergencyContact{
			Name:         contact.Name,
			Relationship: contact.Relationship,
			Phone:        contact.Phone,
		},
		Specialization: []string(u.Specialization),
		AvailableSlots: slots,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	slots := make([]model.AvailableSlot, 0, len(u.AvailableSlots))
	for _, s := range u.AvailableSlots {
		slots = append(slots, model.AvailableSlot{Day: s.Day, StartTime: s.StartTime, EndTime: s.EndTime})
	}

	return &model.User{
		Id:                 u.Id,
		GoogleId:           u.GoogleId,
		Email:              u.Email,
		Name:               u.Name,
		Avatar:             u.Avatar,
		Role:               string(u.Role),
		IsProfileComplete:  u.IsProfileComplete,
		RegistrationNumber: u.RegistrationNumber,
		EmployeeId:         u.EmployeeId,
		Gender:             string(u.Gender),
		MobileNumber:       u.MobileNumber,
		ResidenceType:      string(u.ResidenceType),
		Address:            u.Address,
		Department:         u.Department,
		School:             u.School,
		EmergencyContact: datatypes.NewJSONType(model.EmergencyContact{
			Name:         u.EmergencyContact.Name,
			Relationship: u.EmergencyContact.Relationship,
			Phone:        u.EmergencyContact.Phone,
		}),
		Specialization: datatypes.JSONSlice[string](u.Specialization),
		AvailableSlots: datatypes.JSONSlice[model.AvailableSlot](slots),
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
