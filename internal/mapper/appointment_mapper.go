package mapper

import (
	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/model"

	"github.com/google/uuid"
)

type AppointmentMapper struct {
	users *UserMapper
}

func NewAppointmentMapper() *AppointmentMapper {
	return &AppointmentMapper{users: NewUserMapper()}
}

func (m *AppointmentMapper) ToEntity(a *model.Appointment) *entity.Appointment {
	if a == nil {
		return nil
	}

	e := &entity.Appointment{
		Id:            a.Id,
		ClientId:      a.ClientId,
		CounsellorId:  a.CounsellorId,
		Category:      entity.Category(a.Category),
		Description:   a.Description,
		PreferredDate: a.PreferredDate,
		PreferredTime: a.PreferredTime,
		Status:        entity.AppointmentStatus(a.Status),
		Priority:      entity.Priority(a.Priority),
		IsAnonymous:   a.IsAnonymous,
		Notes:         a.Notes,
		ScheduledDate: a.ScheduledDate,
		ScheduledTime: a.ScheduledTime,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}

	// Relations are only present when preloaded
	if a.Client.Id != uuid.Nil {
		e.Client = m.users.ToEntity(&a.Client)
	}
	if a.Counsellor != nil {
		e.Counsellor = m.users.ToEntity(a.Counsellor)
	}
	return e
}

func (m *AppointmentMapper) ToModel(a *entity.Appointment) *model.Appointment {
	if a == nil {
		return nil
	}
	return &model.Appointment{
		Id:            a.Id,
		ClientId:      a.ClientId,
		CounsellorId:  a.CounsellorId,
		Category:      string(a.Category),
		Description:   a.Description,
		PreferredDate: a.PreferredDate,
		PreferredTime: a.PreferredTime,
		Status:        string(a.Status),
		Priority:      string(a.Priority),
		IsAnonymous:   a.IsAnonymous,
		Notes:         a.Notes,
		ScheduledDate: a.ScheduledDate,
		ScheduledTime: a.ScheduledTime,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func (m *AppointmentMapper) ToEntities(appointments []*model.Appointment) []*entity.Appointment {
	res := make([]*entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		res = append(res, m.ToEntity(a))
	}
	return res
}
