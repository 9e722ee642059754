package mapper

import (
	"counselling-portal-be/internal/entity"
	"counselling-portal-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SessionMapper struct {
	users        *UserMapper
	appointments *AppointmentMapper
}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{
		users:        NewUserMapper(),
		appointments: NewAppointmentMapper(),
	}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}

	attachments := make([]entity.SessionAttachment, 0, len(s.Attachments))
	for _, a := range s.Attachments {
		attachments = append(attachments, entity.SessionAttachment{
			Filename:    a.Filename,
			StoragePath: a.StoragePath,
			UploadDate:  a.UploadDate,
		})
	}

	e := &entity.Session{
		Id:                   s.Id,
		AppointmentId:        s.AppointmentId,
		ClientId:             s.ClientId,
		CounsellorId:         s.CounsellorId,
		SessionDate:          s.SessionDate,
		Duration:             s.Duration,
		Summary:              s.Summary,
		Interventions:        []string(s.Interventions),
		Progress:             entity.Progress(s.Progress),
		NextSessionDate:      s.NextSessionDate,
		Attachments:          attachments,
		IsFollowUpRequired:   s.IsFollowUpRequired,
		FollowUpNotes:        s.FollowUpNotes,
		ConfidentialityLevel: entity.ConfidentialityLevel(s.ConfidentialityLevel),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	// Relations are only present when preloaded
	if s.Appointment.Id != uuid.Nil {
		e.Appointment = m.appointments.ToEntity(&s.Appointment)
	}
	if s.Client.Id != uuid.Nil {
		e.Client = m.users.ToEntity(&s.Client)
	}
	if s.Counsellor.Id != uuid.Nil {
		e.Counsellor = m.users.ToEntity(&s.Counsellor)
	}
	return e
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}

	attachments := make([]model.SessionAttachment, 0, len(s.Attachments))
	for _, a := range s.Attachments {
		attachments = append(attachments, model.SessionAttachment{
			Filename:    a.Filename,
			StoragePath: a.StoragePath,
			UploadDate:  a.UploadDate,
		})
	}

	return &model.Session{
		Id:                   s.Id,
		AppointmentId:        s.AppointmentId,
		ClientId:             s.ClientId,
		CounsellorId:         s.CounsellorId,
		SessionDate:          s.SessionDate,
		Duration:             s.Duration,
		Summary:              s.Summary,
		Interventions:        datatypes.JSONSlice[string](s.Interventions),
		Progress:             string(s.Progress),
		NextSessionDate:      s.NextSessionDate,
		Attachments:          datatypes.JSONSlice[model.SessionAttachment](attachments),
		IsFollowUpRequired:   s.IsFollowUpRequired,
		FollowUpNotes:        s.FollowUpNotes,
		ConfidentialityLevel: string(s.ConfidentialityLevel),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *SessionMapper) ToEntities(sessions []*model.Session) []*entity.Session {
	res := make([]*entity.Session, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, m.ToEntity(s))
	}
	return res
}
