package mapper

import (
	"time"

	"counselling-portal-be/internal/entity"
	"counselling-portal-be/pkg/report"
)

// ReportMapper denormalizes appointments and sessions into report records.
type ReportMapper struct{}

func NewReportMapper() *ReportMapper {
	return &ReportMapper{}
}

func (m *ReportMapper) client(u *entity.User) *report.Party {
	if u == nil {
		return nil
	}
	return &report.Party{
		Id:                 u.Id.String(),
		Name:               u.Name,
		Email:              u.Email,
		RegistrationNumber: u.RegistrationNumber,
		Department:         u.Department,
		ResidenceType:      string(u.ResidenceType),
	}
}

func (m *ReportMapper) counsellor(u *entity.User) *report.Party {
	if u == nil {
		return nil
	}
	return &report.Party{
		Id:    u.Id.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

func (m *ReportMapper) FromAppointment(a *entity.Appointment) *report.Record {
	if a == nil {
		return nil
	}

	return &report.Record{
		Kind:       report.KindAppointments,
		Id:         a.Id.String(),
		Client:     m.client(a.Client),
		Counsellor: m.counsellor(a.Counsellor),
		CreatedAt:  report.NewTimestamp(a.CreatedAt),
		UpdatedAt:  report.NewTimestamp(a.UpdatedAt),
		AppointmentDetail: &report.AppointmentDetail{
			Category:      string(a.Category),
			Description:   a.Description,
			PreferredDate: optionalTime(a.PreferredDate),
			PreferredTime: a.PreferredTime,
			Status:        string(a.Status),
			Priority:      string(a.Priority),
			IsAnonymous:   a.IsAnonymous,
			Notes:         a.Notes,
			ScheduledDate: report.TimestampOf(a.ScheduledDate),
			ScheduledTime: a.ScheduledTime,
		},
	}
}

func (m *ReportMapper) FromSession(s *entity.Session) *report.Record {
	if s == nil {
		return nil
	}

	var parent *report.AppointmentRef
	if s.Appointment != nil {
		parent = &report.AppointmentRef{
			Id:       s.Appointment.Id.String(),
			Category: string(s.Appointment.Category),
		}
	}

	attachments := make([]report.Attachment, 0, len(s.Attachments))
	for _, a := range s.Attachments {
		attachments = append(attachments, report.Attachment{
			Filename:   a.Filename,
			Path:       a.StoragePath,
			UploadDate: report.NewTimestamp(a.UploadDate),
		})
	}

	return &report.Record{
		Kind:       report.KindSessions,
		Id:         s.Id.String(),
		Client:     m.client(s.Client),
		Counsellor: m.counsellor(s.Counsellor),
		CreatedAt:  report.NewTimestamp(s.CreatedAt),
		UpdatedAt:  report.NewTimestamp(s.UpdatedAt),
		SessionDetail: &report.SessionDetail{
			Appointment:          parent,
			SessionDate:          optionalTime(s.SessionDate),
			Duration:             s.Duration,
			Summary:              s.Summary,
			Interventions:        s.Interventions,
			Progress:             string(s.Progress),
			NextSessionDate:      report.TimestampOf(s.NextSessionDate),
			Attachments:          attachments,
			IsFollowUpRequired:   s.IsFollowUpRequired,
			FollowUpNotes:        s.FollowUpNotes,
			ConfidentialityLevel: string(s.ConfidentialityLevel),
		},
	}
}

func (m *ReportMapper) FromAppointments(appointments []*entity.Appointment) []*report.Record {
	res := make([]*report.Record, 0, len(appointments))
	for _, a := range appointments {
		res = append(res, m.FromAppointment(a))
	}
	return res
}

func (m *ReportMapper) FromSessions(sessions []*entity.Session) []*report.Record {
	res := make([]*report.Record, 0, len(sessions))
	for _, s := range sessions {
		res = append(res, m.FromSession(s))
	}
	return res
}

func optionalTime(t time.Time) *report.Timestamp {
	return report.TimestampOf(&t)
}
