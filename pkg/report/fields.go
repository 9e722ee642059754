package report

import (
	"sort"
	"strings"
)

var headers = map[string]string{
	"client.name":               "Client Name",
	"client.registrationNumber": "Registration Number",
	"client.department":         "Department",
	"client.residenceType":      "Residence Type",
	"counsellor.name":           "Counsellor",
	"category":                  "Category",
	"status":                    "Status",
	"sessionDate":               "Session Date",
	"summary":                   "Summary",
	"progress":                  "Progress",
	"createdAt":                 "Created Date",
}

// Header returns the column title for a field path, or the path itself when unmapped.
func Header(path string) string {
	if h, ok := headers[path]; ok {
		return h
	}
	return path
}

type FieldHeader struct {
	Field  string `json:"field"`
	Header string `json:"header"`
}

// Headers lists the mapped field paths in a stable order.
func Headers() []FieldHeader {
	out := make([]FieldHeader, 0, len(headers))
	for f, h := range headers {
		out = append(out, FieldHeader{Field: f, Header: h})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// getter returns nil when the value is absent.
type getter func(r *Record) any

func appointmentField(get func(d *AppointmentDetail) any) getter {
	return func(r *Record) any {
		if r.AppointmentDetail == nil {
			return nil
		}
		return get(r.AppointmentDetail)
	}
}

func sessionField(get func(d *SessionDetail) any) getter {
	return func(r *Record) any {
		if r.SessionDetail == nil {
			return nil
		}
		return get(r.SessionDetail)
	}
}

func timeValue(t *Timestamp) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return *t
}

var scalarFields = map[string]getter{
	"id":        func(r *Record) any { return r.Id },
	"kind":      func(r *Record) any { return string(r.Kind) },
	"createdAt": func(r *Record) any { return timeValue(&r.CreatedAt) },
	"updatedAt": func(r *Record) any { return timeValue(&r.UpdatedAt) },

	"category":      appointmentField(func(d *AppointmentDetail) any { return d.Category }),
	"description":   appointmentField(func(d *AppointmentDetail) any { return d.Description }),
	"preferredDate": appointmentField(func(d *AppointmentDetail) any { return timeValue(d.PreferredDate) }),
	"preferredTime": appointmentField(func(d *AppointmentDetail) any { return d.PreferredTime }),
	"status":        appointmentField(func(d *AppointmentDetail) any { return d.Status }),
	"priority":      appointmentField(func(d *AppointmentDetail) any { return d.Priority }),
	"isAnonymous":   appointmentField(func(d *AppointmentDetail) any { return d.IsAnonymous }),
	"notes":         appointmentField(func(d *AppointmentDetail) any { return d.Notes }),
	"scheduledDate": appointmentField(func(d *AppointmentDetail) any { return timeValue(d.ScheduledDate) }),
	"scheduledTime": appointmentField(func(d *AppointmentDetail) any { return d.ScheduledTime }),

	"sessionDate":          sessionField(func(d *SessionDetail) any { return timeValue(d.SessionDate) }),
	"duration":             sessionField(func(d *SessionDetail) any { return d.Duration }),
	"summary":              sessionField(func(d *SessionDetail) any { return d.Summary }),
	"interventions":        sessionField(func(d *SessionDetail) any { return d.Interventions }),
	"progress":             sessionField(func(d *SessionDetail) any { return d.Progress }),
	"nextSessionDate":      sessionField(func(d *SessionDetail) any { return timeValue(d.NextSessionDate) }),
	"isFollowUpRequired":   sessionField(func(d *SessionDetail) any { return d.IsFollowUpRequired }),
	"followUpNotes":        sessionField(func(d *SessionDetail) any { return d.FollowUpNotes }),
	"confidentialityLevel": sessionField(func(d *SessionDetail) any { return d.ConfidentialityLevel }),
}

func partyFields(of func(r *Record) *Party) map[string]getter {
	field := func(get func(p *Party) any) getter {
		return func(r *Record) any {
			p := of(r)
			if p == nil {
				return nil
			}
			return get(p)
		}
	}
	return map[string]getter{
		"id":                 field(func(p *Party) any { return p.Id }),
		"name":               field(func(p *Party) any { return p.Name }),
		"email":              field(func(p *Party) any { return p.Email }),
		"registrationNumber": field(func(p *Party) any { return p.RegistrationNumber }),
		"department":         field(func(p *Party) any { return p.Department }),
		"residenceType":      field(func(p *Party) any { return p.ResidenceType }),
	}
}

var relationFields = map[string]map[string]getter{
	"client":     partyFields(func(r *Record) *Party { return r.Client }),
	"counsellor": partyFields(func(r *Record) *Party { return r.Counsellor }),
	"appointment": {
		"id": sessionField(func(d *SessionDetail) any {
			if d.Appointment == nil {
				return nil
			}
			return d.Appointment.Id
		}),
		"category": sessionField(func(d *SessionDetail) any {
			if d.Appointment == nil {
				return nil
			}
			return d.Appointment.Category
		}),
	},
}

// Lookup resolves a field path against a record. Dotted paths are split once on
// the first "." into a relation and one of its fields. Unknown paths and absent
// values yield nil.
func Lookup(r *Record, path string) any {
	if r == nil {
		return nil
	}
	if parent, child, dotted := strings.Cut(path, "."); dotted {
		fields, ok := relationFields[parent]
		if !ok {
			return nil
		}
		get, ok := fields[child]
		if !ok {
			return nil
		}
		return get(r)
	}
	get, ok := scalarFields[path]
	if !ok {
		return nil
	}
	return get(r)
}
