package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	UnassignedKey = "Unassigned"
	UnknownKey    = "Unknown"
)

type Filters struct {
	Category      string     `json:"category,omitempty"`
	Status        string     `json:"status,omitempty"`
	ResidenceType string     `json:"residenceType,omitempty"`
	Department    string     `json:"department,omitempty"`
	CounsellorId  *uuid.UUID `json:"counsellorId,omitempty"`
}

type Summary struct {
	Total      int     `json:"total"`
	ReportType Kind    `json:"reportType"`
	GroupBy    GroupBy `json:"groupBy,omitempty"`
	DateRange  Bounds  `json:"dateRange"`
	Filters    Filters `json:"filters"`
}

// Result holds either Records or, when grouping was requested, Groups.
type Result struct {
	Records []*Record
	Groups  map[string][]*Record
	Summary Summary
}

func (r *Result) Grouped() bool {
	return r.Groups != nil
}

// FilterByClient drops records whose joined client does not match the
// residence type or department criteria. Empty criteria match everything.
func FilterByClient(records []*Record, c Criteria) []*Record {
	if c.ResidenceType == "" && c.Department == "" {
		return records
	}
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if r.Client == nil {
			continue
		}
		if c.ResidenceType != "" && r.Client.ResidenceType != c.ResidenceType {
			continue
		}
		if c.Department != "" && r.Client.Department != c.Department {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortByDate orders records most recent first by their report date. Ties keep
// a stable order by id.
func SortByDate(records []*Record) {
	sort.SliceStable(records, func(i, j int) bool {
		di, dj := records[i].ReportDate(), records[j].ReportDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return records[i].Id < records[j].Id
	})
}

// GroupKey derives the bucket a record falls into.
func GroupKey(r *Record, by GroupBy, loc *time.Location) string {
	switch by {
	case GroupCounsellor:
		if r.Counsellor == nil || r.Counsellor.Name == "" {
			return UnassignedKey
		}
		return r.Counsellor.Name
	case GroupCategory:
		if c := r.CategoryOf(); c != "" {
			return c
		}
		return UnknownKey
	case GroupDate:
		return r.ReportDate().In(loc).Format(dayLayout)
	case GroupDepartment:
		if r.Client == nil || r.Client.Department == "" {
			return UnknownKey
		}
		return r.Client.Department
	}
	return ""
}

// Group buckets records by key, preserving their order within each bucket.
func Group(records []*Record, by GroupBy, loc *time.Location) map[string][]*Record {
	groups := make(map[string][]*Record)
	for _, r := range records {
		key := GroupKey(r, by, loc)
		groups[key] = append(groups[key], r)
	}
	return groups
}

// Assemble post-filters, sorts and optionally groups fetched records into a Result.
func Assemble(q Query, bounds Bounds, applied Filters, records []*Record, loc *time.Location) *Result {
	c := q.Base()

	records = FilterByClient(records, *c)
	SortByDate(records)

	res := &Result{
		Summary: Summary{
			Total:      len(records),
			ReportType: q.Kind(),
			GroupBy:    c.GroupBy,
			DateRange:  bounds,
			Filters:    applied,
		},
	}

	if c.GroupBy != GroupNone {
		res.Groups = Group(records, c.GroupBy, loc)
		return res
	}
	res.Records = records
	return res
}

// Flatten turns grouped output back into a single list ordered by date.
func Flatten(groups map[string][]*Record) []*Record {
	var out []*Record
	for _, rs := range groups {
		out = append(out, rs...)
	}
	SortByDate(out)
	return out
}
