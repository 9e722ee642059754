package report

import (
	"time"
)

const dayLayout = "2006-01-02"

// Bounds is an inclusive time window. A nil side is unbounded.
type Bounds struct {
	Start *time.Time `json:"startDate"`
	End   *time.Time `json:"endDate"`
}

func (b Bounds) IsZero() bool {
	return b.Start == nil && b.End == nil
}

func (b Bounds) Contains(t time.Time) bool {
	if b.Start != nil && t.Before(*b.Start) {
		return false
	}
	if b.End != nil && t.After(*b.End) {
		return false
	}
	return true
}

// ResolveDateRange turns the request's date range into concrete bounds using the
// clock's current time and location. Weeks start on Sunday.
func ResolveDateRange(c Criteria, clock Clock) (Bounds, error) {
	now := clock.Now().In(clock.Location())

	switch c.DateRange {
	case RangeAll:
		return Bounds{}, nil
	case RangeToday:
		start := startOfDay(now)
		return span(start, start.AddDate(0, 0, 1)), nil
	case RangeWeek:
		start := startOfDay(now).AddDate(0, 0, -int(now.Weekday()))
		return span(start, start.AddDate(0, 0, 7)), nil
	case RangeMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return span(start, start.AddDate(0, 1, 0)), nil
	case RangeCustom:
		return customBounds(c, clock.Location())
	default:
		return Bounds{}, InvalidField("dateRange", "must be one of today, week, month, custom")
	}
}

func customBounds(c Criteria, loc *time.Location) (Bounds, error) {
	fields := map[string]string{}

	start, _, err := parseBound(c.StartDate, loc)
	if c.StartDate == "" {
		fields["startDate"] = "required when dateRange is custom"
	} else if err != nil {
		fields["startDate"] = "must be YYYY-MM-DD or an RFC3339 timestamp"
	}

	end, endIsDay, err := parseBound(c.EndDate, loc)
	if c.EndDate == "" {
		fields["endDate"] = "required when dateRange is custom"
	} else if err != nil {
		fields["endDate"] = "must be YYYY-MM-DD or an RFC3339 timestamp"
	}

	if len(fields) > 0 {
		return Bounds{}, InvalidRequest("malformed custom date range", fields)
	}

	// a bare day as the upper bound covers that whole day
	if endIsDay {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.Before(start) {
		return Bounds{}, InvalidField("endDate", "must not be before startDate")
	}
	return Bounds{Start: &start, End: &end}, nil
}

func parseBound(value string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dayLayout, value, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.In(loc), false, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// span returns [start, next) as inclusive bounds ending one nanosecond before next.
func span(start, next time.Time) Bounds {
	end := next.Add(-time.Nanosecond)
	return Bounds{Start: &start, End: &end}
}
