package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// zone-less layouts accepted from exported records; tried after RFC 3339
var wallClockLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Timestamp is a record date. Besides RFC 3339 it decodes the zone-less forms
// in wallClockLayouts; those keep their wall clock and take on the location
// they are rendered in.
type Timestamp struct {
	time.Time
	wallClock bool
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// TimestampOf returns nil for a nil or zero time.
func TimestampOf(t *time.Time) *Timestamp {
	if t == nil || t.IsZero() {
		return nil
	}
	ts := NewTimestamp(*t)
	return &ts
}

// In converts an instant to loc. Zone-less values are read as wall clock in loc.
func (t Timestamp) In(loc *time.Location) time.Time {
	if !t.wallClock {
		return t.Time.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.wallClock {
		return json.Marshal(t.Time.Format(wallClockLayouts[0]))
	}
	return t.Time.MarshalJSON()
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = Timestamp{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = Timestamp{}
		return nil
	}
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		*t = Timestamp{Time: parsed}
		return nil
	}
	for _, layout := range wallClockLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			*t = Timestamp{Time: parsed, wallClock: true}
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", raw)
}
