package pkg

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseDate accepts ISO-8601 timestamps (with or without zone) and plain dates.
// Values without a zone are read as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "z") {
		s = strings.TrimSuffix(s, "z") + "Z"
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// StartOfDay returns midnight UTC of the day t falls on.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last millisecond of the UTC day t falls on.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}

// DateRange is an optional, inclusive [From, To] filter on record dates.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// DateRangeFromQuery reads start_date and end_date query params. A plain
// end date (no time part) covers the whole day.
func DateRangeFromQuery(query url.Values) (DateRange, error) {
	var dr DateRange
	if raw := query.Get("start_date"); raw != "" {
		from, err := ParseDate(raw)
		if err != nil {
			return DateRange{}, fmt.Errorf("start_date: %w", err)
		}
		dr.From = &from
	}
	if raw := query.Get("end_date"); raw != "" {
		to, err := ParseDate(raw)
		if err != nil {
			return DateRange{}, fmt.Errorf("end_date: %w", err)
		}
		if _, err := time.Parse(time.DateOnly, strings.TrimSpace(raw)); err == nil {
			to = EndOfDay(to)
		}
		dr.To = &to
	}
	return dr, nil
}

// WholeDays widens the range to the start of its first day and the end of its last day.
func (dr DateRange) WholeDays() DateRange {
	var wide DateRange
	if dr.From != nil {
		from := StartOfDay(*dr.From)
		wide.From = &from
	}
	if dr.To != nil {
		to := EndOfDay(*dr.To)
		wide.To = &to
	}
	return wide
}
