package ticketing

import (
	"fmt"
	"time"
)

// EventDateLayout is the wire format for event dates on the create endpoint.
const EventDateLayout = "02/01/2006"

// StorageDateLayout is the normalized form events are stored and queried by.
const StorageDateLayout = "2006-01-02"

// ParseEventDate parses a DD/MM/YYYY string into a UTC date at midnight.
// Parsing is strict: the input must round-trip back to the same string, so
// single-digit days, alternative separators and trailing garbage are all
// rejected.
func ParseEventDate(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(EventDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event date %q: %w", value, err)
	}
	if parsed.Format(EventDateLayout) != value {
		return time.Time{}, fmt.Errorf("event date %q does not match %s", value, EventDateLayout)
	}
	return parsed, nil
}

// FormatEventDate renders a date in the normalized storage form.
func FormatEventDate(t time.Time) string {
	return t.Format(StorageDateLayout)
}

// MonthWindow returns the inclusive bounds of the trailing-twelve-month
// reporting range: the first instant of the month 11 months before now
// through the last instant of the current month.
func MonthWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month()-11, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year(), now.Month()+1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond)
	return start, end
}
