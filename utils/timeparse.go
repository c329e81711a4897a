package utils

import "time"

const (
	DateFormat    = "2006-01-02"
	DisplayFormat = "2006-01-02 15:04"
)

// Layouts accepted for note schedules and event times. Browser datetime-local
// inputs produce the minute-precision variants.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a stored timestamp string. The second return value is
// false for empty or unparseable input; callers skip those items rather than
// surfacing an error.
func ParseTimestamp(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Today formats the calendar day of the given instant.
func Today(now time.Time) string {
	return now.Format(DateFormat)
}
