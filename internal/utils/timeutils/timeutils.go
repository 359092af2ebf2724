package timeutils

import (
	"time"

	"github.com/dustin/go-humanize"
)

const outputLayout = "2 January 2006 3:04 PM MST"

// FormatLocal converts a timestamp into a readable format in the local
// timezone. Zero timestamps (unset fields) are rendered as "n/a".
func FormatLocal(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.Local().Format(outputLayout)
}

// FormatRelative renders a timestamp relative to now (e.g., "3 days ago").
func FormatRelative(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return humanize.Time(t)
}

// FormatDate renders only the calendar date (UTC), which is how GitHub
// interprets milestone due dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "n/a"
	}
	return t.UTC().Format("2006-01-02")
}
