package timeutil

import (
	"regexp"
	"strings"
	"time"
)

// NotAvailable is the placeholder rendered for empty timestamps/durations.
const NotAvailable = "N/A"

// isoDurationHours and isoDurationMinutes pick the hour/minute components
// out of an ISO 8601 duration string like "PT2H30M".
var (
	isoDurationHours   = regexp.MustCompile(`(\d+)H`)
	isoDurationMinutes = regexp.MustCompile(`(\d+)M`)
)

// FormatClockTime renders an ISO 8601 timestamp as a short clock time like
// "3:04 PM". Empty input renders as "N/A"; unparseable input is returned
// unchanged so the raw value still reaches the user.
func FormatClockTime(timestamp string) string {
	if timestamp == "" {
		return NotAvailable
	}

	normalized := strings.Replace(timestamp, "Z", "+00:00", 1)
	for _, layout := range []string{"2006-01-02T15:04:05-07:00", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t.Format("3:04 PM")
		}
	}
	return timestamp
}

// FormatISODuration renders an ISO 8601 duration like "PT2H30M" as a short
// human-readable form like "2h 30m". Empty input renders as "N/A";
// unrecognized input is returned unchanged. A zero-minute component is
// omitted ("PT2H" renders as "2h").
func FormatISODuration(duration string) string {
	if duration == "" {
		return NotAvailable
	}

	hoursMatch := isoDurationHours.FindStringSubmatch(duration)
	minsMatch := isoDurationMinutes.FindStringSubmatch(duration)
	if hoursMatch == nil && minsMatch == nil {
		return duration
	}

	hours := "0"
	if hoursMatch != nil {
		hours = hoursMatch[1]
	}
	mins := "0"
	if minsMatch != nil {
		mins = minsMatch[1]
	}

	if mins == "0" {
		return hours + "h"
	}
	return hours + "h " + mins + "m"
}
