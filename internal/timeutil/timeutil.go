package timeutil

import (
	"strings"
	"time"
)

// ParseClock converts a 24-hour wall-clock string into minutes from
// midnight. It accepts H:MM, HH:MM and HH:MM:SS; anything else (12-hour
// suffixes, decimals, free text) reports ok=false rather than an error so
// callers can treat the cell as "no punch".
func ParseClock(value string) (int, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, false
	}

	layouts := []string{"15:04", "15:04:05"}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, trimmed)
		if err == nil {
			return parsed.Hour()*60 + parsed.Minute(), true
		}
	}
	return 0, false
}

func FormatClock(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	clock := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local).Add(time.Duration(minutes) * time.Minute)
	return clock.Format("15:04")
}

// ParseDate normalizes a date cell into the ISO form used throughout the
// store. Day-first layouts cover the scanner exports seen in the field.
func ParseDate(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}

	layouts := []string{"2006-01-02", "02/01/2006", "02-01-2006", "2/1/2006"}
	for _, layout := range layouts {
		parsed, err := time.ParseInLocation(layout, trimmed, time.Local)
		if err == nil {
			return parsed.Format("2006-01-02"), true
		}
	}
	return "", false
}

func Today() string {
	return time.Now().Format("2006-01-02")
}
