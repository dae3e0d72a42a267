// ABOUTME: Time parsing utilities for flexible date/time parsing
// ABOUTME: Handles the timestamp formats found across catalog schema generations

package time

import (
	"fmt"
	"strings"
	"time"
)

// Common time formats found in catalog records
var timeFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"Mon, 2 Jan 2006 15:04:05 -0700",
}

// epochMillisThreshold separates epoch seconds from epoch milliseconds
const epochMillisThreshold = 1e11

// ParseFlexibleTime attempts to parse a time string using various formats
func ParseFlexibleTime(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}

	timeStr = strings.TrimSpace(timeStr)

	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t
		}
	}

	return time.Time{}
}

// ParseValue parses a decoded JSON value: strings via ParseFlexibleTime,
// numbers as Unix epoch seconds or milliseconds.
func ParseValue(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		return ParseFlexibleTime(t)
	case float64:
		return fromEpoch(t)
	case int64:
		return fromEpoch(float64(t))
	case int:
		return fromEpoch(float64(t))
	case time.Time:
		return t
	default:
		return time.Time{}
	}
}

func fromEpoch(n float64) time.Time {
	if n <= 0 {
		return time.Time{}
	}
	if n >= epochMillisThreshold {
		return time.UnixMilli(int64(n)).UTC()
	}
	return time.Unix(int64(n), 0).UTC()
}

// ParseWithDefault attempts to parse a time string, returning a default if parsing fails
func ParseWithDefault(timeStr string, defaultTime time.Time) time.Time {
	if parsed := ParseFlexibleTime(timeStr); !parsed.IsZero() {
		return parsed
	}
	return defaultTime
}

// UpdatedLabel buckets the age of t relative to now into a short label:
// "Updated today", "Updated yesterday", "Updated N days ago" (under a week),
// "Updated N weeks ago" (under 30 days), "Updated N months ago" (under a year)
// and "Updated N years ago". Future timestamps count as today.
func UpdatedLabel(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}

	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = 0
	}

	switch {
	case days == 0:
		return "Updated today"
	case days == 1:
		return "Updated yesterday"
	case days < 7:
		return fmt.Sprintf("Updated %d days ago", days)
	case days < 30:
		return "Updated " + plural(days/7, "week") + " ago"
	case days < 365:
		return "Updated " + plural(days/30, "month") + " ago"
	default:
		return "Updated " + plural(days/365, "year") + " ago"
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
