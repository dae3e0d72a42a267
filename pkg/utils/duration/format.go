// ABOUTME: Duration formatting utilities for course length labels
// ABOUTME: Turns "<n> <unit>" strings into correctly pluralized display labels

package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// courseDurationPattern matches "<n> <unit>" with an optional plural suffix
var courseDurationPattern = regexp.MustCompile(`(?i)^(\d+)\s*(week|month|day|hour)s?$`)

// FormatCourseDuration normalizes a course duration such as "3 week" into
// "3 weeks" and "1 months" into "1 month". Strings in any other format are
// returned unchanged.
func FormatCourseDuration(durationStr string) string {
	trimmed := strings.TrimSpace(durationStr)
	m := courseDurationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return durationStr
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return durationStr
	}

	unit := strings.ToLower(m[2])
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// Hours converts a matched course duration to an approximate number of hours.
// It returns false for unmatched formats.
func Hours(durationStr string) (float64, bool) {
	m := courseDurationPattern.FindStringSubmatch(strings.TrimSpace(durationStr))
	if m == nil {
		return 0, false
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}

	switch strings.ToLower(m[2]) {
	case "hour":
		return float64(n), true
	case "day":
		return float64(n) * 24, true
	case "week":
		return float64(n) * 24 * 7, true
	default:
		return float64(n) * 24 * 30, true
	}
}
