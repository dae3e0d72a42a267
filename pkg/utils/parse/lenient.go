// ABOUTME: Lenient conversions for loosely typed JSON values
// ABOUTME: Used when backend records mix strings, numbers and booleans for the same field

package parse

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String converts v to a trimmed, non-empty string.
// Numbers are formatted without trailing zeros; objects and arrays are rejected.
func String(v interface{}) (string, bool) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case json.Number:
		s = t.String()
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return "", false
		}
		s = strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)
	return s, s != ""
}

// Float converts v to a float64. Strings are parsed with a leading-number
// rule so "4.5 stars" yields 4.5. NaN and infinities are rejected.
func Float(v interface{}) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, ok := leadingFloat(t)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOrZero converts v to a float64, coercing anything unparseable to 0
func FloatOrZero(v interface{}) float64 {
	f, _ := Float(v)
	return f
}

// Int converts v to an int, truncating fractional values
func Int(v interface{}) (int, bool) {
	f, ok := Float(v)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// Bool interprets common truthy encodings: true, 1, "true", "yes", "1"
func Bool(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1":
			return true
		}
		return false
	default:
		if f, ok := Float(v); ok {
			return f != 0
		}
		return false
	}
}

// Strings converts an array or a comma-separated string into trimmed values
func Strings(v interface{}) []string {
	out := []string{}
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []interface{}:
		for _, item := range t {
			if s, ok := String(item); ok {
				out = append(out, s)
			}
		}
	case string:
		for _, s := range strings.Split(t, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

// Len returns the length of an array value and whether v was an array
func Len(v interface{}) (int, bool) {
	switch t := v.(type) {
	case []interface{}:
		return len(t), true
	case []map[string]interface{}:
		return len(t), true
	case []string:
		return len(t), true
	default:
		return 0, false
	}
}

func leadingFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}

	end := 0
	seenDot := false
scan:
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			end = i + 1
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			break scan
		}
	}
	if end == 0 {
		return 0, false
	}
	var f float64
	if _, err := fmt.Sscanf(s[:end], "%g", &f); err != nil {
		return 0, false
	}
	return f, true
}
