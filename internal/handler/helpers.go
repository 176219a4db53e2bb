package handler

import (
	"math"
	"strconv"
	"time"
)

// Request bodies bind into `any` fields so missing and mistyped values can be
// told apart per field, matching the per-field error messages of the API.

// stringField returns the value as a non-empty string.
func stringField(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// numberField accepts JSON numbers and numeric strings.
func numberField(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func isInteger(f float64) bool {
	return f == math.Trunc(f) && !math.IsInf(f, 0) && !math.IsNaN(f)
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
