package handlers

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// fixPlusOffset reverses the substitution of + for space in date query
// parameters, otherwise time.Parse fails.
// Example: 2025-07-03T17:44:03+02:00 becomes 2025-07-03T17:44:03 02:00 on
// r.URL.Query().Get().
func fixPlusOffset(s string) string {
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		return s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	return s
}

// parseTimeParam parses an optional RFC3339 query parameter. A missing
// parameter yields a nil pointer and no error.
func parseTimeParam(q url.Values, name string) (*time.Time, error) {
	raw := fixPlusOffset(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", name)
	}
	return &ts, nil
}

const defaultLimit = 100

// parseSkipLimit parses skip/limit query parameters with the listing
// defaults (skip 0, limit 100).
func parseSkipLimit(q url.Values) (int, int, error) {
	skip := 0
	if s := q.Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, 0, fmt.Errorf("skip must be zero or positive")
		}
		skip = v
	}

	limit := defaultLimit
	if s := q.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v <= 0 {
			return 0, 0, fmt.Errorf("limit must be greater than zero")
		}
		limit = v
	}

	return skip, limit, nil
}
