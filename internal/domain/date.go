package domain

import (
	"regexp"
	"strings"
	"time"
)

var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp. An empty value
// means today's UTC date. Timestamps keep their offset so the calendar
// date seen by DateSeed is the one the caller wrote.
func ParseDate(raw string, now time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		y, m, d := now.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	if !datePrefix.MatchString(raw) {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}
