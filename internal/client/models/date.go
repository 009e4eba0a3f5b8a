package models

import (
	"strings"
	"time"
)

// DateLayout is the format the forms use for every date field.
const DateLayout = "2006-01-02"

// ParseDate reads a form date. Full RFC 3339 timestamps are accepted too.
// Plain dates are interpreted in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
