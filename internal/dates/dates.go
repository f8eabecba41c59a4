// Package dates provides canonical date/datetime parsing and validation.
//
// Property coercion and type inference both need to agree on what counts as a
// date, so the logic lives here rather than being duplicated per caller.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateLayout is the canonical date layout stored in date property values.
const DateLayout = "2006-01-02"

// DatetimeLayout is the canonical datetime layout stored in datetime values.
const DatetimeLayout = "2006-01-02T15:04:05Z07:00"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// LooksLikeDate reports whether s is shaped like a YYYY-MM-DD date,
// without checking calendar validity.
func LooksLikeDate(s string) bool {
	return dateRegex.MatchString(strings.TrimSpace(s))
}

// IsValidDate checks if a string is a valid YYYY-MM-DD date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if !dateRegex.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date: %q", s)
	}
	return time.Parse(DateLayout, s)
}

// ParseDatetime parses a datetime in one of the accepted formats:
// RFC3339, YYYY-MM-DDTHH:MM, or YYYY-MM-DDTHH:MM:SS.
func ParseDatetime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid datetime: empty")
	}

	formats := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime: %q", s)
}

// IsValidDatetime checks if a string is a valid datetime.
func IsValidDatetime(s string) bool {
	_, err := ParseDatetime(s)
	return err == nil
}
