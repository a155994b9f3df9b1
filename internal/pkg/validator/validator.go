package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Code    string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// First returns the first accumulated error. Responses carry a single
// code/message pair, so validation surfaces in field order.
func (v ValidationErrors) First() ValidationError {
	if len(v) == 0 {
		return ValidationError{}
	}
	return v[0]
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Intentionally permissive: anything shaped like <chars>@<chars>.<chars>.
var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidDate parses a date string in "YYYY-MM-DD" format, falling back to
// RFC3339 for clients that send full timestamps.
func IsValidDate(dateStr string) (time.Time, bool) {
	if date, err := time.Parse("2006-01-02", dateStr); err == nil {
		return date, true
	}
	if date, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return date, true
	}
	return time.Time{}, false
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
