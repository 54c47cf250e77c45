package validator

import (
	"regexp"
	"strings"
)

type ValidationError struct {
	Field   string
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

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

var monthKeyRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonthKey validates an ISO month key (YYYY-MM).
func IsValidMonthKey(key string) bool {
	return monthKeyRegex.MatchString(key)
}

var yearKeyRegex = regexp.MustCompile(`^\d{4}$`)

// IsValidYearKey validates a four-digit year key.
func IsValidYearKey(key string) bool {
	return yearKeyRegex.MatchString(key)
}
