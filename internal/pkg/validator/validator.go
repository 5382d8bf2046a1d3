package validator

import (
	"regexp"
	"strings"
)

// MissingParamError reports a required request parameter that was absent
// or blank after trimming.
type MissingParamError struct {
	Param string
}

func (e MissingParamError) Error() string {
	return "missing required parameter: " + e.Param
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var nonDigitRegex = regexp.MustCompile(`\D`)

// NormalizePhone strips every non-digit character from a phone number.
// "+1 (555) 123-4567" becomes "15551234567". Phones are stored and
// compared only in this form.
func NormalizePhone(phone string) string {
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
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
