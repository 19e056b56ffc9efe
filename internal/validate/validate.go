// Package validate provides shared input validation for the HTTP layer.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ValidationError describes a single field validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MultiError collects multiple validation errors for a single request.
type MultiError struct {
	Errors []ValidationError
}

// Add appends a validation error. If err is nil, Add is a no-op.
func (m *MultiError) Add(err error) {
	if err == nil {
		return
	}
	if ve, ok := err.(*ValidationError); ok {
		m.Errors = append(m.Errors, *ve)
	} else {
		m.Errors = append(m.Errors, ValidationError{Field: "request", Message: err.Error()})
	}
}

// HasErrors reports whether any errors have been collected.
func (m *MultiError) HasErrors() bool { return len(m.Errors) > 0 }

// Error returns a pipe-delimited summary of all errors.
func (m *MultiError) Error() string {
	parts := make([]string, len(m.Errors))
	for i, e := range m.Errors {
		parts[i] = e.Error()
	}
	return strings.Join(parts, " | ")
}

// NonEmptyString validates that value is not empty or whitespace-only.
func NonEmptyString(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}
	return nil
}

// MaxLength validates that value does not exceed max rune count.
func MaxLength(field, value string, max int) error {
	if utf8.RuneCountInString(value) > max {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must not exceed %d characters", max)}
	}
	return nil
}

// IntInRange validates that value is within [min, max] inclusive.
func IntInRange(field string, value, min, max int) error {
	if value < min || value > max {
		return &ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", min, max)}
	}
	return nil
}

// languageCodeRE matches ISO 639-1 language codes (2-3 lowercase letters,
// optional region).
var languageCodeRE = regexp.MustCompile(`^[a-z]{2,3}(-[A-Z]{2})?$`)

// IsLanguageCode validates that value is a valid language code.
func IsLanguageCode(field, value string) error {
	if !languageCodeRE.MatchString(strings.TrimSpace(value)) {
		return &ValidationError{Field: field, Message: "must be a valid language code (e.g. en, si, ta)"}
	}
	return nil
}

// NoControlChars validates that value contains no control characters or
// null bytes. Queries are forwarded upstream as-is, so reject anything
// that could smuggle header or log content.
func NoControlChars(field, value string) error {
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return &ValidationError{Field: field, Message: "must not contain control characters"}
		}
	}
	return nil
}
