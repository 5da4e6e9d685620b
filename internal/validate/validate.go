// Package validate provides explicit request validation. Each request type
// exposes a Validate method built from the checks here; every violated field
// is collected, not just the first.
package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// emailRegex is a pragmatic format check, not a full RFC 5322 parser.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// FieldError describes a single constraint violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors is the set of violations for one request. It implements error so
// services can return it directly.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Collector accumulates field violations while a request is checked.
type Collector struct {
	errs Errors
}

// Add records a violation against a field.
func (c *Collector) Add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

// NotBlank requires a non-empty value after trimming whitespace.
func (c *Collector) NotBlank(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "must not be blank")
	}
}

// MaxLen rejects values longer than max characters. Empty values pass.
func (c *Collector) MaxLen(field, value string, max int) {
	if len(value) > max {
		c.Add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

// MinLen rejects non-empty values shorter than min characters.
func (c *Collector) MinLen(field, value string, min int) {
	if value != "" && len(value) < min {
		c.Add(field, fmt.Sprintf("must be at least %d characters", min))
	}
}

// Email rejects non-empty values that do not look like an email address.
func (c *Collector) Email(field, value string) {
	if value != "" && !emailRegex.MatchString(value) {
		c.Add(field, "must be a well-formed email address")
	}
}

// Min rejects values below the given bound.
func (c *Collector) Min(field string, value, min int) {
	if value < min {
		c.Add(field, fmt.Sprintf("must be greater than or equal to %d", min))
	}
}

// Err returns the collected violations, or nil when the request is valid.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
