// Package validation provides explicit, per-field request checks backed by
// go-playground/validator. Request types call the Checker methods field by
// field instead of relying on struct tags.
package validation

import (
	"strconv"
	"strings"

	"practico/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator instance. It is safe for concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Check starts a new Checker for one request.
func (v *Validator) Check() *Checker {
	return &Checker{validate: v.validate}
}

// Checker accumulates field violations in the order the checks run.
type Checker struct {
	validate   *validator.Validate
	violations []apperrors.FieldViolation
}

func (c *Checker) add(field, message string) {
	c.violations = append(c.violations, apperrors.FieldViolation{Field: field, Message: message})
}

// Required reports a violation when value is empty or only whitespace.
func (c *Checker) Required(field, value string) *Checker {
	if strings.TrimSpace(value) == "" {
		c.add(field, "must not be blank")
	}
	return c
}

// Email reports a violation when a non-blank value is not a well-formed
// address. Blank values are left to Required.
func (c *Checker) Email(field, value string) *Checker {
	if strings.TrimSpace(value) == "" {
		return c
	}
	if err := c.validate.Var(value, "email"); err != nil {
		c.add(field, "must be a well-formed email address")
	}
	return c
}

// DecimalMin reports a violation when value is missing or below min.
func (c *Checker) DecimalMin(field string, value *float64, min float64) *Checker {
	if value == nil {
		c.add(field, "must not be null")
		return c
	}
	bound := strconv.FormatFloat(min, 'f', -1, 64)
	if err := c.validate.Var(*value, "gte="+bound); err != nil {
		c.add(field, "must be greater than or equal to "+bound)
	}
	return c
}

// IntMin reports a violation when value is missing or below min.
func (c *Checker) IntMin(field string, value *int, min int) *Checker {
	if value == nil {
		c.add(field, "must not be null")
		return c
	}
	bound := strconv.Itoa(min)
	if err := c.validate.Var(*value, "gte="+bound); err != nil {
		c.add(field, "must be greater than or equal to "+bound)
	}
	return c
}

// Violations returns the collected violations.
func (c *Checker) Violations() []apperrors.FieldViolation {
	return c.violations
}

// Err returns a *apperrors.ValidationError, or nil when nothing was violated.
func (c *Checker) Err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &apperrors.ValidationError{Violations: c.violations}
}
