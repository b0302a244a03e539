package validation

import (
	"regexp"
	"strings"
	"time"

	"study-planner/internal/domain"
)

var (
	clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	hexColorRegex  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Validator provides the shape checks shared by the entity validators
type Validator struct {
	loc *time.Location
}

// NewValidator creates a validator that reads dates in the local zone
func NewValidator() *Validator {
	return &Validator{loc: time.Local}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidClockTime checks for a 24-hour HH:MM time
func (v *Validator) IsValidClockTime(s string) bool {
	return clockTimeRegex.MatchString(s)
}

// IsValidDueDate checks that a due date is in one of the accepted layouts
func (v *Validator) IsValidDueDate(s string) bool {
	_, ok := domain.ParseDueDate(s, v.loc)
	return ok
}

// IsValidColor checks for a #RRGGBB colour
func (v *Validator) IsValidColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// IsValidPriority checks a priority name
func (v *Validator) IsValidPriority(p domain.Priority) bool {
	for _, known := range domain.Priorities {
		if p == known {
			return true
		}
	}
	return false
}

// IsValidDay checks a schedule day name
func (v *Validator) IsValidDay(d domain.Day) bool {
	for _, known := range domain.Days {
		if d == known {
			return true
		}
	}
	return false
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}
