package validation

import (
	"fmt"

	"study-planner/internal/domain"
)

// ProfileValidator checks profile and settings input
type ProfileValidator struct {
	validator *Validator
}

// NewProfileValidator creates a new profile validator
func NewProfileValidator() *ProfileValidator {
	return &ProfileValidator{
		validator: NewValidator(),
	}
}

// ValidateGoalIndex checks a zero-based goal index against the goal count
func (pv *ProfileValidator) ValidateGoalIndex(index, count int) error {
	if index < 0 || index >= count {
		validationError := NewValidationError()
		reason := "there are no goals"
		if count > 0 {
			reason = fmt.Sprintf("must be between 1 and %d", count)
		}
		validationError.AddInvalidRangeError("goal", index+1, reason)
		return validationError
	}
	return nil
}

// ValidateSetting checks that key names a setting and value fits it
func (pv *ProfileValidator) ValidateSetting(key, value string) error {
	if _, err := domain.DefaultSettings().With(key, value); err != nil {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("setting", key+"="+value, err.Error())
		return validationError
	}
	return nil
}
