package validation

import (
	"study-planner/internal/domain"
)

// ScheduleValidator provides validation for timetable input.
// Overlaps and start/end ordering are not checked.
type ScheduleValidator struct {
	validator *Validator
}

// NewScheduleValidator creates a new schedule validator
func NewScheduleValidator() *ScheduleValidator {
	return &ScheduleValidator{
		validator: NewValidator(),
	}
}

// ValidateDraft checks a schedule draft and returns it with text fields trimmed
func (sv *ScheduleValidator) ValidateDraft(draft domain.ScheduleDraft) (domain.ScheduleDraft, error) {
	validationError := NewValidationError()

	draft.Subject = sv.validator.TrimAndValidateString(draft.Subject)
	draft.Teacher = sv.validator.TrimAndValidateString(draft.Teacher)
	draft.Classroom = sv.validator.TrimAndValidateString(draft.Classroom)

	if !sv.validator.IsNonEmptyString(draft.Subject) {
		validationError.AddRequiredError("subject")
	}
	if !sv.validator.IsValidDay(draft.Day) {
		validationError.AddInvalidValueError("day", draft.Day, "must be monday to saturday")
	}
	if !sv.validator.IsValidClockTime(draft.StartTime) {
		validationError.AddInvalidFormatError("start time", draft.StartTime, "HH:MM")
	}
	if !sv.validator.IsValidClockTime(draft.EndTime) {
		validationError.AddInvalidFormatError("end time", draft.EndTime, "HH:MM")
	}
	if draft.Color != "" && !sv.validator.IsValidColor(draft.Color) {
		validationError.AddInvalidFormatError("color", draft.Color, "#RRGGBB")
	}

	return draft, validationError.OrNil()
}

// ValidateDay checks a day filter
func (sv *ScheduleValidator) ValidateDay(day domain.Day) error {
	if !sv.validator.IsValidDay(day) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("day", day, "must be monday to saturday")
		return validationError
	}
	return nil
}
