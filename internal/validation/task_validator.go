package validation

import (
	"study-planner/internal/domain"
)

// TaskValidator provides validation for task input
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDraft checks a task draft and returns it with text fields trimmed
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft) (domain.TaskDraft, error) {
	validationError := NewValidationError()

	draft.Title = tv.validator.TrimAndValidateString(draft.Title)
	draft.Subject = tv.validator.TrimAndValidateString(draft.Subject)
	draft.DueDate = tv.validator.TrimAndValidateString(draft.DueDate)

	if !tv.validator.IsNonEmptyString(draft.Title) {
		validationError.AddRequiredError("title")
	}

	if !tv.validator.IsValidPriority(draft.Priority) {
		validationError.AddInvalidValueError("priority", draft.Priority, "must be low, medium or high")
	}

	if draft.DueDate == "" {
		validationError.AddRequiredError("due date")
	} else if !tv.validator.IsValidDueDate(draft.DueDate) {
		validationError.AddInvalidFormatError("due date", draft.DueDate, "YYYY-MM-DD or YYYY-MM-DDTHH:MM")
	}

	return draft, validationError.OrNil()
}

// ValidateID checks that an id was supplied
func (tv *TaskValidator) ValidateID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task id")
		return validationError
	}
	return nil
}

// ValidateFilter checks the list filter values
func (tv *TaskValidator) ValidateFilter(status, priority string) error {
	validationError := NewValidationError()

	switch status {
	case "", "all", "pending", "completed":
	default:
		validationError.AddInvalidValueError("status", status, "must be all, pending or completed")
	}

	if priority != "" && priority != "all" && !tv.validator.IsValidPriority(domain.Priority(priority)) {
		validationError.AddInvalidValueError("priority", priority, "must be all, low, medium or high")
	}

	return validationError.OrNil()
}
