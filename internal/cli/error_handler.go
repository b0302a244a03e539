package cli

import (
	stderrors "errors"
	"fmt"

	"study-planner/internal/errors"
	"study-planner/internal/logging"
	"study-planner/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle provides user-friendly error messages for validation and other errors.
// Unexpected failures are also logged at debug level with their code and slot.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if errors.ShouldLogError(err) {
		eh.logDetails(operation, err)
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

func (eh *ErrorHandler) message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

func (eh *ErrorHandler) logDetails(operation string, err error) {
	entry := logging.WithField("code", eh.GetErrorCode(err))
	if appErr, ok := errors.AsAppError(err); ok {
		if key, found := appErr.GetContext("key"); found {
			entry = entry.WithField("key", key)
		}
	}
	entry.Debugf("%s failed: %v", operation, err)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
