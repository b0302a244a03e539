package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	apperrors "study-planner/internal/errors"
	"study-planner/internal/logging"
	"study-planner/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add task",
			err:       apperrors.NewValidationError("invalid input", nil),
			expected:  "failed to add task: invalid input",
		},
		{
			name:      "Not found error",
			operation: "show task",
			err:       apperrors.NewNotFoundError("task", "123"),
			expected:  "failed to show task: task not found: 123",
		},
		{
			name:      "Storage error",
			operation: "save task",
			err:       apperrors.NewStorageError("set", errors.New("disk full")),
			expected:  "failed to save task: A storage error occurred. Please try again.",
		},
		{
			name:      "Import format error",
			operation: "import backup",
			err:       apperrors.NewImportFormatError("not an object", nil),
			expected:  "failed to import backup: The file does not have a valid format.",
		},
		{
			name:      "Deadline",
			operation: "list tasks",
			err:       fmt.Errorf("query: %w", context.DeadlineExceeded),
			expected:  "failed to list tasks: The operation timed out. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "process",
			err:       errors.New("regular error"),
			expected:  "failed to process: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_IsNotFoundError(t *testing.T) {
	eh := NewErrorHandler()

	if !eh.IsNotFoundError(apperrors.NewNotFoundError("task", "1")) {
		t.Error("expected not found error to be detected")
	}
	if eh.IsNotFoundError(apperrors.NewValidationError("invalid input", nil)) {
		t.Error("validation error is not a not found error")
	}
	if eh.IsNotFoundError(errors.New("regular error")) {
		t.Error("regular error is not a not found error")
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "App error",
			err:      apperrors.NewValidationError("invalid input", nil),
			expected: "VALIDATION_FAILED",
		},
		{
			name:     "Import error",
			err:      apperrors.NewImportFormatError("bad", nil),
			expected: "IMPORT_FORMAT",
		},
		{
			name:     "Regular error",
			err:      errors.New("regular error"),
			expected: "UNKNOWN_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.GetErrorCode(tt.err)
			if result != tt.expected {
				t.Errorf("ErrorHandler.GetErrorCode() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleValidationError(t *testing.T) {
	eh := NewErrorHandler()

	validationErr := validation.NewValidationError()
	validationErr.AddRequiredError("title")
	validationErr.AddRequiredError("due date")

	result := eh.Handle("add task", validationErr)
	expected := "failed to add task: Multiple validation errors occurred:\n- title is required\n- due date is required"

	if result.Error() != expected {
		t.Errorf("ErrorHandler.Handle() with validation error = %q, want %q", result.Error(), expected)
	}
}

func TestErrorHandler_HandleNilError(t *testing.T) {
	eh := NewErrorHandler()

	if result := eh.Handle("test operation", nil); result != nil {
		t.Errorf("ErrorHandler.Handle() with nil error = %v, want nil", result)
	}
}

func TestErrorHandler_LogsUnexpectedErrors(t *testing.T) {
	var logs bytes.Buffer
	logging.SetOutput(&logs)
	logging.Configure(false, true)
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.Configure(false, false)
	})

	eh := NewErrorHandler()
	storageErr := apperrors.NewStorageError("write student-tasks", errors.New("disk full")).WithContext("key", "student-tasks")
	_ = eh.Handle("add task", storageErr)

	output := logs.String()
	for _, want := range []string{"code=STORAGE_ERROR", "key=student-tasks", "add task failed"} {
		if !strings.Contains(output, want) {
			t.Errorf("debug log %q does not contain %q", output, want)
		}
	}

	logs.Reset()
	_ = eh.Handle("add task", apperrors.NewNotFoundError("task", "1"))
	if logs.Len() != 0 {
		t.Errorf("user errors should not be logged, got %q", logs.String())
	}
}
