package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("field is required")
	err := NewValidationError("validation failed", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "validation failed" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "validation failed")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 123")
	}

	resource, ok := err.GetContext("resource")
	if !ok || resource != "task" {
		t.Errorf("NewNotFoundError should set resource context")
	}
	identifier, ok := err.GetContext("identifier")
	if !ok || identifier != "123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewStorageError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewStorageError("set student-tasks", cause)

	if err.Type != ErrorTypeStorage {
		t.Errorf("NewStorageError type = %v, want %v", err.Type, ErrorTypeStorage)
	}
	if err.Message != "storage operation failed: set student-tasks" {
		t.Errorf("NewStorageError message = %v", err.Message)
	}
	if err.Code != "STORAGE_ERROR" {
		t.Errorf("NewStorageError code = %v, want %v", err.Code, "STORAGE_ERROR")
	}
	if !errors.Is(err, cause) {
		t.Errorf("NewStorageError should wrap its cause")
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("priority", "urgent", "must be low, medium or high")

	if err.Message != "invalid input for priority: must be low, medium or high" {
		t.Errorf("NewInvalidInputError message = %v", err.Message)
	}
	value, ok := err.GetContext("value")
	if !ok || value != "urgent" {
		t.Errorf("NewInvalidInputError should set value context")
	}
}

func TestNewImportFormatError(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewImportFormatError("not a JSON document", cause)

	if err.Type != ErrorTypeImportFormat {
		t.Errorf("NewImportFormatError type = %v", err.Type)
	}
	if err.Code != "IMPORT_FORMAT" {
		t.Errorf("NewImportFormatError code = %v", err.Code)
	}
	if err.Message != "invalid format: not a JSON document" {
		t.Errorf("NewImportFormatError message = %v", err.Message)
	}
}

func TestNewExportError(t *testing.T) {
	err := NewExportError("write file", errors.New("read-only file system"))

	if err.Type != ErrorTypeExportFailure {
		t.Errorf("NewExportError type = %v", err.Type)
	}
	if err.Code != "EXPORT_FAILED" {
		t.Errorf("NewExportError code = %v", err.Code)
	}
}

func TestWrapError(t *testing.T) {
	cause := errors.New("original error")
	err := WrapError(cause, ErrorTypeStorage, "wrapped message")

	if err.Code != "storage" {
		t.Errorf("WrapError code = %v, want %v", err.Code, "storage")
	}
	if err.Cause != cause {
		t.Errorf("WrapError cause = %v, want %v", err.Cause, cause)
	}
}

func TestIsAppError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", NewValidationError("inner", nil))

	if !IsAppError(wrapped) {
		t.Errorf("IsAppError should find an AppError through wrapping")
	}
	if IsAppError(errors.New("regular error")) {
		t.Errorf("IsAppError should return false for regular error")
	}
	if IsAppError(nil) {
		t.Errorf("IsAppError should return false for nil")
	}
}

func TestIsErrorType(t *testing.T) {
	appError := &AppError{Type: ErrorTypeImportFormat}

	if !IsErrorType(appError, ErrorTypeImportFormat) {
		t.Errorf("IsErrorType should return true for matching type")
	}
	if IsErrorType(appError, ErrorTypeStorage) {
		t.Errorf("IsErrorType should return false for different type")
	}
	if IsErrorType(errors.New("regular error"), ErrorTypeImportFormat) {
		t.Errorf("IsErrorType should return false for regular error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation error", NewValidationError("invalid input", nil), "invalid input"},
		{"Not found error", NewNotFoundError("task", "123"), "task not found: 123"},
		{"Storage error", NewStorageError("get", errors.New("io")), "A storage error occurred. Please try again."},
		{"Import format error", NewImportFormatError("bad", nil), "The file does not have a valid format."},
		{"Export error", NewExportError("encode", nil), "The data could not be exported."},
		{"Timeout error", NewTimeoutError("query", "5s"), "The operation timed out. Please try again."},
		{"Context deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), "The operation timed out. Please try again."},
		{"Regular error", errors.New("regular error"), "regular error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := GetUserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(&AppError{Code: "VALIDATION_FAILED"}) != "VALIDATION_FAILED" {
		t.Errorf("GetErrorCode should return correct code for AppError")
	}
	if GetErrorCode(errors.New("regular error")) != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode should return UNKNOWN_ERROR for regular error")
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation error", NewValidationError("invalid input", nil), false},
		{"Not found error", NewNotFoundError("task", "123"), false},
		{"Invalid input error", NewInvalidInputError("day", "sunday", "unknown day"), false},
		{"Import format error", NewImportFormatError("bad", nil), false},
		{"Storage error", NewStorageError("set", errors.New("io")), true},
		{"Export error", NewExportError("write", errors.New("io")), true},
		{"Regular error", errors.New("regular error"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ShouldLogError(tt.err)
			if result != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", result, tt.expected)
			}
		})
	}
}
