package sqlite

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "study-planner/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestHandleDatabaseError(t *testing.T) {
	originalErr := errors.New("database is locked")
	result := HandleDatabaseError("set student-tasks", originalErr)

	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeStorage))
	assert.Contains(t, result.Error(), "set student-tasks")
	assert.Contains(t, result.Error(), "database is locked")
}

func TestHandleDatabaseError_Deadline(t *testing.T) {
	result := HandleDatabaseError("get", fmt.Errorf("query: %w", context.DeadlineExceeded))

	assert.True(t, apperrors.IsErrorType(result, apperrors.ErrorTypeTimeout))
}
