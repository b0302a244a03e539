package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"

	"study-planner/internal/errors"
)

// HandleDatabaseError converts database errors to structured app errors
func HandleDatabaseError(operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		return errors.NewTimeoutError(operation, err.Error())
	}
	return errors.NewStorageError(operation, err)
}

// QuerySingle executes a query that returns a single row and scans it.
// A missing row is reported through found rather than as an error.
func QuerySingle[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Scanner) (*T, error), operation string, args ...interface{}) (result *T, found bool, err error) {
	row := db.QueryRowContext(ctx, query, args...)
	result, err = scanFunc(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, HandleDatabaseError(operation, err)
	}
	return result, true, nil
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, query string, scanFunc func(Rows) ([]*T, error), operation string, args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandleDatabaseError(operation, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandleDatabaseError(operation, err)
	}

	return results, nil
}

// Execute runs a statement that returns no rows
func Execute(ctx context.Context, db *sql.DB, query string, operation string, args ...interface{}) error {
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return HandleDatabaseError(operation, err)
	}
	return nil
}
