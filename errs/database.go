package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
)

// Database & Storage Specific Errors
var (
	ErrUniqueConstraintViolation = fmt.Errorf("unique constraint violation: %w", ErrConflict)
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        tagged{entity + " not found", ErrNotFound},
	}
}

// NewDatabaseError creates a new database error with details about the operation
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return NewDatabaseFieldError(operation, entity, "", cause)
}

// NewDatabaseFieldError is NewDatabaseError for writes, where field names the unique
// column a duplicate key would refer to.
func NewDatabaseFieldError(operation, entity, field string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	// Check for common database errors and provide more specific messages
	if cause != nil {
		errStr := strings.ToLower(cause.Error())
		switch {
		case strings.Contains(errStr, "duplicate key"),
			strings.Contains(errStr, "unique constraint failed"),
			strings.Contains(errStr, "duplicated key"):
			return NewUniqueConstraintViolationError(entity, field, cause)
		case strings.Contains(errStr, "foreign key constraint"),
			strings.Contains(errStr, "violates foreign key"):
			return NewForeignKeyConstraintError(entity, cause)
		case strings.Contains(errStr, "connection refused"),
			strings.Contains(errStr, "failed to connect"):
			return &ApiErr{
				StatusCode: http.StatusServiceUnavailable,
				err:        ErrDatabaseConnection,
				Details:    "Unable to connect to database",
				Cause:      cause,
			}
		}
	}

	// Generic database error
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}

// NewUniqueConstraintViolationError reports a duplicate key. field may be empty when the
// column is not known.
func NewUniqueConstraintViolationError(entity, field string, cause error) *ApiErr {
	if field == "" {
		return &ApiErr{
			StatusCode: http.StatusConflict,
			err:        tagged{entity + " already exists", ErrUniqueConstraintViolation},
			Details:    "Unique constraint violation on " + entity,
			Cause:      cause,
		}
	}
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        tagged{fmt.Sprintf("%s with this %s already exists", entity, field), ErrUniqueConstraintViolation},
		Details:    fmt.Sprintf("Unique constraint violation on %s.%s", entity, field),
		Cause:      cause,
		Field:      field,
	}
}

func NewForeignKeyConstraintError(entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusBadRequest,
		err:        tagged{fmt.Sprintf("invalid reference in %s", entity), ErrForeignKeyConstraint},
		Details:    "The referenced resource does not exist or cannot be linked",
		Cause:      cause,
		Field:      "foreign_key",
	}
}

// Database & Storage Error Type Checkers
func IsUniqueConstraintViolationError(err error) bool {
	return errors.Is(err, ErrUniqueConstraintViolation)
}

func IsForeignKeyConstraintError(err error) bool {
	return errors.Is(err, ErrForeignKeyConstraint)
}

func IsDatabaseQueryError(err error) bool {
	return errors.Is(err, ErrDatabaseQuery)
}

func IsDatabaseConnectionError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
