package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrLockedSchedule indicates a structural mutation was attempted on a published,
// non-template schedule. Callers must unpublish or copy the schedule first.
var ErrLockedSchedule = errors.New("schedule is published and locked; unpublish or copy it first")

// ErrConflict indicates a stale write was rejected (version mismatch).
var ErrConflict = errors.New("conflict")

// AppError carries an HTTP-equivalent status code alongside the wrapped cause.
// It is mainly produced by the persistence layer for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError wrapping ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewValidationFailedError creates an AppError wrapping ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewConflictError creates an AppError wrapping ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: 409, Message: message, Err: ErrDuplicate}
}
