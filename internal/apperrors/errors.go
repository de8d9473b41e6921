package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the user lacks the role required for the action.
var ErrForbidden = errors.New("forbidden")

// ErrTransient indicates a retryable store failure (timeout, dropped connection).
var ErrTransient = errors.New("transient store failure")

// ErrLockedVersion indicates a write against a locked budget version.
var ErrLockedVersion = errors.New("budget version is locked")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
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

// NewAppError creates an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewConflictError returns an AppError that matches ErrDuplicate.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrDuplicate}
}

// NewValidationFailedError returns an AppError that matches ErrValidation.
func NewValidationFailedError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewTransientError returns an AppError that matches ErrTransient and keeps the cause.
func NewTransientError(message string, cause error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: errors.Join(ErrTransient, cause)}
}

// LockedVersionError is returned when a budget-kind write targets a locked budget version.
type LockedVersionError struct {
	OrganizationID string
	Year           int
	LockedBy       string
}

func (e *LockedVersionError) Error() string {
	if e.LockedBy != "" {
		return fmt.Sprintf("budget for organization %s year %d is locked by %s", e.OrganizationID, e.Year, e.LockedBy)
	}
	return fmt.Sprintf("budget for organization %s year %d is locked", e.OrganizationID, e.Year)
}

// Is lets errors.Is(err, ErrLockedVersion) match.
func (e *LockedVersionError) Is(target error) bool {
	return target == ErrLockedVersion
}
