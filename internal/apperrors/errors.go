package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrReference indicates that a line references an unusable chart-of-accounts entry.
var ErrReference = errors.New("account reference error")

// ErrState indicates that the requested operation is not legal in the entry's current status.
var ErrState = errors.New("invalid state")

// ErrForbidden indicates that the caller may not perform the requested change.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that a write lost a race with another writer.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an infrastructure failure (store unavailable, driver error).
var ErrInternal = errors.New("internal error")

// ErrConcurrentModification is returned when a compare-and-transition finds that
// the entry's status or version changed after it was read.
var ErrConcurrentModification = fmt.Errorf("%w: journal entry was modified concurrently", ErrConflict)

// AppError wraps infrastructure errors with an HTTP-ish status code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError. Codes >= 500 match ErrInternal.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports server-side AppErrors as ErrInternal so handlers don't need to type-switch.
func (e *AppError) Is(target error) bool {
	return target == ErrInternal && e.Code >= 500
}

// NotFoundError names the resource that could not be found for a tenant.
type NotFoundError struct {
	Resource string
	TenantID string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found for tenant %s", e.Resource, e.ID, e.TenantID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsClientError reports whether err is a business-rule violation the caller must correct.
// Such errors are terminal and must never be retried as-is.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrReference) ||
		errors.Is(err, ErrState) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound)
}

// IsRetryable reports whether resubmitting the same request could succeed.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrInternal)
}
