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

// ErrOverpayment indicates that a payment would exceed the remaining balance of an assignment.
var ErrOverpayment = errors.New("payment exceeds remaining balance")

// ErrConflict indicates a concurrent-update race or a receipt-number collision.
// The whole operation is safe to retry once.
var ErrConflict = errors.New("conflicting concurrent update")

// ErrTimeout indicates a store operation exceeded its deadline. Retryable with backoff.
var ErrTimeout = errors.New("store operation timed out")

// ErrPartialFailure indicates the outcome of a multi-step write is indeterminate
// (e.g. a commit error after the payment insert). Callers must reconcile manually.
var ErrPartialFailure = errors.New("partial failure, manual reconciliation required")

// ErrForbidden indicates the actor is not allowed to perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Repositories use it to annotate infrastructure failures without losing
// the underlying error for errors.Is checks.
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

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that satisfies errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
