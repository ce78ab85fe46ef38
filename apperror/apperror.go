package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrAuthFailure  = errors.New("auth failure")
	ErrWriteFailed  = errors.New("write failed")
	ErrSubscription = errors.New("subscription error")
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
)

type AppError struct {
	Err     error  // sentinel category
	Cause   error  // underlying provider/store error, if any
	Message string // human-readable message
	Field   string // optional: field causing the error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func AuthFailure(message string) *AppError {
	return &AppError{
		Err:     ErrAuthFailure,
		Message: message,
	}
}

// WriteFailed wraps a rejected create/set operation with its cause. The
// caller decides whether to retry; nothing is kept locally.
func WriteFailed(collection string, cause error) *AppError {
	return &AppError{
		Err:     ErrWriteFailed,
		Cause:   cause,
		Message: fmt.Sprintf("failed to write to %s", collection),
	}
}

func Subscription(collection string, cause error) *AppError {
	return &AppError{
		Err:     ErrSubscription,
		Cause:   cause,
		Message: fmt.Sprintf("subscription to %s failed", collection),
	}
}

func ValidationFailed(field, message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
		Field:   field,
	}
}

func NotFound(resource, id string) *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found with id %s", resource, id),
	}
}
