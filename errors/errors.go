package errors

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine readable error kind.
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeMissingToken ErrorCode = "MISSING_TOKEN"

	// Store errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
	ErrCodeTransient   ErrorCode = "TRANSIENT_FETCH"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// Business errors
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// AppError is the error type every layer hands back to controllers.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewValidationError reports malformed or contradictory input.
func NewValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, nil)
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeDBNotFound, message, nil)
}

// NewTransientError wraps a failed store access. Callers may retry.
func NewTransientError(message string, err error) *AppError {
	return NewAppError(ErrCodeTransient, message, err)
}

// IsAppError checks whether err is (or wraps) an AppError
func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

// GetAppError returns the AppError inside err, if any
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func hasCode(err error, codes ...ErrorCode) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	for _, code := range codes {
		if appErr.Code == code {
			return true
		}
	}
	return false
}

func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation, ErrCodeRequiredField, ErrCodeInvalidFormat)
}

func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeDBNotFound)
}

func IsTransient(err error) bool {
	return hasCode(err, ErrCodeTransient, ErrCodeDBError)
}

func IsInvalidOperation(err error) bool {
	return hasCode(err, ErrCodeInvalidOperation)
}

var (
	// Booking errors
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking already cancelled")
	ErrBookingCompleted = errors.New("booking already completed")
	ErrBookingConfirmed = errors.New("booking already confirmed")
	ErrBookingPending   = errors.New("booking not confirmed")

	// Listing errors
	ErrListingNotFound     = errors.New("listing not found")
	ErrListingNotAvailable = errors.New("listing not available")

	// Payment errors
	ErrPaymentFailed = errors.New("payment failed")
)
