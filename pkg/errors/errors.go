package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Config file errors
	ErrConfigRead  ErrorCode = "CONFIG_READ"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Target path errors
	ErrTargetPath ErrorCode = "TARGET_PATH"

	// Tool configuration errors
	ErrSettingsLoad ErrorCode = "SETTINGS_LOAD"
)

// ResolveError represents a structured error with code and details
type ResolveError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ResolveError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ResolveError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ResolveError) Is(target error) bool {
	var targetErr *ResolveError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ResolveError with the given code and message
func New(code ErrorCode, message string) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ResolveError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ResolveError {
	return &ResolveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ResolveError
func Wrap(err error, code ErrorCode, message string) *ResolveError {
	if err == nil {
		return nil
	}
	return &ResolveError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ResolveError {
	if err == nil {
		return nil
	}
	return &ResolveError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ResolveError) WithDetail(key string, value interface{}) *ResolveError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ResolveError
func GetErrorCode(err error) ErrorCode {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ResolveError
func GetErrorDetails(err error) map[string]interface{} {
	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Details
	}
	return nil
}
