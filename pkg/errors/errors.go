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

	// Argument errors
	ErrArgumentMissing ErrorCode = "ARGUMENT_MISSING"

	// Fetch errors
	ErrNetwork  ErrorCode = "NETWORK"
	ErrNotFound ErrorCode = "NOT_FOUND"

	// Decode errors
	ErrDecode      ErrorCode = "DECODE"
	ErrImageDecode ErrorCode = "IMAGE_DECODE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileWrite ErrorCode = "FILE_WRITE"
)

// PokedexError represents a structured error with code and details
type PokedexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PokedexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PokedexError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PokedexError) Is(target error) bool {
	var targetErr *PokedexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PokedexError with the given code and message
func New(code ErrorCode, message string) *PokedexError {
	return &PokedexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PokedexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PokedexError {
	return &PokedexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PokedexError
func Wrap(err error, code ErrorCode, message string) *PokedexError {
	if err == nil {
		return nil
	}
	return &PokedexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PokedexError {
	if err == nil {
		return nil
	}
	return &PokedexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PokedexError) WithDetail(key string, value interface{}) *PokedexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PokedexError) WithDetails(details map[string]interface{}) *PokedexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var pokedexErr *PokedexError
	if errors.As(err, &pokedexErr) {
		return pokedexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PokedexError
func GetErrorCode(err error) ErrorCode {
	var pokedexErr *PokedexError
	if errors.As(err, &pokedexErr) {
		return pokedexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PokedexError
func GetErrorDetails(err error) map[string]interface{} {
	var pokedexErr *PokedexError
	if errors.As(err, &pokedexErr) {
		return pokedexErr.Details
	}
	return nil
}
