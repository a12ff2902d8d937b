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

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Output errors
	ErrStreamWrite ErrorCode = "STREAM_WRITE"
	ErrErrLogWrite ErrorCode = "ERRLOG_WRITE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrRender      ErrorCode = "RENDER"

	// Theme and help topic errors
	ErrThemeLoad ErrorCode = "THEME_LOAD"
	ErrTopicLoad ErrorCode = "TOPIC_LOAD"
)

// CloutError represents a structured error with code and details
type CloutError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CloutError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Detail returns the message without the code prefix, including the
// wrapped error text when there is one.
func (e *CloutError) Detail() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *CloutError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CloutError) Is(target error) bool {
	var targetErr *CloutError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CloutError with the given code and message
func New(code ErrorCode, message string) *CloutError {
	return &CloutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CloutError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CloutError {
	return &CloutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CloutError
func Wrap(err error, code ErrorCode, message string) *CloutError {
	if err == nil {
		return nil
	}
	return &CloutError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CloutError {
	if err == nil {
		return nil
	}
	return &CloutError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CloutError) WithDetail(key string, value interface{}) *CloutError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cloutErr *CloutError
	if errors.As(err, &cloutErr) {
		return cloutErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CloutError
func GetErrorCode(err error) ErrorCode {
	var cloutErr *CloutError
	if errors.As(err, &cloutErr) {
		return cloutErr.Code
	}
	return ErrUnknown
}

// APIError is returned by commands that talk to a remote API. Body holds
// the decoded JSON response, which usually carries a "message" or an
// "error" field meant for the user.
type APIError struct {
	StatusCode int
	Body       map[string]interface{}
}

func (e *APIError) Error() string {
	if msg := e.BodyMessage(); msg != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// BodyMessage returns the user-facing message from the response body,
// preferring "message" over "error". Empty when neither is present.
func (e *APIError) BodyMessage() string {
	if e.Body == nil {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		if v, ok := e.Body[key]; ok && v != nil {
			return fmt.Sprint(v)
		}
	}
	return ""
}
