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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Theme errors
	ErrThemeInvalid    ErrorCode = "THEME_INVALID"
	ErrManifestParse   ErrorCode = "MANIFEST_PARSE"
	ErrVCS             ErrorCode = "VCS"
	ErrPackagingFailed ErrorCode = "PACKAGING_FAILED"

	// FileSystem errors
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrArchiveWrite ErrorCode = "ARCHIVE_WRITE"
	ErrCatalogWrite ErrorCode = "CATALOG_WRITE"
)

// ThemepackError represents a structured error with code and details
type ThemepackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ThemepackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ThemepackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ThemepackError) Is(target error) bool {
	var targetErr *ThemepackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ThemepackError with the given code and message
func New(code ErrorCode, message string) *ThemepackError {
	return &ThemepackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ThemepackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ThemepackError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a ThemepackError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *ThemepackError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ThemepackError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *ThemepackError) WithDetail(key string, value interface{}) *ThemepackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tpErr *ThemepackError
	if errors.As(err, &tpErr) {
		return tpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ThemepackError
func GetErrorCode(err error) ErrorCode {
	var tpErr *ThemepackError
	if errors.As(err, &tpErr) {
		return tpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ThemepackError
func GetErrorDetails(err error) map[string]interface{} {
	var tpErr *ThemepackError
	if errors.As(err, &tpErr) {
		return tpErr.Details
	}
	return nil
}
