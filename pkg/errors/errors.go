// Package errors defines common error types for the kclique pipeline.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the pipeline, per spec §7.
const (
	CodeUnknown      = "UNKNOWN_ERROR"
	CodeConfigError  = "CONFIG_ERROR"
	CodeIOFatal      = "IO_FATAL"
	CodeOutOfMemory  = "OUT_OF_MEMORY"
	CodeInvariant    = "INVARIANT_VIOLATION"
	CodeInvalidInput = "INVALID_INPUT"
)

// AppError represents a pipeline error with a code and message.
type AppError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is checks if the error matches the target by code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// New creates a new AppError.
func New(code string, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError.
func Wrap(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error instances, one per stage-failure kind in spec §7.
var (
	ErrConfigError  = New(CodeConfigError, "configuration error")
	ErrIOFatal      = New(CodeIOFatal, "edge list unreadable or malformed")
	ErrOutOfMemory  = New(CodeOutOfMemory, "allocation failure in scratch structure")
	ErrInvariant    = New(CodeInvariant, "invariant violation")
	ErrInvalidInput = New(CodeInvalidInput, "invalid input")
)

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigError)
}

// IsIOFatal reports whether err is an unrecoverable input error.
func IsIOFatal(err error) bool {
	return errors.Is(err, ErrIOFatal)
}

// IsOutOfMemory reports whether err is an allocation failure.
func IsOutOfMemory(err error) bool {
	return errors.Is(err, ErrOutOfMemory)
}

// IsInvariant reports whether err is an internal invariant violation (a bug, not a runtime condition).
func IsInvariant(err error) bool {
	return errors.Is(err, ErrInvariant)
}

// GetErrorCode extracts the error code from an error.
func GetErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetErrorMessage extracts the error message from an error.
func GetErrorMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
