// Package errs defines the error signal shared by every stage of the
// resolve-and-launch pipeline.
package errs

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code classifies a failure.
type Code string

const (
	// NotFound: configuration entry, binary file, or navigable window missing.
	NotFound Code = "NOT_FOUND"
	// WrongType: configuration value has an unexpected shape.
	WrongType Code = "WRONG_TYPE"
	// Unsupported: selection item not filesystem-backed, or foreground window unrecognized.
	Unsupported Code = "UNSUPPORTED"
	// SystemCallFailed: process creation or OS query failure.
	SystemCallFailed Code = "SYSTEM_CALL_FAILED"
	// Canceled is reserved; no current flow produces it.
	Canceled Code = "CANCELED"
)

// Error is a structured failure with a code and optional context.
type Error struct {
	Code    Code
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// Detail returns a detail value, or nil when unset.
func (e *Error) Detail(key string) interface{} {
	if e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// New creates a new Error
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new Error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an underlying error, recording a stack trace at the call site.
func Wrap(err error, code Code, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{
		Code:    code,
		Message: message,
		Cause:   pkgerrors.WithStack(err),
	}
}

// Is reports whether the outermost Error in err's chain carries code. Codes
// of inner Errors are not consulted, so re-coding an error replaces its code.
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

// GetCode extracts the code of the outermost Error in err's chain.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// As returns the outermost Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
