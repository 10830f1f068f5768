// Package errors provides structured error types for unitconv.
//
// Every failure the converter can report carries a machine-readable [Code]
// so that callers (the interactive menu, the one-shot convert command) can
// decide whether an error is recoverable without string matching.
//
// # Error Codes
//
//   - INVALID_*: user input that could not be interpreted
//   - UNKNOWN_*: lookups outside the conversion table
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidOption, "option %q not found", raw)
//	if errors.Is(err, errors.ErrCodeInvalidOption) {
//	    // show the menu again
//	}
//
//	// Keep the offending text for diagnostics
//	err := errors.WrapInput(errors.ErrCodeInvalidNumber, cause, raw, "%q is not a number", raw)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidOption    Code = "INVALID_OPTION"
	ErrCodeInvalidNumber    Code = "INVALID_NUMBER"
	ErrCodeInvalidCategory  Code = "INVALID_CATEGORY"
	ErrCodeInvalidDirection Code = "INVALID_DIRECTION"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"

	// Lookup errors
	ErrCodeUnknownConversion Code = "UNKNOWN_CONVERSION"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Input   string // Raw user input that triggered the error (optional)
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// WrapInput is like Wrap but also records the raw input text. The input is
// captured by the caller before any parsing happens so diagnostics can quote
// exactly what the user typed.
func WrapInput(code Code, cause error, input string, format string, args ...any) *Error {
	e := Wrap(code, cause, format, args...)
	e.Input = input
	return e
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetInput returns the raw input recorded on err, if any.
func GetInput(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) && e.Input != "" {
		return e.Input, true
	}
	return "", false
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
