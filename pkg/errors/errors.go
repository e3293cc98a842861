// Package errors provides structured error types for the deckplan
// application.
//
// The framing calculator never panics on bad input: every failure crosses
// package boundaries as a value carrying a machine-readable code, so the
// CLI (and any embedding caller) can distinguish a spec problem from a
// structural infeasibility without string matching.
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - NO_*/…_UNSUPPORTED: Structural infeasibility at the given inputs
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeNoJoistSize, "no joist size spans %.1f ft", span)
//	if errors.Is(err, errors.ErrCodeNoJoistSize) {
//	    // Handle infeasible span
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDeckFile, origErr, "parse %s", path)
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
	ErrCodeInvalidSpec     Code = "INVALID_SPEC"
	ErrCodeInvalidOutline  Code = "INVALID_OUTLINE"
	ErrCodeInvalidSections Code = "INVALID_SECTIONS"
	ErrCodeInvalidWall     Code = "INVALID_WALL"
	ErrCodeInvalidDeckFile Code = "INVALID_DECK_FILE"

	// Structural infeasibility errors
	ErrCodeNoJoistSize          Code = "NO_JOIST_SIZE"
	ErrCodeNoBeamSize           Code = "NO_BEAM_SIZE"
	ErrCodeMidBeamUnsupported   Code = "MID_BEAM_UNSUPPORTED"
	ErrCodeOuterBeamUnsupported Code = "OUTER_BEAM_UNSUPPORTED"
	ErrCodeAllSectionsFailed    Code = "ALL_SECTIONS_FAILED"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
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
