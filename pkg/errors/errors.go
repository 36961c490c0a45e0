// Package errors provides structured error types for the ledgerstats application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the core library and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - MISSING_*: A required token or line was absent from the input
//   - INVALID_*: A token was present but failed parsing or domain checks
//   - TOO_*: The data section length disagrees with the declared count
//   - GRAPH_*: Structural validation failures on a built graph
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidCount, "invalid transaction count: %q", line)
//	if errors.Is(err, errors.ErrCodeInvalidCount) {
//	    // Handle format error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidLeft, parseErr, "invalid left reference")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Identifier domain errors
	ErrCodeInvalidID  Code = "INVALID_ID"
	ErrCodeReservedID Code = "RESERVED_ID"

	// Transaction line errors
	ErrCodeMissingLeft      Code = "MISSING_LEFT"
	ErrCodeMissingRight     Code = "MISSING_RIGHT"
	ErrCodeMissingTimestamp Code = "MISSING_TIMESTAMP"
	ErrCodeInvalidLeft      Code = "INVALID_LEFT"
	ErrCodeInvalidRight     Code = "INVALID_RIGHT"
	ErrCodeInvalidTimestamp Code = "INVALID_TIMESTAMP"
	ErrCodeInvalidLeftID    Code = "INVALID_LEFT_ID"
	ErrCodeInvalidRightID   Code = "INVALID_RIGHT_ID"

	// Graph builder errors
	ErrCodeMissingCount        Code = "MISSING_COUNT"
	ErrCodeInvalidCount        Code = "INVALID_COUNT"
	ErrCodeTooManyTransactions Code = "TOO_MANY_TRANSACTIONS"
	ErrCodeTooFewTransactions  Code = "TOO_FEW_TRANSACTIONS"
	ErrCodeInvalidLeftRef      Code = "INVALID_LEFT_REF"
	ErrCodeInvalidRightRef     Code = "INVALID_RIGHT_REF"

	// Structural validation errors
	ErrCodeGraphCyclic       Code = "GRAPH_CYCLIC"
	ErrCodeGraphUnconnected  Code = "GRAPH_UNCONNECTED"
	ErrCodeGraphNotBipartite Code = "GRAPH_NOT_BIPARTITE"

	// Computation errors
	ErrCodeNumericOverflow Code = "NUMERIC_OVERFLOW"

	// I/O and internal errors
	ErrCodeIO       Code = "IO_ERROR"
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
