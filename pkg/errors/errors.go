// Package errors defines the coded errors shared by the spacegraph libraries
// and its CLI.
//
// Every failure that reaches a user carries a [Code]. The graph package wraps
// its sentinel errors in an [*Error], so callers can match either the code
// or the sentinel:
//
//	err := g.AddEdge(0, 9)
//	errors.Is(err, errors.ErrCodeOutOfRange)   // this package
//	stderrors.Is(err, graph.ErrVertexOutOfRange) // standard library
//
// # Codes
//
//   - INVALID_INPUT, INVALID_FORMAT, INVALID_PATH: bad arguments or files
//   - OUT_OF_RANGE, DIVISION_BY_ZERO: graph queries and mutations
//   - FILE_NOT_FOUND: missing graph or config file
//   - UNSUPPORTED: unknown file extension or output format
//
// The CLI maps the first group and FILE_NOT_FOUND to exit status 2.
package errors

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	ErrCodeOutOfRange     Code = "OUT_OF_RANGE"
	ErrCodeDivisionByZero Code = "DIVISION_BY_ZERO"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
)

// Error pairs a [Code] with a message and an optional cause.
// It prints as "CODE: message" or "CODE: message: cause".
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether the outermost *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	return GetCode(err) == code && code != ""
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
