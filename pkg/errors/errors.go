// Package errors provides the coded error type shared by the erdgraph
// packages, the CLI and the HTTP API.
//
// # Error Codes
//
// Codes are grouped by prefix:
//   - INVALID_*: the caller supplied something malformed
//   - UNKNOWN_REFERENCE: a relation names a table or column that does not exist
//   - NOT_LAID_OUT: geometry was requested before the layout stages ran
//   - NOT_FOUND: a stored layout does not exist
//   - INTERNAL_ERROR: anything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownReference, "relation %d: unknown table %q", i, name)
//	if errors.Is(err, errors.ErrCodeUnknownReference) {
//	    // Report to the user
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidInput, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code is a stable, machine-readable error category. The HTTP API returns
// it verbatim in the "code" field of error bodies.
type Code string

const (
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidDiagram   Code = "INVALID_DIAGRAM"
	ErrCodeInvalidName      Code = "INVALID_NAME"
	ErrCodeInvalidFormat    Code = "INVALID_FORMAT"
	ErrCodeUnknownReference Code = "UNKNOWN_REFERENCE"
	ErrCodeNotLaidOut       Code = "NOT_LAID_OUT"
	ErrCodeNotFound         Code = "NOT_FOUND"
	ErrCodeInternal         Code = "INTERNAL_ERROR"
)

// Client reports whether the code blames the caller's input.
func (c Code) Client() bool {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidDiagram, ErrCodeInvalidName,
		ErrCodeInvalidFormat, ErrCodeUnknownReference, ErrCodeNotFound:
		return true
	}
	return false
}

// Error carries a Code, a message fit for users and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code. A decode
// failure wrapped as INVALID_INPUT around an UNKNOWN_REFERENCE matches both.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// outermost returns the first *Error in err's chain, or nil.
func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage returns the outermost Error's message without the code
// prefix and cause, or err.Error() for foreign errors.
func UserMessage(err error) string {
	if e := outermost(err); e != nil {
		return e.Message
	}
	return err.Error()
}

// IsClientError reports whether err blames the caller. The HTTP API
// answers these with a 4xx status.
func IsClientError(err error) bool { return GetCode(err).Client() }
