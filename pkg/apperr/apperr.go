/*
Copyright © 2025 Laris Authors
SPDX-License-Identifier: Apache-2.0
*/

package apperr

import (
	"errors"
	"fmt"
)

// Code classifies an error for programmatic handling.
type Code string

const (
	// CodeNotFound indicates a required file or resource was not found.
	CodeNotFound Code = "NOT_FOUND"
	// CodeTimeout indicates an operation exceeded its time limit.
	CodeTimeout Code = "TIMEOUT"
	// CodeUnauthorized indicates an authentication or authorization failure.
	CodeUnauthorized Code = "UNAUTHORIZED"
	// CodeRateLimit indicates an enforced request limit was exceeded.
	CodeRateLimit Code = "RATE_LIMIT"
	// CodeInvalidInput indicates malformed or invalid input.
	CodeInvalidInput Code = "INVALID_INPUT"
	// CodeInternal indicates an internal failure.
	CodeInternal Code = "INTERNAL"
)

// Error carries a code for programmatic handling, a human-readable
// message, and the underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates an Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a code and message.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf extracts the code from err, walking the wrap chain.
// Non-classified errors yield CodeInternal; a nil err yields the empty
// code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// IsTimeout reports whether err is classified as a timeout.
func IsTimeout(err error) bool {
	return CodeOf(err) == CodeTimeout
}
