// Package fault defines the structured, coded errors carried inside failed
// results. Every failure that crosses a workflow boundary has a string code
// from a closed per-domain set, a human-readable message, and optionally the
// resource kind it refers to. Callers dispatch on the code, not the message.
package fault

import (
	"errors"
	"fmt"
)

// CodeInternal is the generic infrastructure code attached to effect errors
// and recovered panics. It is deliberately coarse: nothing above the effect
// can recover from it anyway.
const CodeInternal = "INTERNAL_ERROR"

// Error is a coded error value. Code and Message are always set; Resource
// names the entity kind on not-found errors.
type Error struct {
	Code     string
	Message  string
	Resource string
	cause    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// New builds a coded error.
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf builds a coded error with a formatted message.
func Newf(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotFound builds a coded error tagged with the missing resource kind.
func NotFound(code, resource, message string) *Error {
	return &Error{Code: code, Message: message, Resource: resource}
}

// Internal wraps an unexpected effect error under CodeInternal, keeping the
// original message for diagnostics.
func Internal(cause error) *Error {
	msg := "internal error"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{Code: CodeInternal, Message: msg, cause: cause}
}

// Internalf builds an internal error from a formatted message.
func Internalf(format string, args ...any) *Error {
	return &Error{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the code from err, unwrapping as needed. Uncoded errors
// report CodeInternal so transport layers always have a code to render.
func CodeOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return CodeInternal
}

// MessageOf extracts the message from err, falling back to err.Error().
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code == code
	}
	return false
}
