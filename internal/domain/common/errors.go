// internal/domain/common/errors.go
package common

import (
	"errors"
	"strings"
)

// Code classifies application errors so the HTTP layer can map them to a status
// without inspecting message strings.
type Code string

const (
	CodeValidation  Code = "validation"  // missing/malformed request fields
	CodeAuth        Code = "auth"        // missing/invalid/expired token, bad credentials on protected reads
	CodeNotFound    Code = "not_found"   // missing entity
	CodeUnsupported Code = "unsupported" // operation disabled in the current data-backing mode
	CodeInternal    Code = "internal"    // unexpected failure
)

// Error is the taxonomy error reported to callers as a result value.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func newError(code Code, msg string) *Error {
	return &Error{Code: code, Message: strings.TrimSpace(msg)}
}

func Validation(msg string) *Error  { return newError(CodeValidation, msg) }
func Auth(msg string) *Error        { return newError(CodeAuth, msg) }
func NotFound(msg string) *Error    { return newError(CodeNotFound, msg) }
func Unsupported(msg string) *Error { return newError(CodeUnsupported, msg) }
func Internal(msg string) *Error    { return newError(CodeInternal, msg) }

// CodeOf extracts the taxonomy code from err. Anything that is not a taxonomy
// error is an unexpected failure.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// MessageOf returns the caller-facing message for err. Non-taxonomy errors are
// masked to avoid leaking internals.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
