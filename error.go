package cobia

import (
	"fmt"
	"strings"

	"github.com/cape-open/cobia/capi"
)

// ErrorKind discriminates the four shapes an Error can take.
type ErrorKind int

const (
	// ErrorMessage is a plain message raised on this side.
	ErrorMessage ErrorKind = iota

	// ErrorMessageWithCause is a message wrapping an underlying Error.
	ErrorMessageWithCause

	// ErrorCode carries a bare result code; its text is resolved through
	// the middleware's description lookup when displayed.
	ErrorCode

	// ErrorCapeOpen carries a reference to an error object fetched from
	// the far side.
	ErrorCapeOpen
)

// Error is the Go face of a failure crossing the boundary. An
// ErrorCapeOpen value owns a reference on its error object; call Release
// when done with it. Release is a no-op for the other kinds.
type Error struct {
	kind    ErrorKind
	message string
	cause   *Error
	code    capi.CapeResult
	object  CapeError
}

// NewError creates a plain message error.
func NewError(message string) *Error {
	return &Error{kind: ErrorMessage, message: message}
}

// Errorf creates a plain message error from a format string.
func Errorf(format string, args ...any) *Error {
	return NewError(fmt.Sprintf(format, args...))
}

// NewErrorWithCause wraps cause under a new message.
func NewErrorWithCause(message string, cause *Error) *Error {
	return &Error{kind: ErrorMessageWithCause, message: message, cause: cause}
}

// ErrorFromCode creates a code error, or nil for the success code.
func ErrorFromCode(code capi.CapeResult) *Error {
	if code == capi.ErrNoError {
		return nil
	}
	return &Error{kind: ErrorCode, code: code}
}

// ErrorFromObject wraps an owned reference to a far side error object.
// Ownership of the reference moves to the returned Error.
func ErrorFromObject(object CapeError) *Error {
	return &Error{kind: ErrorCapeOpen, code: capi.ErrCapeOpenError, object: object}
}

// errorFromResult converts a call outcome on iface to an Error. The
// success code yields nil. The delegated code fetches the object's last
// error immediately, before any further call can overwrite the slot; any
// other code becomes a code error.
func errorFromResult(res capi.CapeResult, iface *capi.ICapeInterface) *Error {
	if res == capi.ErrNoError {
		return nil
	}
	if res == capi.ErrCapeOpenError && iface != nil {
		var raw *capi.ICapeError
		if r := iface.VTbl.GetLastError(iface.Me, &raw); r == capi.ErrNoError && raw != nil {
			return ErrorFromObject(AttachCapeError(raw))
		}
	}
	return ErrorFromCode(res)
}

// Kind returns the error's shape.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// Code returns the result code of an ErrorCode or ErrorCapeOpen error,
// and the unknown-error code otherwise.
func (e *Error) Code() capi.CapeResult {
	switch e.kind {
	case ErrorCode, ErrorCapeOpen:
		return e.code
	}
	return capi.ErrUnknownError
}

// Object returns the held error object without transferring ownership.
// Only ErrorCapeOpen errors hold one.
func (e *Error) Object() CapeError {
	return e.object
}

// Unwrap exposes the wrapped cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	if e.kind == ErrorMessageWithCause && e.cause != nil {
		return e.cause
	}
	return nil
}

// Release drops the reference held by an ErrorCapeOpen error and any
// wrapped cause. Safe to call on any kind and on nil.
func (e *Error) Release() {
	if e == nil {
		return
	}
	e.object.Release()
	if e.cause != nil {
		e.cause.Release()
	}
}

func (e *Error) Error() string {
	switch e.kind {
	case ErrorMessage:
		return e.message
	case ErrorMessageWithCause:
		var b strings.Builder
		b.WriteString(e.message)
		if e.cause != nil {
			b.WriteString(", caused by: ")
			b.WriteString(e.cause.Error())
		}
		return b.String()
	case ErrorCode:
		return resultDescription(e.code)
	case ErrorCapeOpen:
		if e.object.IsNil() {
			return resultDescription(capi.ErrCapeOpenError)
		}
		return e.object.Describe()
	}
	return resultDescription(capi.ErrUnknownError)
}

// resultDescription resolves a code through the middleware when one is
// installed, falling back to a built-in table.
func resultDescription(code capi.CapeResult) string {
	if p := capi.GetProcs(); p != nil && p.GetErrorDescription != nil {
		s := NewCapeString()
		out := s.AsCapeStringOut()
		if res := p.GetErrorDescription(code, &out); res == capi.ErrNoError {
			return s.String()
		}
	}
	if text, ok := builtinResultDescriptions[code]; ok {
		return text
	}
	return fmt.Sprintf("error code %d", code)
}

var builtinResultDescriptions = map[capi.CapeResult]string{
	capi.ErrNoError:         "no error",
	capi.ErrUnknownError:    "unknown error",
	capi.ErrNotImplemented:  "not implemented",
	capi.ErrNoSuchItem:      "no such item",
	capi.ErrInvalidArgument: "invalid argument",
	capi.ErrNullPointer:     "null pointer",
	capi.ErrDenied:          "access denied",
	capi.ErrOutOfMemory:     "out of memory",
	capi.ErrNoInterface:     "interface not supported",
	capi.ErrRegistry:        "registry error",
	capi.ErrNotFound:        "not found",
	capi.ErrBounds:          "index out of bounds",
	capi.ErrCapeOpenError:   "operation failed, see error object",
}
