// Package apperr defines the error taxonomy shared by every service.
//
// Each failure carries a Kind so the HTTP boundary can pick a status code
// while callers keep a single human-readable message.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	// KindUnexpected marks invariant violations, e.g. an update that
	// should affect exactly one row affecting zero.
	KindUnexpected Kind = iota

	// KindMissingConfig marks a required connection or credential
	// setting that is absent.
	KindMissingConfig

	// KindUnauthorized marks a missing session, wrong role or bad
	// credentials.
	KindUnauthorized

	// KindValidation marks malformed input or a referenced entity that
	// does not exist.
	KindValidation

	// KindTransport marks a failed remote call or a non-success status
	// from the record store.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindMissingConfig:
		return "missing configuration"
	case KindUnauthorized:
		return "unauthorized"
	case KindValidation:
		return "validation error"
	case KindTransport:
		return "transport failure"
	default:
		return "unexpected error"
	}
}

// Error is a classified failure. Msg is what the caller shows to a human.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg == "" {
			return e.Err.Error()
		}
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports a match when target carries the same kind and message, so
// independently constructed sentinels compare equal under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Msg == e.Msg
}

// Unauthorized builds an unauthorized failure.
func Unauthorized(msg string) *Error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// Validation builds a validation failure.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// MissingConfig reports an absent required setting by name.
func MissingConfig(setting string) *Error {
	return &Error{Kind: KindMissingConfig, Msg: "missing configuration: " + setting}
}

// Transport wraps a failed remote call.
func Transport(msg string, err error) *Error {
	return &Error{Kind: KindTransport, Msg: msg, Err: err}
}

// Unexpected reports an invariant violation.
func Unexpected(msg string) *Error {
	return &Error{Kind: KindUnexpected, Msg: msg}
}

// Unexpectedf reports an invariant violation with formatting.
func Unexpectedf(format string, args ...any) *Error {
	return &Error{Kind: KindUnexpected, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, defaulting to KindUnexpected for
// errors that did not originate in this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
