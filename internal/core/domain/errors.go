package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every local validation failure unwraps to exactly one of these.
var (
	ErrConfiguration         = errors.New("configuration error")
	ErrUnknownField          = errors.New("unknown field")
	ErrWrongFieldType        = errors.New("wrong field type")
	ErrInvalidEnumValue      = errors.New("invalid enum value")
	ErrInvalidPostalCode     = errors.New("invalid postal code")
	ErrMissingDependentField = errors.New("missing dependent field")
	ErrMissingSenderAddress  = errors.New("missing sender address")
	ErrMissingSelector       = errors.New("missing package selector")
	ErrConflictingSelectors  = errors.New("conflicting package selectors")
)

// Error describes a deterministic input or configuration failure detected before
// anything is sent to the carrier.
type Error struct {
	// Kind is one of the Err* sentinels above.
	Kind error
	// Field names the offending input key, when there is one.
	Field string
	// Value is the rejected value.
	Value any
	// Allowed lists the legal keys or values in their declared order.
	Allowed []string
	// Detail is a short human-readable explanation.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, " (allowed: %s)", strings.Join(e.Allowed, ", "))
	}
	return b.String()
}

// Unwrap exposes the kind so callers can use errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError builds an *Error of the given kind.
func NewError(kind error, field, format string, args ...any) *Error {
	return &Error{Kind: kind, Field: field, Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a local input failure that must never be
// retried or sent to the network.
func IsValidation(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind != ErrConfiguration
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
