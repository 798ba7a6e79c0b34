package vector

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one of
// them, so callers can match with errors.Is.
var (
	ErrInvalidFormat       = errors.New("invalid vector format")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrMalformedVector     = errors.New("malformed vector")
	ErrInvalidBinaryVector = errors.New("invalid binary vector")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNonFinite           = errors.New("non-finite result")
)

// Error carries the kind of a caller-input failure and its detail message.
// For ErrInvalidNumber the detail is the offending token, quoted in Error.
//
// The kind can be accessed via errors.Unwrap.
type Error struct {
	Kind   error
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Kind == ErrInvalidNumber:
		return e.Kind.Error() + ": '" + e.Detail + "'"
	case e.Detail == "":
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
