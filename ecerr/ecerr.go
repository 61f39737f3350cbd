// Package ecerr defines the error taxonomy shared by the montgomery and
// ec packages. Every public operation in this module returns a *Error
// (nil on success) rather than a bare error kind so that callers can
// use errors.As to recover the abstract Kind while still seeing a
// human-readable, stack-annotated message.
package ecerr

import "github.com/pkg/errors"

// Kind is an abstract error category, one-to-one with the taxonomy a
// cryptographic library built against a C ABI would expose as integer
// error codes.
type Kind int

const (
	// Null indicates a required argument was absent (a nil pointer in
	// the original C-shaped API).
	Null Kind = iota + 1
	// NotEnoughData indicates a zero-length input.
	NotEnoughData
	// Value indicates a numeric value out of range: modulus too small,
	// even modulus, input >= modulus, or a wrong-length buffer.
	Value
	// Memory indicates an allocation failure. Go's allocator panics
	// instead of returning nil, so this Kind is reserved for
	// constructors that need to report scratch-sizing invariants were
	// violated by a caller-supplied buffer.
	Memory
	// ECPoint indicates an (x, y) pair that is not on the curve.
	ECPoint
	// ECCurve indicates two points belong to different curve contexts.
	ECCurve
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null argument"
	case NotEnoughData:
		return "not enough data"
	case Value:
		return "invalid value"
	case Memory:
		return "allocation failure"
	case ECPoint:
		return "point not on curve"
	case ECCurve:
		return "points belong to different curves"
	default:
		return "unknown error"
	}
}

// Error pairs an abstract Kind with a human-readable cause.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.cause.Error()
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As can see past
// this Kind's message to the underlying failure (if any).
func (e *Error) Unwrap() error { return e.cause }

// New builds an *Error of the given Kind with a message, stack-annotated
// via github.com/pkg/errors so a Memory-kind failure path keeps a
// trace back to its origin.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, cause: errors.New(msg)}
}

// Wrap builds an *Error of the given Kind around an existing cause,
// preserving pkg/errors' stack annotation.
func Wrap(kind Kind, cause error, msg string) *Error {
	return &Error{Kind: kind, cause: errors.Wrap(cause, msg)}
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
