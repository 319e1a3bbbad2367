// Package option provides an explicit representation of a value that may or
// may not be present, replacing nil pointers and ad-hoc "zero value means
// missing" conventions with a type whose absent case is visible in the API.
//
// An Option is always in exactly one of two states: present (it holds one
// value) or absent (it holds nothing). Callers choose how to resolve absence
// through the extraction family (GetOrElse, GetOrCall, Get, GetOrErr) instead
// of scattering nil checks through call sites.
package option

import "errors"

// ErrNoValue is returned by Get (and carried by the MustGet panic) when a
// value is extracted from an absent Option.
//
// It is the only option-specific failure: every other extraction path is
// total with respect to absence.
var ErrNoValue = errors.New("option: no value present")

// Option represents an optional value of type T.
// It either contains a value or it does not.
//
// The variant set is closed: values are created through Some, None, Defer and
// the bridge functions (FromPointer, FromOk). Functions supplied by the
// caller (predicates, mappers, suppliers) are never invoked on an absent
// Option, and failures raised by them are never suppressed.
type Option[T any] interface {
	// IsDefined returns true if the Option contains a value.
	IsDefined() bool

	// IsEmpty returns true if the Option does not contain a value.
	IsEmpty() bool

	// Get returns the contained value, or ErrNoValue if there is none.
	Get() (T, error)

	// MustGet returns the contained value and panics if there is none.
	// It is the assert-presence form of Get for call sites where absence
	// is a programming error.
	MustGet() T

	// GetOrElse returns the contained value if present, otherwise fallback.
	// The fallback is supplied already constructed; use GetOrCall when
	// building it is expensive.
	GetOrElse(fallback T) T

	// GetOrCall returns the contained value if present, otherwise the
	// result of fn. fn is invoked at most once and only when absent.
	GetOrCall(fn func() T) T

	// GetOrErr returns the contained value if present, otherwise the error
	// produced by errFn. errFn is invoked only when absent.
	GetOrErr(errFn func() error) (T, error)

	// Filter returns the Option unchanged if it contains a value matching
	// pred, otherwise an absent Option.
	Filter(pred func(T) bool) Option[T]

	// OrElse returns the Option if it contains a value, otherwise other.
	OrElse(other Option[T]) Option[T]

	// OrElseCall returns the Option if it contains a value, otherwise the
	// Option produced by fn. fn is invoked only when absent.
	OrElseCall(fn func() Option[T]) Option[T]

	// Exists returns true iff the Option contains a value matching pred.
	Exists(pred func(T) bool) bool

	// ForAll returns true iff every contained value matches pred.
	// It is vacuously true for an absent Option.
	ForAll(pred func(T) bool) bool

	// IfDefined invokes fn with the contained value, if any.
	IfDefined(fn func(T))

	// Ptr returns a pointer to a copy of the contained value, or nil if
	// there is none. It is the inverse of FromPointer.
	Ptr() *T

	// sealed keeps the variant set closed to this package.
	sealed()
}
