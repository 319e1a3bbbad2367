package option

// FromPointer bridges Go's native absence marker into the Option world:
// it returns an absent Option when p is nil, otherwise an Option containing
// *p. It is the sole conversion rule between nullable values and Options;
// Option.Ptr is its inverse.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// FromOk bridges Go's comma-ok convention (map lookups, type assertions)
// into the Option world.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// Map returns an Option containing fn applied to the contained value, or an
// absent Option when o is absent. fn is not invoked in the absent case.
func Map[T any, U any](o Option[T], fn func(T) U) Option[U] {
	value, err := o.Get()
	if err != nil {
		return None[U]()
	}

	return Some(fn(value))
}

// FlatMap returns fn applied to the contained value (with no re-wrapping),
// or an absent Option when o is absent.
func FlatMap[T any, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	value, err := o.Get()
	if err != nil {
		return None[U]()
	}

	return fn(value)
}

// Fold collapses an Option into a single value: onDefined applied to the
// contained value when present, onEmpty otherwise.
func Fold[T any, U any](o Option[T], onEmpty func() U, onDefined func(T) U) U {
	value, err := o.Get()
	if err != nil {
		return onEmpty()
	}

	return onDefined(value)
}

// Equal reports whether a and b agree on presence and, when both are
// present, on the contained value. Two absent Options are equal.
func Equal[T comparable](a Option[T], b Option[T]) bool {
	av, aerr := a.Get()
	bv, berr := b.Get()

	if (aerr == nil) != (berr == nil) {
		return false
	}

	if aerr != nil {
		return true
	}

	return av == bv
}

// Contains reports whether o contains exactly value.
func Contains[T comparable](o Option[T], value T) bool {
	return o.Exists(func(v T) bool { return v == value })
}
