package option

// None returns the absent Option for type T.
//
// The absent variant carries no state: it is an empty struct, so any two
// absent Options of the same contained type are equal (==) by construction.
// Code may rely on that as a fast-path absence check.
func None[T any]() Option[T] {
	return none[T]{}
}

type none[T any] struct{}

func (o none[T]) IsDefined() bool {
	return false
}

func (o none[T]) IsEmpty() bool {
	return true
}

func (o none[T]) Get() (T, error) {
	var zero T

	return zero, ErrNoValue
}

func (o none[T]) MustGet() T {
	panic(ErrNoValue)
}

func (o none[T]) GetOrElse(fallback T) T {
	return fallback
}

func (o none[T]) GetOrCall(fn func() T) T {
	return fn()
}

func (o none[T]) GetOrErr(errFn func() error) (T, error) {
	var zero T

	return zero, errFn()
}

func (o none[T]) Filter(_ func(T) bool) Option[T] {
	return o
}

func (o none[T]) OrElse(other Option[T]) Option[T] {
	return other
}

func (o none[T]) OrElseCall(fn func() Option[T]) Option[T] {
	return fn()
}

func (o none[T]) Exists(_ func(T) bool) bool {
	return false
}

func (o none[T]) ForAll(_ func(T) bool) bool {
	return true
}

func (o none[T]) IfDefined(_ func(T)) {}

func (o none[T]) Ptr() *T {
	return nil
}

func (o none[T]) String() string {
	return "None"
}

func (o none[T]) sealed() {}
