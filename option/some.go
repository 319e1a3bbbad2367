package option

import "fmt"

// Some returns an Option containing value.
//
// Absence is always represented structurally: code that wants the absent
// branch must construct None (or go through FromPointer), never smuggle a
// marker value into Some.
func Some[T any](value T) Option[T] {
	return some[T]{value: value}
}

type some[T any] struct {
	value T
}

func (o some[T]) IsDefined() bool {
	return true
}

func (o some[T]) IsEmpty() bool {
	return false
}

func (o some[T]) Get() (T, error) {
	return o.value, nil
}

func (o some[T]) MustGet() T {
	return o.value
}

func (o some[T]) GetOrElse(_ T) T {
	return o.value
}

func (o some[T]) GetOrCall(_ func() T) T {
	return o.value
}

func (o some[T]) GetOrErr(_ func() error) (T, error) {
	return o.value, nil
}

func (o some[T]) Filter(pred func(T) bool) Option[T] {
	if pred(o.value) {
		return o
	}

	return None[T]()
}

func (o some[T]) OrElse(_ Option[T]) Option[T] {
	return o
}

func (o some[T]) OrElseCall(_ func() Option[T]) Option[T] {
	return o
}

func (o some[T]) Exists(pred func(T) bool) bool {
	return pred(o.value)
}

func (o some[T]) ForAll(pred func(T) bool) bool {
	return pred(o.value)
}

func (o some[T]) IfDefined(fn func(T)) {
	fn(o.value)
}

func (o some[T]) Ptr() *T {
	value := o.value

	return &value
}

func (o some[T]) String() string {
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o some[T]) sealed() {}
