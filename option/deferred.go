package option

import (
	"fmt"
	"sync"
)

// Defer returns an Option whose contents are computed on first use.
//
// The first operation invoked on the returned Option calls producer,
// classifies its result through the same rule as FromPointer (nil means
// absent) and caches the outcome; from then on the Option behaves exactly
// like the cached Some or None and the producer is never called again, even
// if it has side effects. First access is serialized, so a Defer Option
// shared across goroutines still runs its producer at most once.
//
// If the producer panics, the panic propagates to the caller of the
// triggering operation and the Option stays unresolved: a failed production
// attempt is not recorded as absence, and a later operation will invoke the
// producer again.
func Defer[T any](producer func() *T) Option[T] {
	return &deferred[T]{producer: producer}
}

type deferred[T any] struct {
	mu       sync.Mutex
	producer func() *T
	resolved Option[T]
}

// resolve performs the unresolved -> resolved transition, at most once.
// The lock is held across the producer call so that concurrent first access
// observes exactly one invocation.
func (o *deferred[T]) resolve() Option[T] {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.resolved == nil {
		o.resolved = FromPointer(o.producer())
		o.producer = nil
	}

	return o.resolved
}

func (o *deferred[T]) IsDefined() bool {
	return o.resolve().IsDefined()
}

func (o *deferred[T]) IsEmpty() bool {
	return o.resolve().IsEmpty()
}

func (o *deferred[T]) Get() (T, error) {
	return o.resolve().Get()
}

func (o *deferred[T]) MustGet() T {
	return o.resolve().MustGet()
}

func (o *deferred[T]) GetOrElse(fallback T) T {
	return o.resolve().GetOrElse(fallback)
}

func (o *deferred[T]) GetOrCall(fn func() T) T {
	return o.resolve().GetOrCall(fn)
}

func (o *deferred[T]) GetOrErr(errFn func() error) (T, error) {
	return o.resolve().GetOrErr(errFn)
}

func (o *deferred[T]) Filter(pred func(T) bool) Option[T] {
	return o.resolve().Filter(pred)
}

func (o *deferred[T]) OrElse(other Option[T]) Option[T] {
	return o.resolve().OrElse(other)
}

func (o *deferred[T]) OrElseCall(fn func() Option[T]) Option[T] {
	return o.resolve().OrElseCall(fn)
}

func (o *deferred[T]) Exists(pred func(T) bool) bool {
	return o.resolve().Exists(pred)
}

func (o *deferred[T]) ForAll(pred func(T) bool) bool {
	return o.resolve().ForAll(pred)
}

func (o *deferred[T]) IfDefined(fn func(T)) {
	o.resolve().IfDefined(fn)
}

func (o *deferred[T]) Ptr() *T {
	return o.resolve().Ptr()
}

func (o *deferred[T]) String() string {
	return o.resolve().(fmt.Stringer).String()
}

func (o *deferred[T]) sealed() {}
