// Package options implements the generic functional options shared by
// carbonviz configs (filter specs, hierarchy builds, trendlines, exports).
package options

// Option configures a target of type T. A nil Option is a no-op.
type Option[T any] func(T) error

// New wraps fn, which may reject its input.
func New[T any](fn func(T) error) Option[T] {
	return fn
}

// NoError wraps a setter that cannot fail.
func NoError[T any](fn func(T)) Option[T] {
	return func(target T) error {
		fn(target)
		return nil
	}
}

// Apply runs opts against target in order and returns the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(target); err != nil {
			return err
		}
	}

	return nil
}
