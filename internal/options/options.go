// Package options provides the generic functional-option plumbing qsh.Option
// is built on. qsh has exactly one option today (qsh.WithLocation, which
// overrides the wall-clock zone a parsed FileHeader's RecordStartTime is
// presented in) and it never fails, so the surface here is deliberately
// narrow: an Option always succeeds. A fallible variant would add an error
// return to Func and Apply, but nothing in this module needs one yet.
package options

// Option represents a functional option for configuring any type T.
type Option[T any] interface {
	apply(T)
}

// Func is a functional option that wraps a plain configuration function.
// It is the only Option implementation this module needs; qsh.Option is a
// type alias for Option[*parserConfig], and every qsh.WithXxx constructor
// returns a Func built via NoError.
type Func[T any] struct {
	applyFunc func(T)
}

// apply implements the Option interface.
func (f *Func[T]) apply(target T) {
	f.applyFunc(target)
}

// Apply applies options to target in order.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		opt.apply(target)
	}
}

// NoError wraps fn as an Option that cannot fail. This package has no
// fallible variant; every option this module constructs is a NoError
// option.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{applyFunc: fn}
}
