// Wrapper shape, construction, access, and the lifting helpers.
//
// Everything here is a pure forward: a wrapper's identity is exactly the
// identity of its contained value, and no function in this package adds
// semantics beyond re-wrapping the result of the inner operation.

package newtype

import "fmt"

// Wrapper constrains any single-field newtype over inner type T.
//
// The field must be named Value and exported: the wrapper asserts no
// encapsulation, it exists purely to give a distinct nominal type to an
// existing value. Of, every type emitted by cmd/newtypegen, and any
// hand-written struct{ Value T } all satisfy it.
type Wrapper[T any] interface {
	~struct{ Value T }
}

// Of is a generic newtype with a phantom tag.
//
// Tag is never stored or inspected; it only makes instantiations nominally
// distinct, so Of[celsius, float64] and Of[fahrenheit, float64] cannot be
// mixed even though both hold a float64. Declare tags as empty structs:
//
//	type celsius struct{}
//	type Celsius = newtype.Of[celsius, float64]
//
// The Value field is read/write by design. Of satisfies Wrapper[T], so the
// whole package battery applies to it.
type Of[Tag any, T any] struct {
	Value T
}

// Get returns the contained value.
func (o Of[Tag, T]) Get() T { return o.Value }

// Ref returns a pointer to the contained value.
//
// This is the writable-reference forward: anything the inner type exposes
// through a pointer receiver remains reachable without unwrapping.
func (o *Of[Tag, T]) Ref() *T { return &o.Value }

// Set replaces the contained value.
func (o *Of[Tag, T]) Set(v T) { o.Value = v }

// String formats the contained value.
func (o Of[Tag, T]) String() string { return fmt.Sprint(o.Value) }

// unwrap reads the contained value out of any Wrapper.
//
// Field selection on a type-parameter value is not legal Go; converting to
// the constraint's structural core first is.
func unwrap[W Wrapper[T], T any](w W) T {
	return (struct{ Value T })(w).Value
}

// rewrap builds a Wrapper around v.
func rewrap[W Wrapper[T], T any](v T) W {
	return W(struct{ Value T }{Value: v})
}

// As converts a bare inner value into the wrapper W.
//
// The inner type is inferred from W:
//
//	m := newtype.As[Celsius](21.5)
func As[W Wrapper[T], T any](v T) W {
	return rewrap[W](v)
}

// Unwrap converts a wrapper back to its bare inner value.
//
// Unwrap(As[W](v)) == v for every v; wrapping holds no state of its own.
func Unwrap[W Wrapper[T], T any](w W) T {
	return unwrap(w)
}

// Zero returns the wrapper of T's zero value.
//
// The wrapper type must be named explicitly, there is no other context the
// compiler could resolve W from:
//
//	empty := newtype.Zero[Celsius]()
func Zero[W Wrapper[T], T any]() W {
	var w W
	return w
}

// Map applies f to the contained value and re-wraps the result.
//
// It lifts any unary inner operation one wrapper level.
func Map[W Wrapper[T], T any](w W, f func(T) T) W {
	return rewrap[W](f(unwrap(w)))
}

// Combine applies f to two contained values and re-wraps the result.
//
// It lifts any binary inner operation one wrapper level, which is how the
// battery reaches nested wrappers: for Outer holding Inner holding int,
//
//	sum := newtype.Combine(a, b, newtype.Add)
//
// instantiates Add for the Inner level and runs it under the Outer level.
// Stack Combine calls for deeper nesting.
func Combine[W Wrapper[T], T any](a, b W, f func(T, T) T) W {
	return rewrap[W](f(unwrap(a), unwrap(b)))
}
