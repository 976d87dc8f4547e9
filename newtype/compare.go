// Equality and ordering forwards.

package newtype

import "cmp"

// Equal reports whether a and b hold equal values.
//
// Two wrappers of the same type are equal iff their contained values are;
// the wrapper contributes nothing to identity.
func Equal[W Wrapper[T], T comparable](a, b W) bool {
	return unwrap(a) == unwrap(b)
}

// EqualFunc reports whether a and b hold equal values under eq.
//
// Use it for inner types outside comparable, such as slices.
func EqualFunc[W Wrapper[T], T any](a, b W, eq func(T, T) bool) bool {
	return eq(unwrap(a), unwrap(b))
}

// Less reports whether a's value orders before b's.
func Less[W Wrapper[T], T Ordered](a, b W) bool {
	return unwrap(a) < unwrap(b)
}

// Compare returns -1, 0 or +1 comparing the contained values.
//
// NaN handling follows cmp.Compare: a NaN orders before any non-NaN.
func Compare[W Wrapper[T], T Ordered](a, b W) int {
	return cmp.Compare(unwrap(a), unwrap(b))
}

// CompareFunc returns compare applied to the contained values.
func CompareFunc[W Wrapper[T], T any](a, b W, compare func(T, T) int) int {
	return compare(unwrap(a), unwrap(b))
}

// Min returns the wrapper holding the smaller value. On a tie it returns a.
func Min[W Wrapper[T], T Ordered](a, b W) W {
	if Less(b, a) {
		return b
	}
	return a
}

// Max returns the wrapper holding the larger value. On a tie it returns a.
func Max[W Wrapper[T], T Ordered](a, b W) W {
	if Less(a, b) {
		return b
	}
	return a
}

// Clamp limits w to the inclusive range [lo, hi].
func Clamp[W Wrapper[T], T Ordered](w, lo, hi W) W {
	if Less(w, lo) {
		return lo
	}
	if Less(hi, w) {
		return hi
	}
	return w
}
