// Duplication forwards.
//
// Plain assignment already duplicates any wrapper whose inner type copies
// bit-for-bit. These two cover inner types that need an explicit deep copy.

package newtype

// Clone duplicates the wrapper by calling the inner value's own Clone.
//
// The result is equal to w but independent in storage, to exactly the
// degree the inner Clone guarantees.
func Clone[W Wrapper[T], T Cloneable[T]](w W) W {
	return rewrap[W](unwrap(w).Clone())
}

// CloneFunc duplicates the wrapper using the supplied duplicator.
//
// Use it for inner types without a Clone method, e.g. slices.Clone for a
// slice inner type.
func CloneFunc[W Wrapper[T], T any](w W, clone func(T) T) W {
	return rewrap[W](clone(unwrap(w)))
}
