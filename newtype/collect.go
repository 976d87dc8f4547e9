// Sequence-construction forwards.

package newtype

import (
	"iter"
	"slices"
)

// Collect builds a wrapper directly from a sequence of elements by
// delegating to the inner type's own sequence constructor.
//
// build is that constructor: maps.Collect-style helpers, a set's FromSeq,
// or any func(iter.Seq[E]) T. The wrapper type must be named:
//
//	ids := newtype.Collect[IDSet](slices.Values(raw), FromSeq)
func Collect[W Wrapper[T], T, E any](seq iter.Seq[E], build func(iter.Seq[E]) T) W {
	return rewrap[W](build(seq))
}

// CollectSlice is Collect for the common slice inner type, using
// slices.Collect as the constructor.
func CollectSlice[W Wrapper[S], S ~[]E, E any](seq iter.Seq[E]) W {
	return rewrap[W](S(slices.Collect(seq)))
}
