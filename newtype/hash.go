package newtype

import "hash/maphash"

// Hash returns the maphash sum of the contained value under seed.
// Equal values hash equal under the same seed, so wrappers behave as map
// keys exactly like their inner values.
func Hash[W Wrapper[T], T comparable](seed maphash.Seed, w W) uint64 {
	return maphash.Comparable(seed, unwrap(w))
}

// WriteHash feeds the contained value into a caller-supplied accumulator.
func WriteHash[W Wrapper[T], T comparable](h *maphash.Hash, w W) {
	maphash.WriteComparable(h, unwrap(w))
}
