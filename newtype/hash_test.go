package newtype_test

import (
	"hash/maphash"
	"testing"

	"github.com/smansour/newtype/newtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Equal values hash equal under the same seed; the wrapper adds nothing.
func TestHash_EqualValuesEqualSums(t *testing.T) {
	t.Parallel()

	seed := maphash.MakeSeed()

	a := newtype.As[Count](1234)
	b := newtype.As[Count](1234)
	c := newtype.As[Count](4321)

	assert.Equal(t, newtype.Hash(seed, a), newtype.Hash(seed, b))
	assert.NotEqual(t, newtype.Hash(seed, a), newtype.Hash(seed, c))

	// The sum is the inner value's sum.
	assert.Equal(t, maphash.Comparable(seed, 1234), newtype.Hash(seed, a))
}

func TestWriteHash_FeedsAccumulator(t *testing.T) {
	t.Parallel()

	seed := maphash.MakeSeed()

	sum := func(values ...Count) uint64 {
		var h maphash.Hash
		h.SetSeed(seed)
		for _, v := range values {
			newtype.WriteHash(&h, v)
		}
		return h.Sum64()
	}

	a := newtype.As[Count](1)
	b := newtype.As[Count](2)

	require.Equal(t, sum(a, b), sum(a, b))
	assert.NotEqual(t, sum(a, b), sum(b, a))
}
