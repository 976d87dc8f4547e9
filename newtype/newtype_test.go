package newtype_test

import (
	"slices"
	"testing"

	"github.com/smansour/newtype/newtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tagged wrappers shared across the package tests. Tags are empty structs;
// they exist only to make the aliases nominally distinct.
type (
	celsius struct{}
	Celsius = newtype.Of[celsius, float64]

	count struct{}
	Count = newtype.Of[count, int]

	word struct{}
	Word = newtype.Of[word, string]
)

// Nested pair: Outer wraps Inner wraps int.
type (
	innerTag struct{}
	Inner    = newtype.Of[innerTag, int]

	outerTag struct{}
	Outer    = newtype.Of[outerTag, Inner]
)

// labels is an inner type with reference semantics and an explicit Clone.
type labels []string

func (l labels) Clone() labels { return slices.Clone(l) }

type labelsTag struct{}
type Labels = newtype.Of[labelsTag, labels]

// As / Unwrap
func TestAsUnwrap_RoundTrip(t *testing.T) {
	t.Parallel()

	c := newtype.As[Celsius](21.5)
	assert.Equal(t, 21.5, newtype.Unwrap(c))
	assert.Equal(t, 21.5, c.Value)

	n := newtype.As[Count](42)
	assert.Equal(t, 42, newtype.Unwrap(n))

	w := newtype.As[Word]("meters")
	assert.Equal(t, "meters", newtype.Unwrap(w))
}

// Of accessors
func TestOf_Accessors(t *testing.T) {
	t.Parallel()

	c := newtype.As[Celsius](18.0)

	assert.Equal(t, 18.0, c.Get())

	// Ref aliases the field, so writes through it are visible on the wrapper.
	*c.Ref() = 19.0
	assert.Equal(t, 19.0, c.Value)

	c.Set(20.0)
	assert.Equal(t, 20.0, c.Get())

	assert.Equal(t, "20", c.String())
}

// Equal / EqualFunc
func TestEqual_DelegatesToInnerEquality(t *testing.T) {
	t.Parallel()

	a := newtype.As[Count](7)
	b := newtype.As[Count](7)
	c := newtype.As[Count](8)

	// Reflexive, and equal iff the inner values are.
	assert.True(t, newtype.Equal(a, a))
	assert.True(t, newtype.Equal(a, b))
	assert.False(t, newtype.Equal(a, c))

	// The wrapper itself stays comparable, so it works as a map key.
	seen := map[Count]string{a: "seven"}
	assert.Equal(t, "seven", seen[b])
}

func TestEqualFunc_NonComparableInner(t *testing.T) {
	t.Parallel()

	a := newtype.As[Labels](labels{"x", "y"})
	b := newtype.As[Labels](labels{"x", "y"})
	c := newtype.As[Labels](labels{"x"})

	eq := func(l, r labels) bool { return slices.Equal(l, r) }

	assert.True(t, newtype.EqualFunc(a, b, eq))
	assert.False(t, newtype.EqualFunc(a, c, eq))
}

// Less / Compare / CompareFunc
func TestOrdering_DelegatesToInnerOrder(t *testing.T) {
	t.Parallel()

	lo := newtype.As[Celsius](-4.5)
	hi := newtype.As[Celsius](30.0)

	assert.True(t, newtype.Less(lo, hi))
	assert.False(t, newtype.Less(hi, lo))
	assert.False(t, newtype.Less(lo, lo))

	assert.Equal(t, -1, newtype.Compare(lo, hi))
	assert.Equal(t, 0, newtype.Compare(lo, lo))
	assert.Equal(t, 1, newtype.Compare(hi, lo))

	rev := func(a, b float64) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		default:
			return 0
		}
	}
	assert.Equal(t, 1, newtype.CompareFunc(lo, hi, rev))
}

func TestMinMaxClamp(t *testing.T) {
	t.Parallel()

	lo := newtype.As[Count](3)
	hi := newtype.As[Count](9)

	assert.Equal(t, lo, newtype.Min(lo, hi))
	assert.Equal(t, lo, newtype.Min(hi, lo))
	assert.Equal(t, hi, newtype.Max(lo, hi))
	assert.Equal(t, hi, newtype.Max(hi, lo))

	assert.Equal(t, lo, newtype.Clamp(newtype.As[Count](1), lo, hi))
	assert.Equal(t, hi, newtype.Clamp(newtype.As[Count](11), lo, hi))
	mid := newtype.As[Count](5)
	assert.Equal(t, mid, newtype.Clamp(mid, lo, hi))
}

// Clone / CloneFunc
func TestClone_EqualButIndependentStorage(t *testing.T) {
	t.Parallel()

	orig := newtype.As[Labels](labels{"a", "b"})
	dup := newtype.Clone(orig)

	require.Equal(t, orig.Value, dup.Value)

	// Mutating the original must not show through the clone.
	orig.Value[0] = "changed"
	assert.Equal(t, labels{"changed", "b"}, orig.Value)
	assert.Equal(t, labels{"a", "b"}, dup.Value)
}

func TestCloneFunc_UsesSuppliedDuplicator(t *testing.T) {
	t.Parallel()

	orig := newtype.As[Labels](labels{"a"})
	dup := newtype.CloneFunc(orig, func(l labels) labels { return slices.Clone(l) })

	require.Equal(t, orig.Value, dup.Value)
	orig.Value[0] = "changed"
	assert.Equal(t, labels{"a"}, dup.Value)
}

// Zero
func TestZero_HoldsInnerZeroValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, newtype.Zero[Celsius]().Value)
	assert.Equal(t, 0, newtype.Zero[Count]().Value)
	assert.Equal(t, "", newtype.Zero[Word]().Value)
	assert.Nil(t, newtype.Zero[Labels]().Value)
}

// Map / Combine
func TestMap_LiftsUnaryOperation(t *testing.T) {
	t.Parallel()

	c := newtype.As[Count](21)
	doubled := newtype.Map(c, func(n int) int { return n * 2 })
	assert.Equal(t, 42, doubled.Value)
}

func TestCombine_LiftsBinaryOperation(t *testing.T) {
	t.Parallel()

	a := newtype.As[Count](40)
	b := newtype.As[Count](2)
	sum := newtype.Combine(a, b, func(x, y int) int { return x + y })
	assert.Equal(t, 42, sum.Value)
}

// Operations reach through nesting one Combine per level: the outer level
// never needs to know how deep the scalar lies.
func TestCombine_NestedWrappersAdd(t *testing.T) {
	t.Parallel()

	five := newtype.As[Outer](newtype.As[Inner](5))
	ten := newtype.Combine(five, five, newtype.Add)

	assert.Equal(t, newtype.As[Outer](newtype.As[Inner](10)), ten)
	assert.Equal(t, 10, ten.Value.Value)
}
