package newtype_test

import (
	"testing"
	"testing/quick"

	"github.com/smansour/newtype/newtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Binary forwards: wrapping commutes with the operation.
func TestBinaryOps_DelegationIdentity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		op   func(Count, Count) Count
		raw  func(int, int) int
	}{
		{"add", newtype.Add[Count, int], func(a, b int) int { return a + b }},
		{"sub", newtype.Sub[Count, int], func(a, b int) int { return a - b }},
		{"mul", newtype.Mul[Count, int], func(a, b int) int { return a * b }},
		{"div", newtype.Div[Count, int], func(a, b int) int { return a / b }},
		{"mod", newtype.Mod[Count, int], func(a, b int) int { return a % b }},
		{"and", newtype.And[Count, int], func(a, b int) int { return a & b }},
		{"or", newtype.Or[Count, int], func(a, b int) int { return a | b }},
		{"xor", newtype.Xor[Count, int], func(a, b int) int { return a ^ b }},
		{"andnot", newtype.AndNot[Count, int], func(a, b int) int { return a &^ b }},
		{"shl", newtype.Shl[Count, int], func(a, b int) int { return a << b }},
		{"shr", newtype.Shr[Count, int], func(a, b int) int { return a >> b }},
	}

	pairs := [][2]int{{100, 7}, {-38, 3}, {0b1011, 0b0110}, {1 << 20, 5}}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for _, p := range pairs {
				a, b := p[0], p[1]
				got := tc.op(newtype.As[Count](a), newtype.As[Count](b))
				assert.Equal(t, newtype.As[Count](tc.raw(a, b)), got, "a=%d b=%d", a, b)
			}
		})
	}
}

// Unary forwards.
func TestUnaryOps_DelegationIdentity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, newtype.As[Count](-42), newtype.Neg(newtype.As[Count](42)))
	assert.Equal(t, newtype.As[Count](42), newtype.Neg(newtype.As[Count](-42)))
	assert.Equal(t, newtype.As[Celsius](-1.5), newtype.Neg(newtype.As[Celsius](1.5)))

	assert.Equal(t, newtype.As[Count](^0b1010), newtype.Not(newtype.As[Count](0b1010)))
}

// String addition forwards to concatenation.
func TestAdd_StringConcatenation(t *testing.T) {
	t.Parallel()

	got := newtype.Add(newtype.As[Word]("new"), newtype.As[Word]("type"))
	assert.Equal(t, newtype.As[Word]("newtype"), got)
}

// Compound assignment leaves the same value behind as the binary form.
func TestAssignOps_MatchBinaryForms(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		assign func(*Count, Count)
		binary func(Count, Count) Count
	}{
		{"add", newtype.AddAssign[Count, int], newtype.Add[Count, int]},
		{"sub", newtype.SubAssign[Count, int], newtype.Sub[Count, int]},
		{"mul", newtype.MulAssign[Count, int], newtype.Mul[Count, int]},
		{"div", newtype.DivAssign[Count, int], newtype.Div[Count, int]},
		{"mod", newtype.ModAssign[Count, int], newtype.Mod[Count, int]},
		{"and", newtype.AndAssign[Count, int], newtype.And[Count, int]},
		{"or", newtype.OrAssign[Count, int], newtype.Or[Count, int]},
		{"xor", newtype.XorAssign[Count, int], newtype.Xor[Count, int]},
		{"andnot", newtype.AndNotAssign[Count, int], newtype.AndNot[Count, int]},
		{"shl", newtype.ShlAssign[Count, int], newtype.Shl[Count, int]},
		{"shr", newtype.ShrAssign[Count, int], newtype.Shr[Count, int]},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := newtype.As[Count](0b1101_0110)
			b := newtype.As[Count](3)

			want := tc.binary(a, b)
			tc.assign(&a, b)
			assert.Equal(t, want, a)
		})
	}
}

func TestAddAssign_String(t *testing.T) {
	t.Parallel()

	w := newtype.As[Word]("new")
	newtype.AddAssign(&w, newtype.As[Word]("type"))
	assert.Equal(t, "newtype", w.Value)
}

// Division forwards the inner panic untouched.
func TestDiv_ByZeroPanicsLikeInner(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		_ = newtype.Div(newtype.As[Count](1), newtype.As[Count](0))
	})
	require.Panics(t, func() {
		_ = newtype.Mod(newtype.As[Count](1), newtype.As[Count](0))
	})
}

// Randomized delegation identities.
func TestArith_QuickDelegation(t *testing.T) {
	t.Parallel()

	add := func(a, b int) bool {
		return newtype.Add(newtype.As[Count](a), newtype.As[Count](b)) == newtype.As[Count](a+b)
	}
	require.NoError(t, quick.Check(add, nil))

	sub := func(a, b int) bool {
		return newtype.Sub(newtype.As[Count](a), newtype.As[Count](b)) == newtype.As[Count](a-b)
	}
	require.NoError(t, quick.Check(sub, nil))

	mul := func(a, b int) bool {
		return newtype.Mul(newtype.As[Count](a), newtype.As[Count](b)) == newtype.As[Count](a*b)
	}
	require.NoError(t, quick.Check(mul, nil))

	div := func(a, b int) bool {
		if b == 0 {
			return true
		}
		return newtype.Div(newtype.As[Count](a), newtype.As[Count](b)) == newtype.As[Count](a/b)
	}
	require.NoError(t, quick.Check(div, nil))

	xor := func(a, b int) bool {
		return newtype.Xor(newtype.As[Count](a), newtype.As[Count](b)) == newtype.As[Count](a^b)
	}
	require.NoError(t, quick.Check(xor, nil))

	// Compound form agrees with the binary form for any inputs.
	addAssign := func(a, b int) bool {
		w := newtype.As[Count](a)
		newtype.AddAssign(&w, newtype.As[Count](b))
		return w == newtype.Add(newtype.As[Count](a), newtype.As[Count](b))
	}
	require.NoError(t, quick.Check(addAssign, nil))
}
