package newtype

import "golang.org/x/exp/constraints"

// Integer permits any integer type. Remainder, bitwise and shift forwards
// require it.
type Integer = constraints.Integer

// Ordered permits any type supporting <. Ordering forwards require it.
type Ordered = constraints.Ordered

// Numeric permits any type supporting -, * and /.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Addable permits any type supporting +. This is Numeric plus strings, which
// concatenate.
type Addable interface {
	Numeric | ~string
}

// Cloneable constrains inner types that duplicate themselves explicitly,
// such as growable collections where plain assignment would share storage.
type Cloneable[T any] interface {
	Clone() T
}
