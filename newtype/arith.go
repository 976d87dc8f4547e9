// Arithmetic, bitwise and shift forwards.
//
// Binary forms take both operands wrapped and return a wrapped result, so
// wrapping commutes with every operation: Add(As[W](a), As[W](b)) equals
// As[W](a + b). The *Assign forms are the in-place battery; generic code
// cannot address the field inside an arbitrary Wrapper, so each one reads
// the target by value, applies the binary form, and writes it back.

package newtype

// Add returns the wrapper of a's value plus b's. For strings this is
// concatenation.
func Add[W Wrapper[T], T Addable](a, b W) W {
	return rewrap[W](unwrap(a) + unwrap(b))
}

// Sub returns the wrapper of a's value minus b's.
func Sub[W Wrapper[T], T Numeric](a, b W) W {
	return rewrap[W](unwrap(a) - unwrap(b))
}

// Mul returns the wrapper of a's value times b's.
func Mul[W Wrapper[T], T Numeric](a, b W) W {
	return rewrap[W](unwrap(a) * unwrap(b))
}

// Div returns the wrapper of a's value divided by b's.
//
// Division by a zero integer panics exactly as it does unwrapped.
func Div[W Wrapper[T], T Numeric](a, b W) W {
	return rewrap[W](unwrap(a) / unwrap(b))
}

// Mod returns the wrapper of the remainder of a's value by b's.
func Mod[W Wrapper[T], T Integer](a, b W) W {
	return rewrap[W](unwrap(a) % unwrap(b))
}

// And returns the wrapper of the bitwise AND of the two values.
func And[W Wrapper[T], T Integer](a, b W) W {
	return rewrap[W](unwrap(a) & unwrap(b))
}

// Or returns the wrapper of the bitwise OR of the two values.
func Or[W Wrapper[T], T Integer](a, b W) W {
	return rewrap[W](unwrap(a) | unwrap(b))
}

// Xor returns the wrapper of the bitwise XOR of the two values.
func Xor[W Wrapper[T], T Integer](a, b W) W {
	return rewrap[W](unwrap(a) ^ unwrap(b))
}

// AndNot returns the wrapper of the bit clear (AND NOT) of the two values.
func AndNot[W Wrapper[T], T Integer](a, b W) W {
	return rewrap[W](unwrap(a) &^ unwrap(b))
}

// Shl returns the wrapper of w's value shifted left by n's value.
//
// A negative shift count panics exactly as it does unwrapped.
func Shl[W Wrapper[T], T Integer](w, n W) W {
	return rewrap[W](unwrap(w) << unwrap(n))
}

// Shr returns the wrapper of w's value shifted right by n's value.
func Shr[W Wrapper[T], T Integer](w, n W) W {
	return rewrap[W](unwrap(w) >> unwrap(n))
}

// Neg returns the wrapper of the negated value.
func Neg[W Wrapper[T], T Numeric](w W) W {
	return rewrap[W](-unwrap(w))
}

// Not returns the wrapper of the bitwise complement of the value.
func Not[W Wrapper[T], T Integer](w W) W {
	return rewrap[W](^unwrap(w))
}

// AddAssign adds v's value into w in place.
func AddAssign[W Wrapper[T], T Addable](w *W, v W) {
	*w = Add(*w, v)
}

// SubAssign subtracts v's value from w in place.
func SubAssign[W Wrapper[T], T Numeric](w *W, v W) {
	*w = Sub(*w, v)
}

// MulAssign multiplies w by v's value in place.
func MulAssign[W Wrapper[T], T Numeric](w *W, v W) {
	*w = Mul(*w, v)
}

// DivAssign divides w by v's value in place.
func DivAssign[W Wrapper[T], T Numeric](w *W, v W) {
	*w = Div(*w, v)
}

// ModAssign reduces w to its remainder by v's value in place.
func ModAssign[W Wrapper[T], T Integer](w *W, v W) {
	*w = Mod(*w, v)
}

// AndAssign ANDs v's value into w in place.
func AndAssign[W Wrapper[T], T Integer](w *W, v W) {
	*w = And(*w, v)
}

// OrAssign ORs v's value into w in place.
func OrAssign[W Wrapper[T], T Integer](w *W, v W) {
	*w = Or(*w, v)
}

// XorAssign XORs v's value into w in place.
func XorAssign[W Wrapper[T], T Integer](w *W, v W) {
	*w = Xor(*w, v)
}

// AndNotAssign bit-clears v's value from w in place.
func AndNotAssign[W Wrapper[T], T Integer](w *W, v W) {
	*w = AndNot(*w, v)
}

// ShlAssign shifts w left by n's value in place.
func ShlAssign[W Wrapper[T], T Integer](w *W, n W) {
	*w = Shl(*w, n)
}

// ShrAssign shifts w right by n's value in place.
func ShrAssign[W Wrapper[T], T Integer](w *W, n W) {
	*w = Shr(*w, n)
}
