// SPDX-License-Identifier: MIT

package field

// Zeroer exposes the additive identity of an element type.
type Zeroer[E any] interface {
	// Zero returns the additive identity. Each call may return a fresh value.
	Zero() E
}

// Field describes arithmetic over E with quotients in Q.
//
// Implementations MUST NOT mutate their arguments and MUST return values
// that do not alias them.
type Field[E, Q any] interface {
	Zeroer[E]

	// One returns the multiplicative identity.
	One() E

	// Add returns a + b.
	Add(a, b E) E

	// Sub returns a - b.
	Sub(a, b E) E

	// Mul returns a · b.
	Mul(a, b E) E

	// Div returns a / b in the quotient type. Division by zero is an error.
	Div(a, b E) (Q, error)

	// Neg returns -e.
	Neg(e E) E

	// Equal compares numerically (e.g. big.Int Cmp), not by identity.
	Equal(a, b E) bool
}

// Cloner is implemented by descriptors whose elements are mutable references,
// such as *big.Int. Containers clone elements on the way in and out.
type Cloner[E any] interface {
	// Clone returns an independent copy of e.
	Clone(e E) E
}

// Clone returns d.Clone(e) when d implements Cloner[E], and e otherwise.
func Clone[E any](d Zeroer[E], e E) E {
	if c, ok := d.(Cloner[E]); ok {
		return c.Clone(e)
	}
	return e
}
