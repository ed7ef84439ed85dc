// SPDX-License-Identifier: MIT

package field

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Integers is the ring of a built-in signed integer type with float64
// quotients. Overflow wraps as in plain Go arithmetic.
type Integers[T constraints.Signed] struct{}

// Long is the int64 field descriptor.
type Long = Integers[int64]

var _ Field[int64, float64] = Long{}

func (Integers[T]) Zero() T           { return 0 }
func (Integers[T]) One() T            { return 1 }
func (Integers[T]) Add(a, b T) T      { return a + b }
func (Integers[T]) Sub(a, b T) T      { return a - b }
func (Integers[T]) Mul(a, b T) T      { return a * b }
func (Integers[T]) Neg(e T) T         { return -e }
func (Integers[T]) Equal(a, b T) bool { return a == b }

// Div returns float64(a) / float64(b).
func (Integers[T]) Div(a, b T) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("Integers.Div(%d, 0): %w", a, ErrDivisionByZero)
	}
	return float64(a) / float64(b), nil
}
