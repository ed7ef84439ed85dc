// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when a vector would have no elements.
	ErrEmpty = errors.New("vector: no elements")

	// ErrIndices is returned when the mapping keys are not exactly 1..n.
	ErrIndices = errors.New("vector: indices must be exactly 1..n")

	// ErrOutOfRange indicates an index outside 1..Size().
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrDimensionMismatch indicates operands of different sizes.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")
)

// vectorErrorf attaches the method name to a sentinel.
func vectorErrorf(method string, err error) error {
	return fmt.Errorf("Vector.%s: %w", method, err)
}
