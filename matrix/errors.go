// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (wrapped with call-site context via %w)
// and tests check them with errors.Is. No kernel panics on caller data.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested shape is invalid (rows<1 or cols<1)
	// or when the data length does not match rows*cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside 1..n.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Add on different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrIncomplete signals that entries do not cover every (row, col) cell
	// exactly once.
	ErrIncomplete = errors.New("matrix: entries incomplete or duplicated")

	// ErrNilMatrix indicates a nil *Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilField indicates a nil field descriptor.
	ErrNilField = errors.New("matrix: nil field")
)

// matrixErrorf tags err with the operation name.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}

// cellErrorf tags err with the operation name and the cell coordinates.
func cellErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
