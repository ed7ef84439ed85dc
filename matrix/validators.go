// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Note:
//  - Each validator checks nil first, then shape.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil[E, Q any](m *Matrix[E, Q]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape[E, Q any](a, b *Matrix[E, Q]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare[E, Q any](m *Matrix[E, Q]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateMulShape ensures a×b is defined (a.Cols == b.Rows).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulShape[E, Q any](a, b *Matrix[E, Q]) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulShape", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}
	return nil
}

// ValidateVecLen ensures x has exactly n elements.
// Errors: ErrNilMatrix for a nil vector (reused "nil argument" sentinel),
// ErrDimensionMismatch on length mismatch.
// Complexity: O(1).
func ValidateVecLen[E, Q any](x *vector.Vector[E, Q], n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if x.Size() != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	return nil
}
