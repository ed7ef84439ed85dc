// SPDX-License-Identifier: MIT

// Package matrix implements immutable, 1-indexed dense matrices over any
// field.Field[E, Q].
//
// The matrix package provides:
//
//   - Matrix[E, Q]: row-major storage with checked accessors (At/Entry/Row/
//     Column) that return sentinel errors instead of panicking.
//   - Linear algebra: Add, Sub, Mul, MulVec, ScalarMultiply, Negate,
//     Transpose, Trace, Minor and Determinant.
//   - Structural predicates: square, triangular, diagonal, identity,
//     symmetric and skew-symmetric.
//   - Validators (validators.go) shared by all kernels.
//
// Indices follow the mathematical convention: rows 1..Rows(), columns
// 1..Cols(). The storage offset of (i, j) is (i-1)*Cols() + (j-1).
//
// Matrices are best built with builder.MatrixBuilder, which fills unset
// cells from the field's zero.
package matrix
