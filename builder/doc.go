// SPDX-License-Identifier: MIT

// Package builder provides incremental, 1-indexed builders that materialize
// immutable vector.Vector and matrix.Matrix values.
//
// The package offers the following key components:
//
//   - Indexed[E]: the generic indexed-element builder.
//     – fixed capacity (Size) chosen at construction, Size >= MinSize;
//     – sparse index→element mapping with explicit presence (Get returns ok);
//     – an absent-element generator (index → E) used by Fill.
//   - VectorBuilder[E, Q]: Indexed[E] bound to a field.Field[E, Q]; Build fills
//     gaps and returns a *vector.Vector[E, Q].
//     – NewGaussianVectorBuilder:    Gaussian elements, zero taken from the
//     injected field.Gaussian descriptor.
//     – NewBigGaussianVectorBuilder: BigGaussian elements, zero hard-coded.
//     – NewLongVectorBuilder / LongVector, NewBigIntegerVectorBuilder.
//   - MatrixBuilder[E, Q]: the same contract over (row, col) cells, stored in
//     an Indexed[E] with the row-major offset (row-1)*cols + col.
//   - Functional options (options.go): WithAbsent, WithAbsentCell, WithLogger.
//
// Lifecycle:
//
//	b, err := builder.NewGaussianVectorBuilder(3)
//	_ = b.Set(2, number.NewGaussian(1, 1))
//	v, err := b.Build() // [0+0i 1+1i 0+0i]
//
// Build may be called any number of times and Set remains legal afterwards;
// each Build reflects the mapping at that moment. Build writes the filled
// defaults back into the mapping, so Get reports them as present afterwards.
//
// Guarantees:
//
//   - Every validation failure satisfies errors.Is(err, ErrInvalidArgument).
//   - A failed Set leaves the mapping untouched.
//   - Option constructors panic on nil (programmer error); builders never panic
//     on caller data.
//   - Builders are single-owner values and are NOT safe for concurrent use.
//     The vectors and matrices they produce are immutable and may be shared.
package builder
