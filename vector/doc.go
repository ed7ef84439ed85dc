// SPDX-License-Identifier: MIT

// Package vector implements immutable, 1-indexed vectors over any
// field.Field[E, Q].
//
// What & Why:
//
//	A Vector is the materialized output of the builder package: a dense
//	sequence of exactly Size() elements addressed by indices 1..Size().
//	Arithmetic is delegated to the field descriptor the vector was created
//	with, so one implementation serves int64, *big.Int, Gaussian and
//	Gaussian-rational elements alike.
//
// Contracts:
//   - Construction requires a non-empty index→element mapping whose keys are
//     exactly {1, …, n}; anything else fails with ErrEmpty or ErrIndices.
//   - Accessors return errors, never panic, on out-of-range indices.
//   - Binary operations require equal sizes (ErrDimensionMismatch).
//   - Vectors are never mutated after construction; Elements/Entries return
//     fresh slices.
//
// Complexity:
//
//	At/Entry O(1); Add/Sub/Dot/ScalarMultiply/Negate/EqualByComparing O(n).
package vector
