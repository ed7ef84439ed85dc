// SPDX-License-Identifier: MIT

// Package number provides the exact scalar types used by lvmath vectors and
// matrices: Gaussian integers over int64 and over *big.Int, Gaussian
// rationals (BigComplex) over *big.Rat, and closed rational ranges.
//
// Every type is an immutable value. Operations return fresh values and
// never write into their operands, so values may be shared freely across
// vectors, matrices and goroutines. The zero value of each type is the
// additive identity.
//
// Complexity:
//   - Gaussian: O(1) per operation.
//   - BigGaussian / BigComplex: proportional to the bit length of the parts.
package number
