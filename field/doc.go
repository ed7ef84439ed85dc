// SPDX-License-Identifier: MIT

// Package field describes the algebraic structures that lvmath vectors and
// matrices compute over.
//
// A Field[E, Q] bundles the ring operations of an element type E with a
// division that lands in the quotient type Q (the field of fractions of E):
//
//	Long        int64        → float64
//	BigInteger  *big.Int     → decimal.Decimal
//	Gaussian    Gaussian     → complex128
//	BigGaussian BigGaussian  → BigComplex
//	BigComplex  BigComplex   → BigComplex
//
// All descriptors are stateless zero-size values. They are passed to vector,
// matrix and builder constructors as dependencies, so no package-level
// singleton is consulted at run time.
//
// Zeroer is the narrow contract builders rely on to fill unset indices.
package field
