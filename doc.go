// Package lvmath is a small library of exact linear algebra over
// pluggable number systems: int64, *big.Int, Gaussian integers and
// Gaussian rationals.
//
// Everything is 1-indexed and immutable once built:
//
//	number/  — Gaussian, BigGaussian, BigComplex and RatRange value types
//	field/   — Field[E, Q] descriptors (zero, one, add, sub, mul, div, neg, equal)
//	vector/  — Vector[E, Q]: dense vectors with dot product, orthogonality, entries
//	matrix/  — Matrix[E, Q]: entries, predicates, transpose, minor, trace, determinant
//	builder/ — fixed-size builders that collect elements by index, fill the
//	           gaps with a default and produce vectors or matrices
//
// Quick example:
//
//	b, _ := builder.NewGaussianVectorBuilder(3)
//	_ = b.Set(2, number.NewGaussian(1, 1))
//	v, _ := b.Build() // [0+0i 1+1i 0+0i]
//
//	go get github.com/katalvlaran/lvmath
package lvmath
