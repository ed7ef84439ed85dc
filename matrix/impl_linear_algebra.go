// SPDX-License-Identifier: MIT
// Package matrix - linear algebra kernels over a generic field.
//
// Determinism:
//   - Fixed i→j→k loop orders; results depend only on inputs.
//
// Complexity:
//   - Add/Sub/ScalarMultiply/Negate/Transpose: O(r*c).
//   - Mul: O(r*n*c). MulVec: O(r*c). Trace: O(n).
//   - Determinant: O(n) for triangular input, O(n!) cofactor expansion otherwise.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

// Add returns a + b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[E, Q]) Add(b *Matrix[E, Q]) (*Matrix[E, Q], error) {
	return m.zipWith("Add", b, m.f.Add)
}

// Sub returns a - b element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Matrix[E, Q]) Sub(b *Matrix[E, Q]) (*Matrix[E, Q], error) {
	return m.zipWith("Sub", b, m.f.Sub)
}

// Mul returns the matrix product m × b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (m.Cols != b.Rows).
func (m *Matrix[E, Q]) Mul(b *Matrix[E, Q]) (*Matrix[E, Q], error) {
	if err := ValidateMulShape(m, b); err != nil {
		return nil, matrixErrorf("Mul", err)
	}
	out := make([]E, m.r*b.c)
	var i, j, k int
	for i = 0; i < m.r; i++ {
		for j = 0; j < b.c; j++ {
			acc := m.f.Zero()
			for k = 0; k < m.c; k++ {
				acc = m.f.Add(acc, m.f.Mul(m.data[i*m.c+k], b.data[k*b.c+j]))
			}
			out[i*b.c+j] = acc
		}
	}

	return &Matrix[E, Q]{f: m.f, r: m.r, c: b.c, data: out}, nil
}

// MulVec returns y = m·x with len(y) == Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch (x.Size() != Cols()).
func (m *Matrix[E, Q]) MulVec(x *vector.Vector[E, Q]) (*vector.Vector[E, Q], error) {
	if err := ValidateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf("MulVec", err)
	}
	xs := x.Elements()
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		acc := m.f.Zero()
		for j := 0; j < m.c; j++ {
			acc = m.f.Add(acc, m.f.Mul(m.data[i*m.c+j], xs[j]))
		}
		out[i] = acc
	}

	return vector.Of(m.f, out...)
}

// ScalarMultiply returns s·m.
func (m *Matrix[E, Q]) ScalarMultiply(s E) *Matrix[E, Q] {
	out := make([]E, len(m.data))
	for k, e := range m.data {
		out[k] = m.f.Mul(s, e)
	}
	return &Matrix[E, Q]{f: m.f, r: m.r, c: m.c, data: out}
}

// Negate returns -m, computed as (-1)·m.
func (m *Matrix[E, Q]) Negate() *Matrix[E, Q] {
	return m.ScalarMultiply(m.f.Neg(m.f.One()))
}

// Transpose returns mᵀ.
func (m *Matrix[E, Q]) Transpose() *Matrix[E, Q] {
	out := make([]E, len(m.data))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return &Matrix[E, Q]{f: m.f, r: m.c, c: m.r, data: out}
}

// Trace returns the sum of the diagonal.
// Errors: ErrNonSquare.
func (m *Matrix[E, Q]) Trace() (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf("Trace", err)
	}
	acc := m.f.Zero()
	for _, d := range m.DiagonalElements() {
		acc = m.f.Add(acc, d)
	}
	return acc, nil
}

// Minor returns m with row i and column j removed.
// Errors: ErrOutOfRange for bad indices, ErrBadShape when m has a single
// row or column (the result would be empty).
func (m *Matrix[E, Q]) Minor(row, col int) (*Matrix[E, Q], error) {
	if _, err := m.indexOf(row, col); err != nil {
		return nil, cellErrorf(ctxMinor, row, col, err)
	}
	if m.r < 2 || m.c < 2 {
		return nil, cellErrorf(ctxMinor, row, col, ErrBadShape)
	}

	return m.minor(row, col), nil
}

// minor is Minor without validation.
func (m *Matrix[E, Q]) minor(row, col int) *Matrix[E, Q] {
	out := make([]E, 0, (m.r-1)*(m.c-1))
	for i := 1; i <= m.r; i++ {
		if i == row {
			continue
		}
		for j := 1; j <= m.c; j++ {
			if j == col {
				continue
			}
			out = append(out, m.data[(i-1)*m.c+(j-1)])
		}
	}
	return &Matrix[E, Q]{f: m.f, r: m.r - 1, c: m.c - 1, data: out}
}

// Determinant returns det(m).
// MAIN DESCRIPTION:
//   - Triangular input: product of the diagonal.
//   - Otherwise: cofactor (Laplace) expansion along the first row. Only ring
//     operations are used, so the result is exact for integral element types.
//
// Errors: ErrNonSquare.
func (m *Matrix[E, Q]) Determinant() (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf("Determinant", err)
	}
	return m.det(), nil
}

func (m *Matrix[E, Q]) det() E {
	if m.IsTriangular() {
		acc := m.f.One()
		for _, d := range m.DiagonalElements() {
			acc = m.f.Mul(acc, d)
		}
		return acc
	}
	// n >= 2 here: every 1×1 matrix is triangular.
	acc := m.f.Zero()
	for j := 1; j <= m.c; j++ {
		a := m.data[j-1]
		if m.f.Equal(a, m.f.Zero()) {
			continue
		}
		term := m.f.Mul(a, m.minor(1, j).det())
		if j%2 == 0 {
			term = m.f.Neg(term)
		}
		acc = m.f.Add(acc, term)
	}
	return acc
}

// zipWith applies op cell-wise after a shape check.
func (m *Matrix[E, Q]) zipWith(method string, b *Matrix[E, Q], op func(x, y E) E) (*Matrix[E, Q], error) {
	if err := ValidateSameShape(m, b); err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", method, err)
	}
	out := make([]E, len(m.data))
	for k := range m.data {
		out[k] = op(m.data[k], b.data[k])
	}
	return &Matrix[E, Q]{f: m.f, r: m.r, c: m.c, data: out}, nil
}
