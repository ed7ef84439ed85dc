// SPDX-License-Identifier: MIT

package vector

// ValidateSameSize ensures u and v have equal sizes.
// Returns a wrapped ErrDimensionMismatch otherwise.
func ValidateSameSize[E, Q any](u, v *Vector[E, Q]) error {
	if u == nil || v == nil {
		return vectorErrorf("ValidateSameSize", ErrEmpty)
	}
	if u.Size() != v.Size() {
		return vectorErrorf("ValidateSameSize", ErrDimensionMismatch)
	}
	return nil
}

// Add returns v + w element-wise.
func (v *Vector[E, Q]) Add(w *Vector[E, Q]) (*Vector[E, Q], error) {
	return v.zipWith("Add", w, v.f.Add)
}

// Sub returns v - w element-wise.
func (v *Vector[E, Q]) Sub(w *Vector[E, Q]) (*Vector[E, Q], error) {
	return v.zipWith("Sub", w, v.f.Sub)
}

// Dot returns Σ v[i]·w[i].
func (v *Vector[E, Q]) Dot(w *Vector[E, Q]) (E, error) {
	if err := ValidateSameSize(v, w); err != nil {
		var zero E
		return zero, vectorErrorf("Dot", err)
	}
	acc := v.f.Zero()
	for i := range v.data {
		acc = v.f.Add(acc, v.f.Mul(v.data[i], w.data[i]))
	}
	return acc, nil
}

// ScalarMultiply returns s·v.
func (v *Vector[E, Q]) ScalarMultiply(s E) *Vector[E, Q] {
	out := make([]E, len(v.data))
	for i, e := range v.data {
		out[i] = v.f.Mul(s, e)
	}
	return &Vector[E, Q]{f: v.f, data: out}
}

// Negate returns -v, computed as (-1)·v.
func (v *Vector[E, Q]) Negate() *Vector[E, Q] {
	return v.ScalarMultiply(v.f.Neg(v.f.One()))
}

// OrthogonalTo reports whether v·w == 0.
func (v *Vector[E, Q]) OrthogonalTo(w *Vector[E, Q]) (bool, error) {
	d, err := v.Dot(w)
	if err != nil {
		return false, vectorErrorf("OrthogonalTo", err)
	}
	return v.f.Equal(d, v.f.Zero()), nil
}

// zipWith applies op pairwise after a size check.
func (v *Vector[E, Q]) zipWith(method string, w *Vector[E, Q], op func(a, b E) E) (*Vector[E, Q], error) {
	if err := ValidateSameSize(v, w); err != nil {
		return nil, vectorErrorf(method, err)
	}
	out := make([]E, len(v.data))
	for i := range v.data {
		out[i] = op(v.data[i], w.data[i])
	}
	return &Vector[E, Q]{f: v.f, data: out}, nil
}
