// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/field"
)

// ErrNilField is returned when a constructor receives a nil field descriptor.
var ErrNilField = errors.New("vector: nil field")

// Vector is an immutable, dense, 1-indexed sequence of field elements.
// When the descriptor implements field.Cloner, elements are cloned on the way
// in and out, so no caller ever holds an alias of the stored values.
//   - f is the field descriptor all arithmetic is delegated to.
//   - data holds index i at data[i-1]; len(data) >= 1.
type Vector[E, Q any] struct {
	f    field.Field[E, Q]
	data []E
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int64, float64])(nil)

// New builds a vector from a dense 1-indexed mapping.
// MAIN DESCRIPTION:
//   - The mapping is copied; later changes to it do not affect the vector.
//
// Errors:
//   - ErrNilField if f is nil.
//   - ErrEmpty if the mapping is empty.
//   - ErrIndices if its keys are not exactly {1, …, len(mapping)}.
//
// Complexity:
//   - Time O(n), Space O(n).
func New[E, Q any](f field.Field[E, Q], indexToElement map[int]E) (*Vector[E, Q], error) {
	if f == nil {
		return nil, vectorErrorf("New", ErrNilField)
	}
	n := len(indexToElement)
	if n == 0 {
		return nil, vectorErrorf("New", ErrEmpty)
	}
	data := make([]E, n)
	// A map of n keys all inside 1..n covers every index exactly once.
	for i, e := range indexToElement {
		if i < 1 || i > n {
			return nil, fmt.Errorf("Vector.New: index %d not in 1..%d: %w", i, n, ErrIndices)
		}
		data[i-1] = field.Clone(f, e)
	}

	return &Vector[E, Q]{f: f, data: data}, nil
}

// Of builds a vector whose element at index i is elems[i-1].
func Of[E, Q any](f field.Field[E, Q], elems ...E) (*Vector[E, Q], error) {
	if f == nil {
		return nil, vectorErrorf("Of", ErrNilField)
	}
	if len(elems) == 0 {
		return nil, vectorErrorf("Of", ErrEmpty)
	}
	data := make([]E, len(elems))
	for i, e := range elems {
		data[i] = field.Clone(f, e)
	}

	return &Vector[E, Q]{f: f, data: data}, nil
}

// Field returns the descriptor the vector computes with.
func (v *Vector[E, Q]) Field() field.Field[E, Q] { return v.f }

// Size returns the number of elements.
func (v *Vector[E, Q]) Size() int { return len(v.data) }

// At returns the element at index (1-based).
func (v *Vector[E, Q]) At(index int) (E, error) {
	if index < 1 || index > len(v.data) {
		var zero E
		return zero, fmt.Errorf("Vector.At(%d): %w", index, ErrOutOfRange)
	}
	return field.Clone(v.f, v.data[index-1]), nil
}

// Entry returns the Entry at index (1-based).
func (v *Vector[E, Q]) Entry(index int) (Entry[E], error) {
	e, err := v.At(index)
	if err != nil {
		return Entry[E]{}, err
	}
	return Entry[E]{Index: index, Element: e}, nil
}

// Elements returns the elements in index order.
func (v *Vector[E, Q]) Elements() []E {
	out := make([]E, len(v.data))
	for i, e := range v.data {
		out[i] = field.Clone(v.f, e)
	}
	return out
}

// Entries returns all (index, element) pairs in index order.
func (v *Vector[E, Q]) Entries() []Entry[E] {
	out := make([]Entry[E], len(v.data))
	for i, e := range v.data {
		out[i] = Entry[E]{Index: i + 1, Element: field.Clone(v.f, e)}
	}
	return out
}

// Indices returns 1..Size().
func (v *Vector[E, Q]) Indices() []int {
	out := make([]int, len(v.data))
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Contains reports whether some element equals e under the field's Equal.
func (v *Vector[E, Q]) Contains(e E) bool {
	for _, x := range v.data {
		if v.f.Equal(x, e) {
			return true
		}
	}
	return false
}

// EqualByComparing reports whether both vectors have the same size and
// pairwise Equal elements.
func (v *Vector[E, Q]) EqualByComparing(other *Vector[E, Q]) bool {
	if other == nil || len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if !v.f.Equal(v.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// String renders the elements in index order, e.g. "[1+0i 0+0i 2-1i]".
func (v *Vector[E, Q]) String() string {
	return fmt.Sprint(v.data)
}
