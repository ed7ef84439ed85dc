// SPDX-License-Identifier: MIT

package builder

// Indexed is the generic indexed-element builder: a fixed-capacity, sparse,
// 1-indexed assignment of elements with a pluggable rule for filling gaps.
//
//   - size is fixed at construction (>= MinSize).
//   - indexToElement holds only explicitly set (or already filled) indices;
//     map presence, not the element value, distinguishes "unset" from "zero".
//   - absent produces the element for an unset index during Fill.
//   - clone copies elements on Set, Get, Fill and Snapshot; nil means identity.
//   - err is the sticky error recorded by the fluent With.
type Indexed[E any] struct {
	size           int
	indexToElement map[int]E
	absent         func(index int) E
	clone          func(E) E
	err            error
}

// NewIndexed creates an empty builder of the given capacity.
// MAIN DESCRIPTION:
//   - Validates size and generator, then allocates an empty mapping.
//
// Errors:
//   - ErrBadSize when size < MinSize.
//   - ErrNilGenerator when absent is nil.
//
// Complexity:
//   - Time O(1), Space O(1); the mapping grows with Set and Fill.
func NewIndexed[E any](size int, absent func(index int) E) (*Indexed[E], error) {
	if err := validateSize(MethodNewIndexed, size); err != nil {
		return nil, err
	}
	if absent == nil {
		return nil, builderErrorf(MethodNewIndexed, "absent: %w", ErrNilGenerator)
	}

	return &Indexed[E]{
		size:           size,
		indexToElement: make(map[int]E),
		absent:         absent,
	}, nil
}

// Size returns the fixed capacity.
func (b *Indexed[E]) Size() int { return b.size }

// Set stores e at index, overwriting any previous value.
// Errors: ErrOutOfRange, ErrNilElement. On error the mapping is unchanged.
// Complexity: O(1) amortized.
func (b *Indexed[E]) Set(index int, e E) error {
	if err := validateIndex(MethodSet, index, b.size); err != nil {
		return err
	}
	if err := validateElement(MethodSet, index, e); err != nil {
		return err
	}
	b.indexToElement[index] = b.copyOf(e)

	return nil
}

// With is the chaining form of Set. The first failure is kept and reported
// by Err and Build; once an error is kept, later With calls do nothing.
func (b *Indexed[E]) With(index int, e E) *Indexed[E] {
	b.with(index, e)
	return b
}

func (b *Indexed[E]) with(index int, e E) {
	if b.err != nil {
		return
	}
	b.err = b.Set(index, e)
}

// Err returns the first error recorded by With, or nil.
func (b *Indexed[E]) Err() error { return b.err }

// Get returns the element at index and whether it has been set.
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (b *Indexed[E]) Get(index int) (E, bool, error) {
	if err := validateIndex(MethodGet, index, b.size); err != nil {
		var zero E
		return zero, false, err
	}
	e, ok := b.indexToElement[index]
	if ok {
		e = b.copyOf(e)
	}

	return e, ok, nil
}

// Assigned returns how many indices currently hold an element.
func (b *Indexed[E]) Assigned() int { return len(b.indexToElement) }

// Fill assigns absent(i) to every unset index i in 1..Size() and returns the
// number of indices filled. Afterwards the mapping is dense.
// Complexity: O(Size()).
func (b *Indexed[E]) Fill() int {
	filled := 0
	for i := FirstIndex; i <= b.size; i++ {
		if _, ok := b.indexToElement[i]; !ok {
			b.indexToElement[i] = b.copyOf(b.absent(i))
			filled++
		}
	}

	return filled
}

// Snapshot returns a copy of the current mapping.
func (b *Indexed[E]) Snapshot() map[int]E {
	out := make(map[int]E, len(b.indexToElement))
	for i, e := range b.indexToElement {
		out[i] = b.copyOf(e)
	}

	return out
}

func (b *Indexed[E]) copyOf(e E) E {
	if b.clone == nil {
		return e
	}
	return b.clone(e)
}
