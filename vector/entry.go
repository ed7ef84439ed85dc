// SPDX-License-Identifier: MIT

package vector

import "fmt"

// Entry pairs an element with its 1-based index.
type Entry[E any] struct {
	Index   int
	Element E
}

// NewEntry returns an Entry, rejecting indices below 1 with ErrOutOfRange.
func NewEntry[E any](index int, element E) (Entry[E], error) {
	if index < 1 {
		return Entry[E]{}, fmt.Errorf("NewEntry(%d): %w", index, ErrOutOfRange)
	}
	return Entry[E]{Index: index, Element: element}, nil
}
