// SPDX-License-Identifier: MIT

package matrix

// Entry is a (row, column, element) triple with 1-based coordinates.
type Entry[E any] struct {
	Row     int
	Col     int
	Element E
}
