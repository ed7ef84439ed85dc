// SPDX-License-Identifier: MIT

// Package matrix - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit offset formula (i-1)*cols + (j-1).
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration in kernels).
//
// Complexity quicksheet:
//   - New/FromRows/FromEntries: O(r*c); At/Entry: O(1); Row/Column: O(c)/O(r).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/vector"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxEntry  = "Entry"
	ctxRow    = "Row"
	ctxColumn = "Column"
	ctxMinor  = "Minor"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is an immutable dense matrix.
//   - f is the field descriptor all arithmetic is delegated to.
//   - r, c hold dimensions (both >= 1).
//   - data is a flat buffer of length r*c in row-major order; its elements are
//     never handed out without field.Clone.
type Matrix[E, Q any] struct {
	f    field.Field[E, Q]
	r, c int
	data []E
}

var _ fmt.Stringer = (*Matrix[int64, float64])(nil)

// New creates a rows×cols matrix from row-major data.
// MAIN DESCRIPTION:
//   - data[(i-1)*cols + (j-1)] becomes the element at (i, j). data is copied.
//
// Errors:
//   - ErrNilField if f is nil.
//   - ErrBadShape if rows<1, cols<1 or len(data) != rows*cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[E, Q any](f field.Field[E, Q], rows, cols int, data []E) (*Matrix[E, Q], error) {
	if f == nil {
		return nil, matrixErrorf("New", ErrNilField)
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Matrix.New(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("Matrix.New: len(data)=%d, want %d: %w", len(data), rows*cols, ErrBadShape)
	}
	buf := make([]E, len(data))
	for k, e := range data {
		buf[k] = field.Clone(f, e)
	}

	return &Matrix[E, Q]{f: f, r: rows, c: cols, data: buf}, nil
}

// FromRows creates a matrix from a slice of equally long rows.
// Errors: ErrBadShape on no rows, empty rows or ragged rows.
func FromRows[E, Q any](f field.Field[E, Q], rows [][]E) (*Matrix[E, Q], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrBadShape)
	}
	cols := len(rows[0])
	data := make([]E, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("Matrix.FromRows: row %d has %d columns, want %d: %w", i+1, len(row), cols, ErrBadShape)
		}
		data = append(data, row...)
	}

	return New(f, len(rows), cols, data)
}

// FromEntries creates a matrix from (row, col, element) triples.
// MAIN DESCRIPTION:
//   - The shape is the maximum row and column seen.
//   - Every cell must be covered exactly once; entry order is irrelevant.
//
// Errors:
//   - ErrBadShape when entries is empty.
//   - ErrOutOfRange when a coordinate is below 1.
//   - ErrIncomplete when a cell is missing or duplicated.
//
// Complexity:
//   - Time O(r*c + len(entries)), Space O(r*c).
func FromEntries[E, Q any](f field.Field[E, Q], entries []Entry[E]) (*Matrix[E, Q], error) {
	if f == nil {
		return nil, matrixErrorf("FromEntries", ErrNilField)
	}
	if len(entries) == 0 {
		return nil, matrixErrorf("FromEntries", ErrBadShape)
	}
	rows, cols := 0, 0
	for _, e := range entries {
		if e.Row < 1 || e.Col < 1 {
			return nil, cellErrorf("FromEntries", e.Row, e.Col, ErrOutOfRange)
		}
		rows = max(rows, e.Row)
		cols = max(cols, e.Col)
	}
	if len(entries) != rows*cols {
		return nil, fmt.Errorf("Matrix.FromEntries: %d entries for %dx%d: %w", len(entries), rows, cols, ErrIncomplete)
	}
	data := make([]E, rows*cols)
	seen := make([]bool, rows*cols)
	for _, e := range entries {
		off := (e.Row-1)*cols + (e.Col - 1)
		if seen[off] {
			return nil, cellErrorf("FromEntries", e.Row, e.Col, ErrIncomplete)
		}
		seen[off] = true
		data[off] = field.Clone(f, e.Element)
	}

	return &Matrix[E, Q]{f: f, r: rows, c: cols, data: data}, nil
}

// Field returns the descriptor the matrix computes with.
func (m *Matrix[E, Q]) Field() field.Field[E, Q] { return m.f }

// Rows returns the number of rows.
func (m *Matrix[E, Q]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix[E, Q]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Matrix[E, Q]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf maps 1-based (row, col) to the flat offset or ErrOutOfRange.
func (m *Matrix[E, Q]) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r || col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}
	return (row-1)*m.c + (col - 1), nil
}

// elem returns the element at flat offset off, cloned when the field
// implements field.Cloner.
func (m *Matrix[E, Q]) elem(off int) E { return field.Clone(m.f, m.data[off]) }

// At returns the element at (row, col).
func (m *Matrix[E, Q]) At(row, col int) (E, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero E
		return zero, cellErrorf(ctxAt, row, col, err)
	}
	return m.elem(off), nil
}

// Entry returns the Entry at (row, col).
func (m *Matrix[E, Q]) Entry(row, col int) (Entry[E], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return Entry[E]{}, cellErrorf(ctxEntry, row, col, err)
	}
	return Entry[E]{Row: row, Col: col, Element: m.elem(off)}, nil
}

// Entries returns all entries in row-major order.
func (m *Matrix[E, Q]) Entries() []Entry[E] {
	out := make([]Entry[E], 0, len(m.data))
	for i := 1; i <= m.r; i++ {
		for j := 1; j <= m.c; j++ {
			out = append(out, Entry[E]{Row: i, Col: j, Element: m.elem((i-1)*m.c + (j - 1))})
		}
	}
	return out
}

// Elements returns all elements in row-major order.
func (m *Matrix[E, Q]) Elements() []E {
	out := make([]E, len(m.data))
	for k := range m.data {
		out[k] = m.elem(k)
	}
	return out
}

// Row returns a copy of row i.
func (m *Matrix[E, Q]) Row(i int) ([]E, error) {
	if i < 1 || i > m.r {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]E, m.c)
	for j := range out {
		out[j] = m.elem((i-1)*m.c + j)
	}
	return out, nil
}

// Column returns a copy of column j.
func (m *Matrix[E, Q]) Column(j int) ([]E, error) {
	if j < 1 || j > m.c {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", ctxColumn, j, ErrOutOfRange)
	}
	out := make([]E, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.elem(i*m.c + (j - 1))
	}
	return out, nil
}

// RowVector returns row i as a vector of size Cols().
func (m *Matrix[E, Q]) RowVector(i int) (*vector.Vector[E, Q], error) {
	row, err := m.Row(i)
	if err != nil {
		return nil, err
	}
	return vector.Of(m.f, row...)
}

// ColumnVector returns column j as a vector of size Rows().
func (m *Matrix[E, Q]) ColumnVector(j int) (*vector.Vector[E, Q], error) {
	col, err := m.Column(j)
	if err != nil {
		return nil, err
	}
	return vector.Of(m.f, col...)
}

// DiagonalElements returns a(1,1), a(2,2), … up to min(Rows, Cols).
func (m *Matrix[E, Q]) DiagonalElements() []E {
	n := min(m.r, m.c)
	out := make([]E, n)
	for i := 0; i < n; i++ {
		out[i] = m.elem(i*m.c + i)
	}
	return out
}

// Contains reports whether some element equals e under the field's Equal.
func (m *Matrix[E, Q]) Contains(e E) bool {
	for _, x := range m.data {
		if m.f.Equal(x, e) {
			return true
		}
	}
	return false
}

// EqualByComparing reports equal shapes and pairwise Equal elements.
func (m *Matrix[E, Q]) EqualByComparing(other *Matrix[E, Q]) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for k := range m.data {
		if !m.f.Equal(m.data[k], other.data[k]) {
			return false
		}
	}
	return true
}

// String renders one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
func (m *Matrix[E, Q]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
