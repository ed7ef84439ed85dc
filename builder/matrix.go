// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/number"
	"go.uber.org/zap"
)

// MatrixBuilder is the two-dimensional counterpart of VectorBuilder.
// Cells live in an Indexed[E] of rows*cols elements at the row-major
// position (row-1)*cols + col, so presence tracking and fill logic are shared.
type MatrixBuilder[E, Q any] struct {
	cells      *Indexed[E]
	rows, cols int
	f          field.Field[E, Q]
	log        *zap.Logger
}

type (
	// GaussianMatrixBuilder builds matrices of int64 Gaussian integers.
	GaussianMatrixBuilder = MatrixBuilder[number.Gaussian, complex128]
	// BigGaussianMatrixBuilder builds matrices of arbitrary-precision Gaussian integers.
	BigGaussianMatrixBuilder = MatrixBuilder[number.BigGaussian, number.BigComplex]
)

// NewMatrixBuilder creates a rows×cols builder whose unset cells are filled
// with f.Zero(), unless WithAbsentCell overrides it.
// Errors: ErrBadSize (rows or cols < MinSize), ErrNilGenerator, ErrOptionViolation.
func NewMatrixBuilder[E, Q any](rows, cols int, f field.Field[E, Q], opts ...BuilderOption) (*MatrixBuilder[E, Q], error) {
	if f == nil {
		return nil, builderErrorf(MethodNewMatrixBuilder, "field: %w", ErrNilGenerator)
	}
	return newMatrixBuilder(rows, cols, f, func(int, int) E { return f.Zero() }, opts)
}

// NewGaussianMatrixBuilder creates a Gaussian matrix builder filled from the
// field.Gaussian zero.
func NewGaussianMatrixBuilder(rows, cols int, opts ...BuilderOption) (*GaussianMatrixBuilder, error) {
	return NewMatrixBuilder[number.Gaussian, complex128](rows, cols, field.Gaussian{}, opts...)
}

// NewBigGaussianMatrixBuilder creates a BigGaussian matrix builder whose fill
// value is always number.BigGaussianZero.
func NewBigGaussianMatrixBuilder(rows, cols int, opts ...BuilderOption) (*BigGaussianMatrixBuilder, error) {
	return newMatrixBuilder[number.BigGaussian, number.BigComplex](rows, cols, field.BigGaussian{},
		func(int, int) number.BigGaussian { return number.BigGaussianZero }, opts)
}

// Rows returns the fixed row count.
func (b *MatrixBuilder[E, Q]) Rows() int { return b.rows }

// Cols returns the fixed column count.
func (b *MatrixBuilder[E, Q]) Cols() int { return b.cols }

// Set stores e at (row, col), overwriting any previous value.
// Errors: ErrOutOfRange, ErrNilElement. On error nothing changes.
func (b *MatrixBuilder[E, Q]) Set(row, col int, e E) error {
	pos, err := b.position(MethodSet, row, col)
	if err != nil {
		return err
	}
	if isNil(e) {
		return builderErrorf(MethodSet, "cell (%d,%d): %w", row, col, ErrNilElement)
	}

	return b.cells.Set(pos, e)
}

// With is the chaining form of Set; the first failure is sticky.
func (b *MatrixBuilder[E, Q]) With(row, col int, e E) *MatrixBuilder[E, Q] {
	if b.cells.err == nil {
		b.cells.err = b.Set(row, col, e)
	}
	return b
}

// Err returns the first error recorded by With, or nil.
func (b *MatrixBuilder[E, Q]) Err() error { return b.cells.Err() }

// Get returns the element at (row, col) and whether it has been set.
// Errors: ErrOutOfRange.
func (b *MatrixBuilder[E, Q]) Get(row, col int) (E, bool, error) {
	pos, err := b.position(MethodGet, row, col)
	if err != nil {
		var zero E
		return zero, false, err
	}
	return b.cells.Get(pos)
}

// Build fills unset cells and returns the matrix.
// Complexity: Time O(rows*cols), Space O(rows*cols).
func (b *MatrixBuilder[E, Q]) Build() (*matrix.Matrix[E, Q], error) {
	if err := b.Err(); err != nil {
		return nil, builderErrorf(MethodBuild, "%w", err)
	}
	filled := b.cells.Fill()
	b.log.Debug("matrix built",
		zap.Int("rows", b.rows),
		zap.Int("cols", b.cols),
		zap.Int("filled", filled),
	)

	data := make([]E, b.rows*b.cols)
	for pos, e := range b.cells.indexToElement {
		data[pos-1] = e
	}

	return matrix.New(b.f, b.rows, b.cols, data)
}

// position validates (row, col) and maps it to the 1-based cell position.
func (b *MatrixBuilder[E, Q]) position(method string, row, col int) (int, error) {
	if row < FirstIndex || row > b.rows || col < FirstIndex || col > b.cols {
		return 0, builderErrorf(method, "cell (%d,%d) not in %dx%d: %w", row, col, b.rows, b.cols, ErrOutOfRange)
	}
	return (row-1)*b.cols + col, nil
}

func newMatrixBuilder[E, Q any](rows, cols int, f field.Field[E, Q], fallback func(row, col int) E, opts []BuilderOption) (*MatrixBuilder[E, Q], error) {
	if err := validateSize(MethodNewMatrixBuilder, rows); err != nil {
		return nil, err
	}
	if err := validateSize(MethodNewMatrixBuilder, cols); err != nil {
		return nil, err
	}
	if rows > math.MaxInt/cols {
		return nil, builderErrorf(MethodNewMatrixBuilder, "%dx%d cells overflow int: %w", rows, cols, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	absent, err := resolveAbsentCell(MethodNewMatrixBuilder, cfg, fallback)
	if err != nil {
		return nil, err
	}
	cells, err := NewIndexed(rows*cols, func(pos int) E {
		return absent((pos-1)/cols+1, (pos-1)%cols+1)
	})
	if err != nil {
		return nil, err
	}
	cells.clone = cloneFunc[E](f)

	return &MatrixBuilder[E, Q]{cells: cells, rows: rows, cols: cols, f: f, log: cfg.logger}, nil
}
