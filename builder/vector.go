// SPDX-License-Identifier: MIT

package builder

import (
	"math/big"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// VectorBuilder binds Indexed[E] to a field descriptor and produces
// *vector.Vector[E, Q] values.
type VectorBuilder[E, Q any] struct {
	*Indexed[E]
	f   field.Field[E, Q]
	log *zap.Logger
}

// Concrete builders. Each differs only in element type and fill policy.
type (
	// GaussianVectorBuilder builds vectors of int64 Gaussian integers.
	GaussianVectorBuilder = VectorBuilder[number.Gaussian, complex128]
	// BigGaussianVectorBuilder builds vectors of arbitrary-precision Gaussian integers.
	BigGaussianVectorBuilder = VectorBuilder[number.BigGaussian, number.BigComplex]
	// LongVectorBuilder builds vectors of int64.
	LongVectorBuilder = VectorBuilder[int64, float64]
	// BigIntegerVectorBuilder builds vectors of *big.Int.
	BigIntegerVectorBuilder = VectorBuilder[*big.Int, decimal.Decimal]
)

// NewVectorBuilder creates a builder of the given size whose unset indices
// are filled with f.Zero(), unless WithAbsent overrides it.
// Errors: ErrBadSize, ErrNilGenerator (nil f), ErrOptionViolation.
// Complexity: O(len(opts)).
func NewVectorBuilder[E, Q any](size int, f field.Field[E, Q], opts ...BuilderOption) (*VectorBuilder[E, Q], error) {
	if f == nil {
		return nil, builderErrorf(MethodNewVectorBuilder, "field: %w", ErrNilGenerator)
	}
	return newVectorBuilder(size, f, zeroFill[E](f), opts)
}

// NewGaussianVectorBuilder creates a Gaussian builder. The fill value is the
// zero of the field.Gaussian descriptor.
func NewGaussianVectorBuilder(size int, opts ...BuilderOption) (*GaussianVectorBuilder, error) {
	return NewVectorBuilder[number.Gaussian, complex128](size, field.Gaussian{}, opts...)
}

// NewBigGaussianVectorBuilder creates a BigGaussian builder whose fill value
// is always number.BigGaussianZero, regardless of index.
func NewBigGaussianVectorBuilder(size int, opts ...BuilderOption) (*BigGaussianVectorBuilder, error) {
	return newVectorBuilder[number.BigGaussian, number.BigComplex](size, field.BigGaussian{}, bigGaussianZero, opts)
}

// NewLongVectorBuilder creates an int64 builder with zero fill.
func NewLongVectorBuilder(size int, opts ...BuilderOption) (*LongVectorBuilder, error) {
	return NewVectorBuilder[int64, float64](size, field.Long{}, opts...)
}

// NewBigIntegerVectorBuilder creates a *big.Int builder. Each unset index
// receives its own fresh zero, and Set/Get copy values so the builder never
// shares a *big.Int with the caller.
func NewBigIntegerVectorBuilder(size int, opts ...BuilderOption) (*BigIntegerVectorBuilder, error) {
	return NewVectorBuilder[*big.Int, decimal.Decimal](size, field.BigInteger{}, opts...)
}

// BuildVector creates a builder, lets init populate it, and builds it.
// init may be nil.
func BuildVector[E, Q any](size int, f field.Field[E, Q], init func(*VectorBuilder[E, Q]), opts ...BuilderOption) (*vector.Vector[E, Q], error) {
	b, err := NewVectorBuilder(size, f, opts...)
	if err != nil {
		return nil, err
	}
	if init != nil {
		init(b)
	}

	return b.Build()
}

// LongVector is BuildVector for int64 elements:
//
//	v, err := builder.LongVector(3, func(b *builder.LongVectorBuilder) {
//		b.With(1, 4).With(3, 2)
//	})
func LongVector(size int, init func(*LongVectorBuilder), opts ...BuilderOption) (*vector.Vector[int64, float64], error) {
	return BuildVector[int64, float64](size, field.Long{}, init, opts...)
}

// With is the chaining form of Set; see Indexed.With.
func (b *VectorBuilder[E, Q]) With(index int, e E) *VectorBuilder[E, Q] {
	b.Indexed.with(index, e)
	return b
}

// Build fills every unset index with the absent generator and returns the
// vector of the now-dense mapping.
// MAIN DESCRIPTION:
//   - Returns the sticky With error, if any, without filling.
//   - Filled defaults are written back into the builder.
//   - The vector copies the mapping; later Sets do not affect it.
//
// Complexity:
//   - Time O(Size()), Space O(Size()).
func (b *VectorBuilder[E, Q]) Build() (*vector.Vector[E, Q], error) {
	if err := b.Err(); err != nil {
		return nil, builderErrorf(MethodBuild, "%w", err)
	}
	filled := b.Fill()
	b.log.Debug("vector built",
		zap.Int("size", b.Size()),
		zap.Int("filled", filled),
	)

	return vector.New(b.f, b.indexToElement)
}

func newVectorBuilder[E, Q any](size int, f field.Field[E, Q], fallback func(int) E, opts []BuilderOption) (*VectorBuilder[E, Q], error) {
	cfg := newBuilderConfig(opts...)
	absent, err := resolveAbsent(MethodNewVectorBuilder, cfg, fallback)
	if err != nil {
		return nil, err
	}
	idx, err := NewIndexed(size, absent)
	if err != nil {
		return nil, err
	}
	idx.clone = cloneFunc[E](f)

	return &VectorBuilder[E, Q]{Indexed: idx, f: f, log: cfg.logger}, nil
}

// cloneFunc returns the descriptor's Clone, or nil for value element types.
func cloneFunc[E any](z field.Zeroer[E]) func(E) E {
	if c, ok := z.(field.Cloner[E]); ok {
		return c.Clone
	}
	return nil
}

// zeroFill adapts a Zeroer to an index-ignoring generator.
func zeroFill[E any](z field.Zeroer[E]) func(int) E {
	return func(int) E { return z.Zero() }
}

func bigGaussianZero(int) number.BigGaussian { return number.BigGaussianZero }
