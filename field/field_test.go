// SPDX-License-Identifier: MIT

package field_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/number"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLong(t *testing.T) {
	f := field.Long{}
	require.Equal(t, int64(0), f.Zero())
	require.Equal(t, int64(1), f.One())
	require.Equal(t, int64(7), f.Add(3, 4))
	require.Equal(t, int64(-1), f.Sub(3, 4))
	require.Equal(t, int64(12), f.Mul(3, 4))
	require.Equal(t, int64(-3), f.Neg(3))
	require.True(t, f.Equal(5, 5))

	q, err := f.Div(3, 4)
	require.NoError(t, err)
	require.Equal(t, 0.75, q)

	_, err = f.Div(3, 0)
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestIntegers_Int32(t *testing.T) {
	f := field.Integers[int32]{}
	require.Equal(t, int32(6), f.Mul(2, 3))
	q, err := f.Div(1, 8)
	require.NoError(t, err)
	require.Equal(t, 0.125, q)
}

func TestBigInteger(t *testing.T) {
	f := field.BigInteger{}
	a, b := big.NewInt(10), big.NewInt(4)

	require.Equal(t, int64(14), f.Add(a, b).Int64())
	require.Equal(t, int64(6), f.Sub(a, b).Int64())
	require.Equal(t, int64(40), f.Mul(a, b).Int64())
	require.Equal(t, int64(-10), f.Neg(a).Int64())
	require.True(t, f.Equal(f.Zero(), nil))
	require.True(t, f.Equal(big.NewInt(1), f.One()))

	// operands untouched
	require.Equal(t, int64(10), a.Int64())

	q, err := f.Div(a, b)
	require.NoError(t, err)
	require.True(t, q.Equal(decimal.RequireFromString("2.5")), "got %s", q)

	_, err = f.Div(a, new(big.Int))
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestGaussianFields(t *testing.T) {
	g := field.Gaussian{}
	require.True(t, g.Zero().IsZero())
	require.Equal(t, number.NewGaussian(5, 5), g.Mul(number.NewGaussian(1, 2), number.NewGaussian(3, -1)))

	bg := field.BigGaussian{}
	require.True(t, bg.Equal(bg.Add(bg.One(), bg.Neg(bg.One())), bg.Zero()))
	q, err := bg.Div(bg.One(), number.BigGaussianI)
	require.NoError(t, err)
	// 1/i = -i
	require.True(t, q.Equal(number.BigComplexFromGaussian(number.BigGaussianI.Neg())))

	bc := field.BigComplex{}
	half := number.NewBigComplex(big.NewRat(1, 2), nil)
	p, err := bc.Div(bc.One(), half)
	require.NoError(t, err)
	require.True(t, bc.Equal(p, bc.Add(bc.One(), bc.One())))
}

func TestClone(t *testing.T) {
	x := big.NewInt(9)
	c := field.Clone[*big.Int](field.BigInteger{}, x)
	require.NotSame(t, x, c)
	require.Equal(t, 0, x.Cmp(c))
	require.Equal(t, 0, field.Clone[*big.Int](field.BigInteger{}, nil).Sign())

	require.Equal(t, int64(4), field.Clone[int64](field.Long{}, 4))
}
