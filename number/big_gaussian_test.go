// SPDX-License-Identifier: MIT

package number_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvmath/number"
	"github.com/stretchr/testify/require"
)

func TestBigGaussian_ZeroValue(t *testing.T) {
	var z number.BigGaussian
	require.True(t, z.IsZero())
	require.True(t, z.Equal(number.BigGaussianZero))
	require.True(t, z.Equal(number.BigGaussianFromInt64(0, 0)))
	require.Equal(t, "0+0i", z.String())
	require.Equal(t, 0, z.Real().Sign())
}

func TestBigGaussian_Immutable(t *testing.T) {
	re := big.NewInt(7)
	g := number.NewBigGaussian(re, big.NewInt(1))
	re.SetInt64(100) // caller mutation must not leak in

	require.Equal(t, int64(7), g.Real().Int64())

	out := g.Real()
	out.SetInt64(-1) // accessor copies must not leak back
	require.Equal(t, int64(7), g.Real().Int64())
}

func TestBigGaussian_Arithmetic(t *testing.T) {
	a := number.BigGaussianFromInt64(1, 2)
	b := number.BigGaussianFromInt64(3, -1)

	require.True(t, a.Add(b).Equal(number.BigGaussianFromInt64(4, 1)))
	require.True(t, a.Sub(b).Equal(number.BigGaussianFromInt64(-2, 3)))
	require.True(t, a.Mul(b).Equal(number.BigGaussianFromInt64(5, 5)))
	require.True(t, a.Neg().Equal(number.BigGaussianFromInt64(-1, -2)))
	require.True(t, a.Conj().Equal(number.BigGaussianFromInt64(1, -2)))
	require.Equal(t, int64(5), a.Norm().Int64())
	require.Equal(t, "3-1i", b.String())

	// operands are untouched
	require.True(t, a.Equal(number.BigGaussianFromInt64(1, 2)))
}

func TestBigGaussian_Div(t *testing.T) {
	q, err := number.BigGaussianFromInt64(5, 5).Div(number.BigGaussianFromInt64(3, -1))
	require.NoError(t, err)
	require.True(t, q.IsGaussian())
	require.True(t, q.Equal(number.BigComplexFromGaussian(number.BigGaussianFromInt64(1, 2))))

	// 1/(1+i) = 1/2 - 1/2 i
	q, err = number.BigGaussianOne.Div(number.BigGaussianFromInt64(1, 1))
	require.NoError(t, err)
	require.Equal(t, "1/2-1/2i", q.String())

	_, err = number.BigGaussianOne.Div(number.BigGaussian{})
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}
