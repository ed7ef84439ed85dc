// SPDX-License-Identifier: MIT

package number_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/lvmath/number"
	"github.com/stretchr/testify/require"
)

func TestBigComplex_FieldOps(t *testing.T) {
	half := number.NewBigComplex(big.NewRat(1, 2), big.NewRat(1, 3))
	one := number.BigComplexOne

	sum := half.Add(one)
	require.Equal(t, "3/2+1/3i", sum.String())
	require.True(t, sum.Sub(one).Equal(half))

	prod := half.Mul(half.Conj())
	// |z|² = 1/4 + 1/9 = 13/36
	require.True(t, prod.Equal(number.NewBigComplex(big.NewRat(13, 36), nil)))

	inv, err := one.Div(half)
	require.NoError(t, err)
	back := inv.Mul(half)
	require.True(t, back.Equal(one))

	require.True(t, half.Add(half.Neg()).IsZero())
	require.False(t, half.IsGaussian())
}

func TestBigComplex_DivByZero(t *testing.T) {
	_, err := number.BigComplexOne.Div(number.BigComplexZero)
	require.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestRatRange(t *testing.T) {
	r := number.NewRatRange(big.NewRat(-1, 2), big.NewRat(3, 4))
	require.False(t, r.IsEmpty())
	require.True(t, r.Contains(big.NewRat(0, 1)))
	require.True(t, r.Contains(big.NewRat(3, 4)))
	require.False(t, r.Contains(big.NewRat(4, 5)))

	require.True(t, number.EmptyRatRange.IsEmpty())
	require.False(t, number.EmptyRatRange.Contains(big.NewRat(1, 2)))
}
