// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/number"
	"github.com/katalvlaran/lvmath/vector"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := mustLong(t, []int64{1, 2, 3}, []int64{4, 5, 6})
	b := mustLong(t, []int64{6, 5, 4}, []int64{3, 2, 1})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int64{7, 7, 7, 7, 7, 7}, sum.Elements())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, []int64{-5, -3, -1, 1, 3, 5}, diff.Elements())

	_, err = a.Add(mustLong(t, []int64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := mustLong(t, []int64{1, 2, 3}, []int64{4, 5, 6})
	b := mustLong(t, []int64{7, 8}, []int64{9, 10}, []int64{11, 12})

	c, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 2, c.Cols())
	require.Equal(t, []int64{58, 64, 139, 154}, c.Elements())

	_, err = a.Mul(a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulVec(t *testing.T) {
	a := mustLong(t, []int64{1, 2}, []int64{3, 4}, []int64{5, 6})
	x, err := vector.Of[int64, float64](field.Long{}, 1, -1)
	require.NoError(t, err)

	y, err := a.MulVec(x)
	require.NoError(t, err)
	require.Equal(t, []int64{-1, -1, -1}, y.Elements())

	bad, err := vector.Of[int64, float64](field.Long{}, 1, 2, 3)
	require.NoError(t, err)
	_, err = a.MulVec(bad)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.MulVec(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScaleNegateTranspose(t *testing.T) {
	a := mustLong(t, []int64{1, 2, 3}, []int64{4, 5, 6})

	require.Equal(t, []int64{3, 6, 9, 12, 15, 18}, a.ScalarMultiply(3).Elements())
	require.Equal(t, []int64{-1, -2, -3, -4, -5, -6}, a.Negate().Elements())

	at := a.Transpose()
	require.Equal(t, 3, at.Rows())
	require.Equal(t, 2, at.Cols())
	require.Equal(t, []int64{1, 4, 2, 5, 3, 6}, at.Elements())
	require.True(t, at.Transpose().EqualByComparing(a))
}

func TestTrace(t *testing.T) {
	tr, err := mustLong(t, []int64{1, 2}, []int64{3, 4}).Trace()
	require.NoError(t, err)
	require.Equal(t, int64(5), tr)

	_, err = mustLong(t, []int64{1, 2}).Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestMinor(t *testing.T) {
	a := mustLong(t, []int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9})

	m, err := a.Minor(2, 2)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 3, 7, 9}, m.Elements())

	_, err = a.Minor(4, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = mustLong(t, []int64{1, 2}).Minor(1, 1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int64
		want int64
	}{
		{"1x1", [][]int64{{-7}}, -7},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, -2},
		{"3x3 singular", [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"3x3", [][]int64{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, 6},
		{"upper triangular", [][]int64{{2, 5, 7}, {0, 3, 1}, {0, 0, 4}}, 24},
		{"4x4", [][]int64{{1, 0, 2, -1}, {3, 0, 0, 5}, {2, 1, 4, -3}, {1, 0, 5, 0}}, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := mustLong(t, tc.rows...).Determinant()
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}

	_, err := mustLong(t, []int64{1, 2}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDeterminant_Gaussian(t *testing.T) {
	// | 1+i  2 |
	// |  i   1 | = (1+i) - 2i = 1 - i
	m := mustGaussian(t,
		[][2]int64{{1, 1}, {2, 0}},
		[][2]int64{{0, 1}, {1, 0}},
	)
	d, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, d.Equal(number.BigGaussianFromInt64(1, -1)), "got %s", d)
}
