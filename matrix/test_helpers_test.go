// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/field"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/number"
	"github.com/stretchr/testify/require"
)

type longMatrix = matrix.Matrix[int64, float64]

// mustLong builds an int64 matrix from rows or fails the test.
func mustLong(t *testing.T, rows ...[]int64) *longMatrix {
	t.Helper()
	m, err := matrix.FromRows[int64, float64](field.Long{}, rows)
	require.NoError(t, err)
	return m
}

// mustGaussian builds a BigGaussian matrix from rows of (re, im) pairs.
func mustGaussian(t *testing.T, rows ...[][2]int64) *matrix.Matrix[number.BigGaussian, number.BigComplex] {
	t.Helper()
	data := make([][]number.BigGaussian, len(rows))
	for i, row := range rows {
		data[i] = make([]number.BigGaussian, len(row))
		for j, p := range row {
			data[i][j] = number.BigGaussianFromInt64(p[0], p[1])
		}
	}
	m, err := matrix.FromRows[number.BigGaussian, number.BigComplex](field.BigGaussian{}, data)
	require.NoError(t, err)
	return m
}

// MustAt returns m(i,j) or fails the test.
func MustAt[E, Q any](t *testing.T, m *matrix.Matrix[E, Q], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}
