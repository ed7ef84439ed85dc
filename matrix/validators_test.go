// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	sq := mustLong(t, []int64{1, 2}, []int64{3, 4})
	rect := mustLong(t, []int64{1, 2, 3})

	require.NoError(t, matrix.ValidateNotNil(sq))
	require.ErrorIs(t, matrix.ValidateNotNil[int64, float64](nil), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateSameShape(sq, sq))
	require.ErrorIs(t, matrix.ValidateSameShape(sq, rect), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateSquare(sq))
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	require.NoError(t, matrix.ValidateMulShape(rect, rect.Transpose()))
	require.ErrorIs(t, matrix.ValidateMulShape(rect, rect), matrix.ErrDimensionMismatch)
}
