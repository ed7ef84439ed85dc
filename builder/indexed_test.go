// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/builder"
	"github.com/stretchr/testify/require"
)

// minusOne marks filled indices so tests can tell them apart from Set values.
func minusOne(int) int64 { return -1 }

func TestNewIndexed_Size(t *testing.T) {
	t.Parallel()

	for _, size := range []int{1, 2, 100} {
		b, err := builder.NewIndexed(size, minusOne)
		require.NoError(t, err)
		require.Equal(t, size, b.Size())
		require.Zero(t, b.Assigned())
	}
	for _, size := range []int{0, -1, -100} {
		_, err := builder.NewIndexed(size, minusOne)
		require.ErrorIs(t, err, builder.ErrBadSize)
		require.ErrorIs(t, err, builder.ErrInvalidArgument)
	}
}

func TestNewIndexed_NilGenerator(t *testing.T) {
	t.Parallel()

	_, err := builder.NewIndexed[int64](3, nil)
	require.ErrorIs(t, err, builder.ErrNilGenerator)
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestIndexed_SetGet(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(3, minusOne)
	require.NoError(t, err)

	e, ok, err := b.Get(2)
	require.NoError(t, err)
	require.False(t, ok, "unset index must report absence")
	require.Zero(t, e)

	require.NoError(t, b.Set(2, 0))
	e, ok, err = b.Get(2)
	require.NoError(t, err)
	require.True(t, ok, "zero set explicitly is present")
	require.Equal(t, int64(0), e)

	require.NoError(t, b.Set(2, 7))
	e, _, _ = b.Get(2)
	require.Equal(t, int64(7), e, "Set overwrites")
	require.Equal(t, 1, b.Assigned())
}

func TestIndexed_OutOfRange(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(3, minusOne)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 5))

	for _, idx := range []int{0, -1, 4, 1000} {
		err = b.Set(idx, 9)
		require.ErrorIs(t, err, builder.ErrOutOfRange)
		require.ErrorIs(t, err, builder.ErrInvalidArgument)

		_, ok, err := b.Get(idx)
		require.ErrorIs(t, err, builder.ErrOutOfRange)
		require.False(t, ok)
	}
	require.Equal(t, map[int]int64{1: 5}, b.Snapshot(), "failed Set must not mutate")
}

func TestIndexed_NilElement(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(2, func(int) *int { v := 0; return &v })
	require.NoError(t, err)

	err = b.Set(1, nil)
	require.ErrorIs(t, err, builder.ErrNilElement)
	require.ErrorIs(t, err, builder.ErrInvalidArgument)
	require.Zero(t, b.Assigned())

	v := 3
	require.NoError(t, b.Set(1, &v))
}

func TestIndexed_WithSticky(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(3, minusOne)
	require.NoError(t, err)

	b.With(1, 10).With(5, 50).With(2, 20)
	require.ErrorIs(t, b.Err(), builder.ErrOutOfRange)
	require.Contains(t, b.Err().Error(), "index 5")

	_, ok, _ := b.Get(2)
	require.False(t, ok, "With after a failure is ignored")
	e, ok, _ := b.Get(1)
	require.True(t, ok)
	require.Equal(t, int64(10), e)
}

func TestIndexed_Fill(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(4, func(i int) int64 { return int64(-i) })
	require.NoError(t, err)
	require.NoError(t, b.Set(3, 30))

	require.Equal(t, 3, b.Fill())
	require.Equal(t, map[int]int64{1: -1, 2: -2, 3: 30, 4: -4}, b.Snapshot())
	require.Equal(t, 0, b.Fill(), "second Fill finds nothing to do")
}

func TestIndexed_SnapshotIsCopy(t *testing.T) {
	t.Parallel()

	b, err := builder.NewIndexed(2, minusOne)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 1))

	snap := b.Snapshot()
	snap[2] = 99
	_, ok, _ := b.Get(2)
	require.False(t, ok)
}
