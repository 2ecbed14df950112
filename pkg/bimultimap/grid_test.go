package bimultimap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGridDimensions(t *testing.T) {
	g, err := newGrid[int, int](3, 4)
	require.NoError(t, err)
	require.Equal(t, 3, g.rows)
	require.Equal(t, 4, g.cols)
	require.Len(t, g.cells, 12)

	for i := range g.cells {
		require.True(t, g.cells[i].IsEmpty())
	}
}

func TestGridRejectsOverflowingDimensions(t *testing.T) {
	_, err := newGrid[int, int](math.MaxInt, 2)
	require.ErrorAs(t, err, &ErrInvalidCapacity{})
}

func TestGridLayoutIsRowMajor(t *testing.T) {
	g, err := newGrid[int, int](3, 4)
	require.NoError(t, err)

	for row := range 3 {
		for col := range 4 {
			require.Same(t, &g.cells[row*4+col], g.bucketAt(row, col))
		}
	}
}

func TestGridRowView(t *testing.T) {
	g, err := newGrid[int, int](3, 4)
	require.NoError(t, err)

	g.bucketAt(1, 0).Add(NewRelation(1, 0))
	g.bucketAt(1, 3).Add(NewRelation(1, 3))
	g.bucketAt(2, 3).Add(NewRelation(2, 3))

	row := g.row(1)
	require.Len(t, row, 4)
	require.Same(t, g.bucketAt(1, 0), &row[0])
	require.Same(t, g.bucketAt(1, 3), &row[3])
	require.True(t, row[0].Has(NewRelation(1, 0)))
	require.True(t, row[3].Has(NewRelation(1, 3)))
	require.False(t, row[3].Has(NewRelation(2, 3)))
}

func TestGridColumnView(t *testing.T) {
	g, err := newGrid[int, int](3, 4)
	require.NoError(t, err)

	var visited []*bucket[int, int]
	for b := range g.column(2) {
		visited = append(visited, b)
	}

	require.Len(t, visited, 3)
	for row, b := range visited {
		require.Same(t, g.bucketAt(row, 2), b)
	}
}

func TestGridColumnViewEarlyExit(t *testing.T) {
	g, err := newGrid[int, int](5, 2)
	require.NoError(t, err)

	count := 0
	for range g.column(1) {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestGridOutOfRangeIsABug(t *testing.T) {
	g, err := newGrid[int, int](2, 3)
	require.NoError(t, err)

	require.Panics(t, func() { g.bucketAt(2, 0) })
	require.Panics(t, func() { g.bucketAt(0, 3) })
	require.Panics(t, func() { g.bucketAt(-1, 0) })
	require.Panics(t, func() { g.row(2) })
	require.Panics(t, func() { g.column(3) })
}

func TestGridCoordinate(t *testing.T) {
	g, err := newGrid[int, int](3, 5)
	require.NoError(t, err)

	row, col := g.coordinate(7, 13)
	require.Equal(t, 1, row)
	require.Equal(t, 3, col)

	row, col = g.coordinate(math.MaxUint64, math.MaxUint64)
	require.Less(t, row, 3)
	require.Less(t, col, 5)
	require.Equal(t, int(uint64(math.MaxUint64)%3), row)
}

func TestGridClear(t *testing.T) {
	g, err := newGrid[int, int](2, 2)
	require.NoError(t, err)

	g.bucketAt(0, 1).Add(NewRelation(0, 1))
	g.bucketAt(1, 1).Add(NewRelation(1, 1))
	g.clear()

	for i := range g.cells {
		require.True(t, g.cells[i].IsEmpty())
	}
}
