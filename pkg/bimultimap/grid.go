package bimultimap

import (
	"iter"
	"math"

	"github.com/goose121/bimultimap/pkg/bmerrors"
	"github.com/goose121/bimultimap/pkg/genutil/mapz"
)

// bucket is the deduplicating set of relations sharing one grid coordinate.
type bucket[K comparable, V comparable] = mapz.Set[Relation[K, V]]

// grid is a fixed rows x cols matrix of buckets, stored row-major in a single
// slice so that the bucket at (row, col) is cells[row*cols+col].
type grid[K comparable, V comparable] struct {
	rows  int
	cols  int
	cells []bucket[K, V]
}

func newGrid[K comparable, V comparable](rows, cols int) (*grid[K, V], error) {
	if rows < 1 || cols < 1 || rows > math.MaxInt/cols {
		return nil, NewInvalidCapacityErr(rows, cols)
	}

	return &grid[K, V]{
		rows:  rows,
		cols:  cols,
		cells: make([]bucket[K, V], rows*cols),
	}, nil
}

// coordinate reduces a key digest and a value digest to a cell coordinate.
func (g *grid[K, V]) coordinate(keyHash, valueHash uint64) (int, int) {
	return g.rowOf(keyHash), g.colOf(valueHash)
}

func (g *grid[K, V]) rowOf(keyHash uint64) int {
	return int(keyHash % uint64(g.rows))
}

func (g *grid[K, V]) colOf(valueHash uint64) int {
	return int(valueHash % uint64(g.cols))
}

// bucketAt returns the bucket at the exact coordinate. Coordinates are always
// reduced modulo the grid dimensions before this call, so an out-of-range
// coordinate is a bug.
func (g *grid[K, V]) bucketAt(row, col int) *bucket[K, V] {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		bmerrors.MustPanic("bucket (%d, %d) is outside of the %dx%d grid", row, col, g.rows, g.cols)
	}
	return &g.cells[row*g.cols+col]
}

// row returns the buckets of a row, in column order. The returned slice
// aliases the grid.
func (g *grid[K, V]) row(row int) []bucket[K, V] {
	if row < 0 || row >= g.rows {
		bmerrors.MustPanic("row %d is outside of the %dx%d grid", row, g.rows, g.cols)
	}
	return g.cells[row*g.cols : (row+1)*g.cols]
}

// column yields the buckets of a column, in row order.
func (g *grid[K, V]) column(col int) iter.Seq[*bucket[K, V]] {
	if col < 0 || col >= g.cols {
		bmerrors.MustPanic("column %d is outside of the %dx%d grid", col, g.rows, g.cols)
	}

	return func(yield func(*bucket[K, V]) bool) {
		for i := col; i < len(g.cells); i += g.cols {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// clear empties every bucket without changing the dimensions.
func (g *grid[K, V]) clear() {
	for i := range g.cells {
		g.cells[i].Clear()
	}
}
