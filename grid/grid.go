package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/tilegrid/coords"
)

// Grid is a rectangular, shape-immutable store of tiles. The tile type T is
// opaque to this package; callers mutate tiles in place through TileAt.
// Rows and columns are fixed at construction; there is no insert/delete.
type Grid[T any] struct {
	rows, cols int
	cells      [][]T
}

// New constructs a Grid over a non-empty, rectangular 2D slice. The grid
// adopts the backing rows rather than copying them: mutating tiles through
// TileAt is the intended write path, and the loader that produced the slice
// hands ownership over here. Returns ErrEmptyGrid if the slice has no rows
// or no columns, ErrNonRectangular if any row length differs.
// Complexity: O(rows) time, O(1) extra memory.
func New[T any](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	return &Grid[T]{rows: len(cells), cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Contains reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) Contains(c coords.RowCol) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// TileAt returns a pointer to the tile at c, the primary mutation path.
// Out-of-bounds access panics with an error wrapping ErrOutOfBounds; check
// Contains first when the coordinate may be off-grid.
// Complexity: O(1).
func (g *Grid[T]) TileAt(c coords.RowCol) *T {
	if !g.Contains(c) {
		panic(fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, c.Row, c.Col, g.rows, g.cols))
	}

	return &g.cells[c.Row][c.Col]
}

// All iterates every cell in row-major order, yielding the coordinate and a
// pointer to its tile. The sequence is finite and restartable.
// Complexity: O(rows×cols) per pass.
func (g *Grid[T]) All() iter.Seq2[coords.RowCol, *T] {
	return func(yield func(coords.RowCol, *T) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(coords.RowCol{Row: r, Col: c}, &g.cells[r][c]) {
					return
				}
			}
		}
	}
}

// AllCoords iterates every coordinate in row-major order.
func (g *Grid[T]) AllCoords() iter.Seq[coords.RowCol] {
	return func(yield func(coords.RowCol) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(coords.RowCol{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// AllTiles iterates a pointer to every tile in row-major order.
func (g *Grid[T]) AllTiles() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(&g.cells[r][c]) {
					return
				}
			}
		}
	}
}

// AdjacentCoords iterates the in-bounds neighbors of c in the fixed
// coords.Adjacent order. c itself need not be in bounds.
// Complexity: O(1) per pass.
func (g *Grid[T]) AdjacentCoords(c coords.RowCol, conn coords.Connectivity) iter.Seq[coords.RowCol] {
	return func(yield func(coords.RowCol) bool) {
		for _, n := range c.Adjacent(conn) {
			if !g.Contains(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// AdjacentTiles iterates pointers to the in-bounds neighboring tiles of c,
// in the fixed coords.Adjacent order.
func (g *Grid[T]) AdjacentTiles(c coords.RowCol, conn coords.Connectivity) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, n := range c.Adjacent(conn) {
			if !g.Contains(n) {
				continue
			}
			if !yield(&g.cells[n.Row][n.Col]) {
				return
			}
		}
	}
}
