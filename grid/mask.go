package grid

import (
	"iter"

	"github.com/katalvlaran/tilegrid/coords"
)

// Mask is a rectangular boolean pattern used to select grid cells relative
// to an origin. Masks follow the same shape rules as grids (non-empty, not
// jagged) and may extend past grid edges when placed; cells that fall
// outside the grid are silently dropped from every selection.
type Mask struct {
	rows, cols int
	cells      [][]bool
}

// NewMask constructs a Mask over a non-empty, rectangular bool slice. The
// mask adopts the backing rows. Returns ErrEmptyMask or ErrNonRectangular
// on shape violations.
// Complexity: O(rows).
func NewMask(cells [][]bool) (Mask, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Mask{}, ErrEmptyMask
	}
	cols := len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return Mask{}, ErrNonRectangular
		}
	}

	return Mask{rows: len(cells), cols: cols, cells: cells}, nil
}

// MakeMask allocates an all-false mask of the given shape. rows and cols
// must be positive; otherwise ErrEmptyMask is returned.
func MakeMask(rows, cols int) (Mask, error) {
	if rows <= 0 || cols <= 0 {
		return Mask{}, ErrEmptyMask
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, cols)
	}

	return Mask{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of mask rows.
func (m Mask) Rows() int { return m.rows }

// Cols returns the number of mask columns.
func (m Mask) Cols() int { return m.cols }

// At reports the mask bit at (row, col) in mask-local coordinates.
func (m Mask) At(row, col int) bool { return m.cells[row][col] }

// Set writes the mask bit at (row, col) in mask-local coordinates.
func (m Mask) Set(row, col int, v bool) { m.cells[row][col] = v }

// centerOffset translates a center placement into a top-left offset:
// center - (rows/2, cols/2), floor division.
func (m Mask) centerOffset(center coords.RowCol) coords.RowCol {
	return center.Sub(coords.RowCol{Row: m.rows / 2, Col: m.cols / 2})
}

// MaskCoords iterates the in-bounds grid coordinates covered by the set
// bits of mask, with the mask's top-left corner placed at offset. Cells are
// visited in row-major mask order; off-grid cells are dropped, never an
// error.
// Complexity: O(maskRows×maskCols) per pass.
func (g *Grid[T]) MaskCoords(offset coords.RowCol, mask Mask) iter.Seq[coords.RowCol] {
	return func(yield func(coords.RowCol) bool) {
		for mr := 0; mr < mask.rows; mr++ {
			for mc := 0; mc < mask.cols; mc++ {
				if !mask.cells[mr][mc] {
					continue
				}
				c := coords.RowCol{Row: offset.Row + mr, Col: offset.Col + mc}
				if !g.Contains(c) {
					continue
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

// MaskTiles is MaskCoords mapped to tile pointers.
func (g *Grid[T]) MaskTiles(offset coords.RowCol, mask Mask) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for c := range g.MaskCoords(offset, mask) {
			if !yield(&g.cells[c.Row][c.Col]) {
				return
			}
		}
	}
}

// MaskCoordsAround is MaskCoords with the mask centered on center: the
// top-left offset becomes center - (rows/2, cols/2), floor division.
func (g *Grid[T]) MaskCoordsAround(center coords.RowCol, mask Mask) iter.Seq[coords.RowCol] {
	return g.MaskCoords(mask.centerOffset(center), mask)
}

// MaskTilesAround is MaskTiles with the mask centered on center.
func (g *Grid[T]) MaskTilesAround(center coords.RowCol, mask Mask) iter.Seq[*T] {
	return g.MaskTiles(mask.centerOffset(center), mask)
}

// CreateMask fills the caller-provided mask out by evaluating fn on the tile
// under each mask cell, with the mask's top-left corner placed at offset.
// Mask cells whose source coordinate falls outside the grid are set to
// false without invoking fn.
// Complexity: O(maskRows×maskCols).
func (g *Grid[T]) CreateMask(fn func(T) bool, offset coords.RowCol, out *Mask) {
	for mr := 0; mr < out.rows; mr++ {
		for mc := 0; mc < out.cols; mc++ {
			src := coords.RowCol{Row: offset.Row + mr, Col: offset.Col + mc}
			if g.Contains(src) {
				out.cells[mr][mc] = fn(g.cells[src.Row][src.Col])
			} else {
				out.cells[mr][mc] = false
			}
		}
	}
}
