// Package orthomap translates between pixel positions and grid coordinates
// on orthogonal tile maps.
package orthomap

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// Sentinel errors for orthomap construction.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to New.
	ErrNilGrid = errors.New("orthomap: grid is nil")
	// ErrBadTileSize indicates a non-positive tile width or height.
	ErrBadTileSize = errors.New("orthomap: tile width and height must be positive")
)

// Map pairs a tile grid with the pixel dimensions of one tile. It owns no
// pixels and no tiles of its own; it only does the arithmetic between the
// two coordinate spaces.
type Map[T any] struct {
	grid         *grid.Grid[T]
	tileW, tileH int
}

// New wraps g with tile dimensions in pixels. Returns ErrNilGrid when g is
// nil and ErrBadTileSize when either dimension is not positive.
func New[T any](g *grid.Grid[T], tileWidth, tileHeight int) (*Map[T], error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadTileSize, tileWidth, tileHeight)
	}

	return &Map[T]{grid: g, tileW: tileWidth, tileH: tileHeight}, nil
}

// Grid returns the wrapped grid.
func (m *Map[T]) Grid() *grid.Grid[T] { return m.grid }

// TileWidth returns the tile width in pixels.
func (m *Map[T]) TileWidth() int { return m.tileW }

// TileHeight returns the tile height in pixels.
func (m *Map[T]) TileHeight() int { return m.tileH }

// CoordAtPoint maps a pixel position to the grid coordinate of the tile it
// falls in: floor(y/tileH) for the row, floor(x/tileW) for the column. No
// bounds check: an off-map point yields an off-grid coordinate (negative or
// past the last row/col), and the caller decides what that means. Floor
// matters for negative pixels: x = -0.5 is column -1, not column 0.
func (m *Map[T]) CoordAtPoint(p coords.Pixel) coords.RowCol {
	return coords.RowCol{
		Row: int(math.Floor(p.Y / float64(m.tileH))),
		Col: int(math.Floor(p.X / float64(m.tileW))),
	}
}

// ContainsPoint reports whether p falls inside the map's pixel extent.
func (m *Map[T]) ContainsPoint(p coords.Pixel) bool {
	return m.grid.Contains(m.CoordAtPoint(p))
}

// TileAtPoint returns a pointer to the tile under p. Like grid.TileAt it is
// the strict access path: a point outside the map panics with an error
// wrapping grid.ErrOutOfBounds. Check ContainsPoint first for points that
// may be off-map.
func (m *Map[T]) TileAtPoint(p coords.Pixel) *T {
	return m.grid.TileAt(m.CoordAtPoint(p))
}

// TileOffset returns the pixel position of the top-left corner of the tile
// at c: (col*tileW, row*tileH). Valid for off-grid coordinates too; the
// arithmetic does not care.
func (m *Map[T]) TileOffset(c coords.RowCol) coords.Pixel {
	return coords.Pixel{
		X: float64(c.Col * m.tileW),
		Y: float64(c.Row * m.tileH),
	}
}

// TileCenter returns the tile's top-left corner shifted by half a tile,
// with integer halving (a 9-pixel tile centers at offset 4).
func (m *Map[T]) TileCenter(c coords.RowCol) coords.Pixel {
	off := m.TileOffset(c)

	return coords.Pixel{
		X: off.X + float64(m.tileW/2),
		Y: off.Y + float64(m.tileH/2),
	}
}
