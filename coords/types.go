// Package coords defines core coordinate types and sentinel errors
// for the coords subpackage of github.com/katalvlaran/tilegrid.
package coords

import "errors"

// Sentinel errors for coords operations.
var (
	// ErrOverflow indicates a pixel component cannot be represented in the
	// requested target numeric type.
	ErrOverflow = errors.New("coords: pixel component overflows target type")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, W, E, S.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: NW, N, NE, W, E, SW, S, SE.
	Conn8
)

// RowCol is a discrete grid coordinate. Row grows downward, Col grows
// rightward. Both components are signed: a RowCol may lie outside any
// particular grid, and bounds are always checked by the grid, never here.
type RowCol struct {
	Row, Col int
}

// Add returns c + o component-wise.
func (c RowCol) Add(o RowCol) RowCol {
	return RowCol{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns c - o component-wise.
func (c RowCol) Sub(o RowCol) RowCol {
	return RowCol{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Mul returns c * o component-wise.
func (c RowCol) Mul(o RowCol) RowCol {
	return RowCol{Row: c.Row * o.Row, Col: c.Col * o.Col}
}

// Div returns c / o component-wise. Integer division truncates toward zero;
// a zero component in o panics, as ordinary Go division does.
func (c RowCol) Div(o RowCol) RowCol {
	return RowCol{Row: c.Row / o.Row, Col: c.Col / o.Col}
}

// Scale returns c with both components multiplied by k.
func (c RowCol) Scale(k int) RowCol {
	return RowCol{Row: c.Row * k, Col: c.Col * k}
}

// ScaleDiv returns c with both components divided by k, truncating toward
// zero. k must be non-zero.
func (c RowCol) ScaleDiv(k int) RowCol {
	return RowCol{Row: c.Row / k, Col: c.Col / k}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b RowCol) int {
	dr := a.Row - b.Row
	if dr < 0 {
		dr = -dr
	}
	dc := a.Col - b.Col
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// Pixel is a continuous 2D point in pixel space, in the same units as tile
// width/height. It is a distinct type from RowCol so that grid-space and
// pixel-space values cannot be mixed accidentally.
type Pixel struct {
	X, Y float64
}

// Add returns p + o component-wise.
func (p Pixel) Add(o Pixel) Pixel {
	return Pixel{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o component-wise.
func (p Pixel) Sub(o Pixel) Pixel {
	return Pixel{X: p.X - o.X, Y: p.Y - o.Y}
}
