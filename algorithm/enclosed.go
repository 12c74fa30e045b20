package algorithm

import (
	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// Enclosed reports the connected region of non-wall cells around origin,
// but only when that region is fully sealed: the instant the flood would
// step off the grid edge, the whole region is deemed leaky and the result
// is nil, regardless of how many cells were visited. An origin that is out
// of bounds or sits on a wall yields nil immediately.
//
// Connectivity cuts both ways: under Conn8 the flood also escapes through
// diagonal gaps, so a cell sealed orthogonally but open diagonally is
// enclosed under Conn4 and NOT enclosed under Conn8.
//
// The flood runs on an explicit worklist, not recursion, so stack depth is
// bounded on arbitrarily large grids. The visited set is a flat []bool
// indexed row*Cols+col, allocated per call.
//
// Time: O(W×H×d). Memory: O(W×H).
func Enclosed[T any](isWall func(T) bool, g *grid.Grid[T], origin coords.RowCol, conn coords.Connectivity) []coords.RowCol {
	if !g.Contains(origin) || isWall(*g.TileAt(origin)) {
		return nil
	}

	cols := g.Cols()
	seen := make([]bool, g.Rows()*cols)
	seen[origin.Row*cols+origin.Col] = true
	stack := []coords.RowCol{origin}
	visited := make([]coords.RowCol, 0, 16)
	leaked := false

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited = append(visited, cur)

		for _, n := range cur.Adjacent(conn) {
			if !g.Contains(n) {
				// The region touches the grid edge; keep exploring so the
				// full extent is examined, but the result is already void.
				leaked = true
				continue
			}
			if isWall(*g.TileAt(n)) {
				continue
			}
			i := n.Row*cols + n.Col
			if seen[i] {
				continue
			}
			seen[i] = true
			stack = append(stack, n)
		}
	}

	if leaked {
		return nil
	}

	return visited
}

// EnclosedTiles is Enclosed mapped to tile pointers.
func EnclosedTiles[T any](isWall func(T) bool, g *grid.Grid[T], origin coords.RowCol, conn coords.Connectivity) []*T {
	region := Enclosed(isWall, g, origin, conn)
	if region == nil {
		return nil
	}
	tiles := make([]*T, len(region))
	for i, c := range region {
		tiles[i] = g.TileAt(c)
	}

	return tiles
}
