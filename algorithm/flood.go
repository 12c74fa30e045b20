package algorithm

import (
	"iter"

	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// Flood lazily floods the connected region around origin whose tiles
// satisfy pred, under conn connectivity. Unlike Enclosed there is no edge
// rule: the flood simply covers everything reachable. Each qualifying cell
// is yielded exactly once; the order is a side effect of the stack
// discipline and not a contract. An origin failing pred (or out of bounds)
// yields nothing.
//
// The sequence advances lazily: frontier entries that turn out to be out of
// bounds, already visited, or failing pred are skipped when reached, and
// the predicate reads tile values at traversal time. Mutating tiles while a
// pass is underway therefore has unspecified effect on it.
//
// Each range over the returned sequence allocates fresh visited state and
// re-floods from scratch.
//
// Time: O(W×H×d) per pass. Memory: O(W×H).
func Flood[T any](pred func(T) bool, g *grid.Grid[T], origin coords.RowCol, conn coords.Connectivity) iter.Seq[coords.RowCol] {
	return func(yield func(coords.RowCol) bool) {
		cols := g.Cols()
		seen := make([]bool, g.Rows()*cols)
		frontier := []coords.RowCol{origin}

		for len(frontier) > 0 {
			cur := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			// Skip forward past stale frontier entries.
			if !g.Contains(cur) {
				continue
			}
			i := cur.Row*cols + cur.Col
			if seen[i] {
				continue
			}
			if !pred(*g.TileAt(cur)) {
				continue
			}
			seen[i] = true

			if !yield(cur) {
				return
			}
			frontier = append(frontier, cur.Adjacent(conn)...)
		}
	}
}

// FloodTiles is Flood mapped to tile pointers.
func FloodTiles[T any](pred func(T) bool, g *grid.Grid[T], origin coords.RowCol, conn coords.Connectivity) iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for c := range Flood(pred, g, origin, conn) {
			if !yield(g.TileAt(c)) {
				return
			}
		}
	}
}
