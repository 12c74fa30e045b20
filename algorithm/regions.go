package algorithm

import (
	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// Regions partitions the grid into all maximal connected regions of cells
// satisfying pred, under conn connectivity. Regions are returned in
// row-major discovery order of their first cell; cells within a region are
// in BFS order from that cell. Cells failing pred belong to no region.
//
// Time: O(W×H×d). Memory: O(W×H).
func Regions[T any](pred func(T) bool, g *grid.Grid[T], conn coords.Connectivity) [][]coords.RowCol {
	rows, cols := g.Rows(), g.Cols()
	seen := make([]bool, rows*cols)
	var regions [][]coords.RowCol

	for start := range g.AllCoords() {
		if seen[start.Row*cols+start.Col] || !pred(*g.TileAt(start)) {
			continue
		}
		// BFS to collect the region.
		queue := []coords.RowCol{start}
		seen[start.Row*cols+start.Col] = true
		var region []coords.RowCol

		for qi := 0; qi < len(queue); qi++ {
			cur := queue[qi]
			region = append(region, cur)
			for _, n := range cur.Adjacent(conn) {
				if !g.Contains(n) || !pred(*g.TileAt(n)) {
					continue
				}
				i := n.Row*cols + n.Col
				if !seen[i] {
					seen[i] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, region)
	}

	return regions
}
