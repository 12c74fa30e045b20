package algorithm

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// ShortestPath runs A* from start to end. cost returns the non-negative
// price of stepping onto a tile; expansion is strictly 4-connected. The
// heuristic is the Manhattan distance to end, which is admissible only when
// every cost is ≥ 1 — a caller obligation, not an enforced one. Callers
// must also keep costs well under half the int range so summed g-scores
// cannot overflow.
//
// Returns the path in start→end order, excluding start and including end.
// A nil path with a nil error means "no path": start == end, the open set
// exhausted, or every route exceeds MaxCost. Errors:
//
//   - ErrOutOfBounds if either endpoint lies outside the grid.
//   - ErrNegativeCost if cost returns a negative value during expansion.
//
// Among equal-cost optima the returned path is implementation-defined
// (heap order with insertion sequence as the tie-break); only the total
// cost is stable.
//
// Per-cell search state lives in a flat node arena sized Rows×Cols,
// allocated per call. The open set is a min-heap with lazy decrease-key:
// improved cells are re-pushed and stale entries skipped when popped.
//
// Time: O(W×H log(W×H)). Memory: O(W×H).
func ShortestPath[T any](cost func(T) int, g *grid.Grid[T], start, end coords.RowCol, opts ...Option) ([]coords.RowCol, error) {
	// 1) Validate endpoints.
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: start (%d,%d)", ErrOutOfBounds, start.Row, start.Col)
	}
	if !g.Contains(end) {
		return nil, fmt.Errorf("%w: end (%d,%d)", ErrOutOfBounds, end.Row, end.Col)
	}
	if start == end {
		return nil, nil
	}

	// 2) Apply options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 3) Per-call search state: flat arena plus the open heap.
	cols := g.Cols()
	nodes := make([]pathNode, g.Rows()*cols)
	for i := range nodes {
		nodes[i].parent = -1
	}
	si := start.Row*cols + start.Col
	ei := end.Row*cols + end.Col

	nodes[si].open = true
	nodes[si].f = coords.Manhattan(start, end)
	pq := make(cellPQ, 0, 64)
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, &cellItem{cell: si, f: nodes[si].f, seq: seq})

	for pq.Len() > 0 {
		// 4) Pop the lowest-f open cell; drop stale lazy entries.
		item := heap.Pop(&pq).(*cellItem)
		cur := item.cell
		if nodes[cur].closed {
			continue
		}
		nodes[cur].closed = true

		// 5) Goal reached: walk parents from end back to (excluding) start.
		if cur == ei {
			return reconstruct(nodes, cols, si, ei), nil
		}

		// 6) Relax the four orthogonal neighbors.
		curCoord := coords.RowCol{Row: cur / cols, Col: cur % cols}
		for _, nb := range curCoord.Adjacent(coords.Conn4) {
			if !g.Contains(nb) {
				continue
			}
			ni := nb.Row*cols + nb.Col
			if nodes[ni].closed {
				continue
			}
			c := cost(*g.TileAt(nb))
			if c < 0 {
				return nil, fmt.Errorf("%w: cost at (%d,%d) = %d", ErrNegativeCost, nb.Row, nb.Col, c)
			}
			if c >= cfg.ImpassableCost {
				continue
			}
			tentative := nodes[cur].g + c
			if tentative > cfg.MaxCost {
				continue
			}
			// New cell, or a strictly better route to a known one.
			if nodes[ni].open && tentative >= nodes[ni].g {
				continue
			}
			nodes[ni].g = tentative
			nodes[ni].f = tentative + coords.Manhattan(nb, end)
			nodes[ni].parent = cur
			nodes[ni].open = true
			seq++
			heap.Push(&pq, &cellItem{cell: ni, f: nodes[ni].f, seq: seq})
		}
	}

	// 7) Open set exhausted without reaching end: no path.
	return nil, nil
}

// reconstruct follows parent pointers from end back to start and returns
// the cells in start→end order, excluding start.
func reconstruct(nodes []pathNode, cols, si, ei int) []coords.RowCol {
	var rev []coords.RowCol
	for at := ei; at != si; at = nodes[at].parent {
		rev = append(rev, coords.RowCol{Row: at / cols, Col: at % cols})
	}
	path := make([]coords.RowCol, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}

	return path
}

// pathNode is the per-cell search record: best known g-score, f-score,
// parent cell index, and open/closed flags. A cell with neither flag set
// has not been reached yet.
type pathNode struct {
	g, f   int
	parent int
	open   bool
	closed bool
}

// cellItem is one open-set entry: a cell index with the f-score it was
// pushed under and a monotone insertion sequence for deterministic
// tie-breaking.
type cellItem struct {
	cell int
	f    int
	seq  int
}

// cellPQ is a min-heap of *cellItem ordered by f ascending, insertion
// sequence ascending on ties. Lazy decrease-key: improving a cell pushes a
// fresh entry; stale ones are discarded when popped (closed check).
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less orders by f-score, then by insertion sequence for determinism.
func (pq cellPQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *cellItem.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
