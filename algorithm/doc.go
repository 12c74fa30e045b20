// Package algorithm implements traversal and search over a tile grid:
// enclosure detection, flood fill, region partitioning, and A* shortest
// path.
//
// What:
//
//   - Enclosed / EnclosedTiles: flood from an origin across non-wall cells
//     and report the region only when it never touches the grid edge. A
//     region that leaks to the edge reports as empty, no matter how much of
//     it was explored.
//   - Flood / FloodTiles: lazy, predicate-driven flood fill. Emits each
//     qualifying connected cell exactly once; emission order follows the
//     internal stack and is not a contract.
//   - Regions: partitions the whole grid into maximal predicate-satisfying
//     connected regions (row-major discovery order).
//   - ShortestPath: A* over 4-connected cells with a caller-supplied tile
//     cost function and a Manhattan heuristic.
//
// Why:
//
//   - These are the queries game logic actually asks of a map: "is this room
//     sealed?", "what does the paint bucket hit?", "how does the unit get
//     there?".
//   - All per-call state (visited flags, path nodes) lives in flat slices
//     indexed row*Cols+col, allocated per invocation and discarded after.
//
// Semantics worth noting:
//
//   - Enclosure vs. flood connectivity: under Conn8 a diagonal gap lets the
//     flood escape, so a cell sealed orthogonally but open diagonally is
//     enclosed under Conn4 yet NOT enclosed under Conn8.
//   - The Manhattan heuristic is admissible only when every tile cost is at
//     least 1; that is a documented caller obligation, not a checked one.
//   - ShortestPath expands 4-connected neighbors only; Conn8 plays no role
//     in path expansion.
//   - Mutating tile values while a predicate-driven traversal is underway
//     has unspecified effect on that traversal; finish the pass first.
//
// Complexity (W×H grid, d = 4 or 8):
//
//   - Enclosed, Flood, Regions: O(W×H×d) time, O(W×H) memory.
//   - ShortestPath: O(W×H log(W×H)) time, O(W×H) memory.
//
// Options (ShortestPath, functional style):
//
//   - WithMaxCost(c): do not explore paths whose cost exceeds c.
//   - WithImpassableCost(t): treat tiles with cost ≥ t as walls.
//
// Errors:
//
//   - ErrOutOfBounds: a ShortestPath endpoint lies outside the grid.
//   - ErrNegativeCost: the cost function returned a negative value.
//   - ErrBadMaxCost, ErrBadImpassableCost: invalid option arguments
//     (delivered by panic from the option constructor).
package algorithm
