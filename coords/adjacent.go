package coords

// Neighbor offsets, precomputed once per connectivity.
// The order is a documented contract: Conn4 yields N, W, E, S; Conn8 yields
// NW, N, NE, W, E, SW, S, SE (orthogonal directions in the same relative
// positions, diagonals interleaved).
var (
	offsets4 = [4]RowCol{
		{Row: -1, Col: 0}, // N
		{Row: 0, Col: -1}, // W
		{Row: 0, Col: 1},  // E
		{Row: 1, Col: 0},  // S
	}
	offsets8 = [8]RowCol{
		{Row: -1, Col: -1}, // NW
		{Row: -1, Col: 0},  // N
		{Row: -1, Col: 1},  // NE
		{Row: 0, Col: -1},  // W
		{Row: 0, Col: 1},   // E
		{Row: 1, Col: -1},  // SW
		{Row: 1, Col: 0},   // S
		{Row: 1, Col: 1},   // SE
	}
)

// Offsets returns the neighbor offset set for conn, in contract order.
// The returned slice is shared; callers must not modify it.
// Complexity: O(1).
func Offsets(conn Connectivity) []RowCol {
	if conn == Conn8 {
		return offsets8[:]
	}

	return offsets4[:]
}

// Adjacent returns the neighboring coordinates of c in a fixed order:
// N, W, E, S under Conn4; NW, N, NE, W, E, SW, S, SE under Conn8.
// Neighbors are enumerated unconditionally; bounds filtering is the
// caller's (usually the grid's) concern.
// Complexity: O(1), allocates the 4- or 8-element result.
func (c RowCol) Adjacent(conn Connectivity) []RowCol {
	offs := Offsets(conn)
	out := make([]RowCol, len(offs))
	for i, d := range offs {
		out[i] = c.Add(d)
	}

	return out
}
