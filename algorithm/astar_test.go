package algorithm_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tilegrid/algorithm"
	"github.com/katalvlaran/tilegrid/coords"
	"github.com/katalvlaran/tilegrid/grid"
)

// ShortestPathSuite exercises the A* implementation under various terrains.
type ShortestPathSuite struct {
	suite.Suite
}

// unit prices every floor tile at 1 and every wall tile at the impassable
// threshold used throughout the suite.
const wallCost = 1000

func unit(v int) int {
	if v == 1 {
		return wallCost
	}

	return 1
}

func (s *ShortestPathSuite) grid(rows [][]int) *grid.Grid[int] {
	g, err := grid.New(rows)
	require.NoError(s.T(), err)

	return g
}

// pathCost sums the unit cost over a returned path.
func (s *ShortestPathSuite) pathCost(g *grid.Grid[int], path []coords.RowCol) int {
	total := 0
	for _, c := range path {
		total += unit(*g.TileAt(c))
	}

	return total
}

// TestDetour verifies that with the direct route walled off, the path takes
// the known-optimal indirect route.
func (s *ShortestPathSuite) TestDetour() {
	g := s.grid([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	start := coords.RowCol{Row: 0, Col: 0}
	end := coords.RowCol{Row: 0, Col: 2}

	path, err := algorithm.ShortestPath(unit, g, start, end, algorithm.WithImpassableCost(wallCost))
	require.NoError(s.T(), err)
	// Down the left edge, across the bottom, up the right edge: 6 steps.
	require.Len(s.T(), path, 6)
	require.Equal(s.T(), end, path[len(path)-1], "path must end at end")
	require.NotContains(s.T(), path, start, "path must exclude start")

	// Every step is 4-connected and on a floor tile.
	prev := start
	for _, c := range path {
		require.Equal(s.T(), 1, coords.Manhattan(prev, c), "non-adjacent step %v -> %v", prev, c)
		require.Equal(s.T(), 0, *g.TileAt(c), "path crosses wall at %v", c)
		prev = c
	}
}

// TestWeightedDetour verifies cost minimization beats step minimization:
// a 2-step route over cost-9 tiles loses to a 6-step unit route.
func (s *ShortestPathSuite) TestWeightedDetour() {
	g := s.grid([][]int{
		{0, 9, 0},
		{0, 9, 0},
		{0, 0, 0},
	})
	weighted := func(v int) int {
		if v == 9 {
			return 9
		}

		return 1
	}

	path, err := algorithm.ShortestPath(weighted, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 2})
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 6)
	total := 0
	for _, c := range path {
		total += weighted(*g.TileAt(c))
	}
	require.Equal(s.T(), 6, total, "optimal total cost")
}

// TestSameStartEnd verifies start == end returns an empty path, no error.
func (s *ShortestPathSuite) TestSameStartEnd() {
	g := s.grid([][]int{{0, 0}, {0, 0}})
	path, err := algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{})
	require.NoError(s.T(), err)
	require.Empty(s.T(), path)
}

// TestDisconnected verifies a fully walled-off target yields an empty path.
func (s *ShortestPathSuite) TestDisconnected() {
	g := s.grid([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	path, err := algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 2},
		algorithm.WithImpassableCost(wallCost))
	require.NoError(s.T(), err)
	require.Empty(s.T(), path)
}

// TestWithoutImpassable verifies that absent the threshold, an expensive
// wall is merely expensive: the only route crosses it and is still found.
func (s *ShortestPathSuite) TestWithoutImpassable() {
	g := s.grid([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	})
	path, err := algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 2})
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), path)
	require.Equal(s.T(), wallCost+1, s.pathCost(g, path), "one wall crossing plus one floor step")
}

// TestMaxCost verifies the exploration cap: unreachable under a tight cap,
// found at the exact optimum.
func (s *ShortestPathSuite) TestMaxCost() {
	g := s.grid([][]int{
		{0, 1, 0},
		{0, 1, 0},
		{0, 0, 0},
	})
	start, end := coords.RowCol{}, coords.RowCol{Row: 0, Col: 2}

	path, err := algorithm.ShortestPath(unit, g, start, end,
		algorithm.WithImpassableCost(wallCost), algorithm.WithMaxCost(5))
	require.NoError(s.T(), err)
	require.Empty(s.T(), path, "optimum costs 6; cap 5 must report unreachable")

	path, err = algorithm.ShortestPath(unit, g, start, end,
		algorithm.WithImpassableCost(wallCost), algorithm.WithMaxCost(6))
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 6)
}

// TestEndpointValidation verifies out-of-bounds endpoints fail fast.
func (s *ShortestPathSuite) TestEndpointValidation() {
	g := s.grid([][]int{{0, 0}})

	_, err := algorithm.ShortestPath(unit, g, coords.RowCol{Row: -1, Col: 0}, coords.RowCol{})
	require.ErrorIs(s.T(), err, algorithm.ErrOutOfBounds)

	_, err = algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 5})
	require.ErrorIs(s.T(), err, algorithm.ErrOutOfBounds)
}

// TestNegativeCost verifies a negative cost observed during expansion is
// rejected with ErrNegativeCost.
func (s *ShortestPathSuite) TestNegativeCost() {
	g := s.grid([][]int{{0, -1, 0}})
	bad := func(v int) int { return v }

	_, err := algorithm.ShortestPath(bad, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 2})
	require.ErrorIs(s.T(), err, algorithm.ErrNegativeCost)
}

// TestOptionPanics verifies option constructors reject invalid arguments.
func (s *ShortestPathSuite) TestOptionPanics() {
	require.PanicsWithValue(s.T(), algorithm.ErrBadMaxCost.Error(), func() {
		algorithm.WithMaxCost(-1)(&algorithm.Options{})
	})
	require.PanicsWithValue(s.T(), algorithm.ErrBadImpassableCost.Error(), func() {
		algorithm.WithImpassableCost(0)(&algorithm.Options{})
	})
}

// TestEqualCostOptima verifies that among several equal-cost routes the
// total cost is stable even though the exact cell sequence is
// implementation-defined.
func (s *ShortestPathSuite) TestEqualCostOptima() {
	g := s.grid([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	path, err := algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{Row: 2, Col: 2})
	require.NoError(s.T(), err)
	require.Len(s.T(), path, 4, "any optimal monotone staircase has 4 steps")

	// Determinism: repeated runs return the same path.
	again, err := algorithm.ShortestPath(unit, g, coords.RowCol{}, coords.RowCol{Row: 2, Col: 2})
	require.NoError(s.T(), err)
	require.Equal(s.T(), path, again)
}

func TestShortestPathSuite(t *testing.T) {
	suite.Run(t, new(ShortestPathSuite))
}

// TestShortestPath_ZeroCostTiles keeps the zero-cost edge case outside the
// suite: zero costs are legal (only negative ones fail), though they void
// the heuristic admissibility guarantee documented on ShortestPath.
func TestShortestPath_ZeroCostTiles(t *testing.T) {
	g, err := grid.New([][]int{{0, 0, 0}})
	require.NoError(t, err)

	path, err := algorithm.ShortestPath(func(int) int { return 0 }, g, coords.RowCol{}, coords.RowCol{Row: 0, Col: 2})
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, coords.RowCol{Row: 0, Col: 2}, path[len(path)-1])
}
