// Package orthomap composes a tile grid with pixel-space tile sizing for
// orthogonal (rectangular, axis-aligned) maps.
//
// What:
//
//   - Map[T]: a *grid.Grid[T] plus integer tile width/height in pixels.
//   - CoordAtPoint: pixel position → grid coordinate (floor division; off-map
//     points yield off-grid coordinates, deliberately unchecked).
//   - ContainsPoint / TileAtPoint: bounds-checked pixel-space access.
//   - TileOffset / TileCenter: grid coordinate → pixel position of a tile's
//     top-left corner or center.
//
// Why:
//
//   - Renderers and input handlers live in pixel space; grid logic lives in
//     row/col space. This wrapper is the single place the two meet, so the
//     conversion arithmetic exists exactly once.
//   - CoordAtPoint uses floor, not truncation: a point just left of the map
//     lands in column -1, not column 0.
//
// Non-orthogonal topologies (isometric, hexagonal) are out of scope.
//
// Complexity: every operation is O(1).
//
// Errors:
//
//   - ErrNilGrid: constructed without a grid.
//   - ErrBadTileSize: non-positive tile width or height.
//   - grid.ErrOutOfBounds: wrapped in the panic raised by TileAtPoint.
package orthomap
