// Package grid wraps a rectangular 2D store of caller-defined tiles and
// answers spatial queries over it.
//
// What:
//
//   - Grid[T]: a shape-immutable, non-jagged tile store. Tiles themselves
//     stay mutable through the pointers TileAt returns; rows and columns are
//     fixed at construction.
//   - Row-major iteration: All, AllCoords, AllTiles as restartable iter.Seq
//     sequences.
//   - Mask selection: a rectangular boolean Mask placed by its top-left
//     corner (MaskCoords/MaskTiles) or by its center (…Around variants)
//     selects the in-bounds cells under its set bits.
//   - Adjacency: AdjacentCoords/AdjacentTiles filter the fixed-order
//     coords.Adjacent enumeration to in-bounds cells.
//   - CreateMask: stamps a predicate over a window of the grid into a
//     caller-provided Mask.
//
// Why:
//
//   - Game code keeps its own tile payload (terrain kind, sprite region,
//     occupancy); the grid only owns shape and addressing, so T is opaque.
//   - Masks and windows may hang off the edge of the grid on purpose: a
//     cursor-centered brush near the border simply selects fewer cells.
//
// Edge policy: every mask/window/adjacency query silently drops
// out-of-bounds positions. Only direct TileAt access is strict - it panics
// on an out-of-bounds coordinate, because that always indicates a caller
// bug rather than data.
//
// Complexity: construction O(rows); Contains/TileAt O(1); iteration and
// mask queries O(cells visited).
//
// Errors:
//
//   - ErrEmptyGrid, ErrEmptyMask: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrOutOfBounds: wrapped in the panic raised by TileAt.
package grid
