// Package coords provides the discrete and continuous coordinate primitives
// that the rest of tilegrid is built on.
//
// What:
//
//   - RowCol: a signed (row, column) grid coordinate with component-wise
//     arithmetic. Validity relative to a grid is the grid's concern, so a
//     RowCol may freely represent off-grid positions (a cursor left of the
//     map, a mask corner above row zero).
//   - Pixel: a continuous (x, y) point in pixel space. Pixel and RowCol are
//     deliberately distinct types; nothing in this module converts between
//     them implicitly.
//   - Adjacent: fixed-order neighbor enumeration under Conn4 or Conn8.
//   - Span: row-major iteration over a rectangle with per-end inclusivity.
//   - Manhattan: L1 distance between two coordinates.
//   - XY: checked projection of a Pixel into any caller numeric type.
//
// Why:
//
//   - Keeping row/col and x/y in separate types turns coordinate-space mixups
//     into compile errors instead of rendering bugs.
//   - The neighbor order (NW, N, NE, W, E, SW, S, SE) is a documented
//     contract: traversal results downstream depend on it.
//
// Complexity: all operations are O(1) except Span, which yields its
// coordinates in O(rows×cols).
//
// Errors:
//
//   - ErrOverflow: a pixel component does not fit the requested numeric type.
package coords
