// Package tilegrid is an in-memory toolkit for reasoning about rectangular
// tile maps — coordinates, grids, masks, and the traversals game logic
// asks of them.
//
// 🚀 What is tilegrid?
//
//	A small, dependency-light library that brings together:
//		• Coordinate primitives: RowCol grid positions & Pixel points, kept
//		  as distinct types so the two spaces never mix silently
//		• Grid[T]: a shape-immutable, generically-typed tile store with
//		  row-major iteration and in-place tile mutation
//		• Masks: rectangular boolean brushes placed by corner or by center,
//		  clipped silently at the map edge
//		• Algorithms: enclosure detection, lazy flood fill, region
//		  partitioning, and A* shortest path with a tile cost function
//		• Orthomap: the one place pixel space and grid space meet
//
// ✨ Why choose tilegrid?
//
//   - Loader-agnostic – feed it any rectangular [][]T your map format
//     produces; parsing stays outside
//   - Renderer-agnostic – every query returns coordinates or tile pointers
//     for your draw/effect/passability code to consume
//   - Pure Go – no cgo, no hidden deps
//   - Flat and fast – visited sets and path nodes are per-call flat arrays
//     indexed row*cols+col, never maps
//
// Everything is organized under four subpackages:
//
//	coords/    — RowCol & Pixel types, adjacency, spans, Manhattan distance
//	grid/      — Grid[T], Mask, selection and adjacency queries
//	algorithm/ — Enclosed, Flood, Regions, ShortestPath
//	orthomap/  — pixel↔grid translation for orthogonal maps
//
// Quick ASCII example:
//
//	# # # # #
//	# . . # .
//	# . . # .
//	# # # # #
//
//	the 2×2 room is Enclosed; the right corridor leaks to the edge.
//
// Non-orthogonal topologies (isometric, hexagonal) and map-file parsing are
// out of scope by design. See the examples/ directory for runnable demos.
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
