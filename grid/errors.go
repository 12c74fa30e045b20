package grid

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrEmptyMask indicates a mask pattern with no rows or no columns.
	ErrEmptyMask = errors.New("grid: mask must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates direct tile access outside the grid. It is
	// delivered by panic: out-of-bounds TileAt is a caller bug, not data.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
