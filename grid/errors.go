package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimensions indicates dimX or dimY is non-positive.
	ErrBadDimensions = errors.New("grid: dim_x and dim_y must be positive")
	// ErrOutOfBounds indicates a cell lies outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
)
