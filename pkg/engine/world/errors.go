package world

import "errors"

var (
	// ErrOutsideMap indicates a coordinate or linear index outside the grid.
	ErrOutsideMap = errors.New("world: position is outside the map")
	// ErrInvalidDimensions indicates a grid with zero or negative width or height.
	ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")
)
