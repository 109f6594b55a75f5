package world

import "github.com/pkg/errors"

var (
	// ErrOutOfRange indicates an index or row/column outside the grid bounds.
	ErrOutOfRange = errors.New("world: position out of range")
	// ErrInvalidDimensions indicates a grid with a non-positive width or height.
	ErrInvalidDimensions = errors.New("world: grid dimensions must be positive")
)
