package grid

import "errors"

// Domain errors for mesh construction.
var (
	// ErrInvalidDomain indicates non-finite or inverted domain bounds.
	ErrInvalidDomain = errors.New("grid: invalid domain bounds")

	// ErrInvalidResolution indicates fewer than two samples along an axis.
	ErrInvalidResolution = errors.New("grid: resolution must be at least 2 points per axis")
)
