package placement

import "errors"

// Sentinel errors for placement operations.
var (
	// ErrNoWires indicates a session was requested with zero wires.
	ErrNoWires = errors.New("placement: wire count must be positive")
	// ErrBadDimensions indicates a non-positive grid dimension was requested.
	ErrBadDimensions = errors.New("placement: grid dimensions must be positive")
)
