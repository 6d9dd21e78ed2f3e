package wireio

import "errors"

// Sentinel errors for wireio operations.
var (
	// ErrBadHeader indicates the "dim_y dim_x" header line was malformed.
	ErrBadHeader = errors.New("wireio: malformed dimension header")
	// ErrBadWireCount indicates the num_wires line was malformed.
	ErrBadWireCount = errors.New("wireio: malformed wire count")
	// ErrBadWireLine indicates a "sx sy ex ey" wire line was malformed.
	ErrBadWireLine = errors.New("wireio: malformed wire line")
	// ErrTruncated indicates the session file ended before the declared
	// count of wires was read.
	ErrTruncated = errors.New("wireio: file truncated")
)
