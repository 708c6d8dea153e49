package starfield

import "errors"

var (
	// ErrAllocation reports that the surface or the star pool could not be allocated.
	ErrAllocation = errors.New("allocation failure")
	// ErrNotReady is returned by Run before a successful Init.
	ErrNotReady = errors.New("frame loop not ready")
)
