package estimator

import "errors"

// Sentinel kinds for estimator errors.
var (
	// ErrInvalidInput marks a violated precondition: an out-of-range
	// quantity or an unknown fuel/diet variant. Inputs are rejected before
	// computation, never clamped.
	ErrInvalidInput = errors.New("invalid input")
)
