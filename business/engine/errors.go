package engine

import "errors"

var (
	// ErrInvalidConstraints is returned before any filtering or scoring
	// when the request constraints cannot be scored (budget <= 0,
	// time_limit <= 0, slider outside [0,1]).
	ErrInvalidConstraints = errors.New("invalid constraints")

	// ErrInvalidPreset is returned for an unrecognized preset name.
	// Typos surface instead of silently falling back to defaults.
	ErrInvalidPreset = errors.New("invalid preset")
)
