package domain

import "errors"

// Failure kinds surfaced by the emission engine. Stages wrap these with context;
// callers branch on them with errors.Is.
var (
	ErrLocationNotFound     = errors.New("location not found")
	ErrInvalidLocation      = errors.New("invalid location")
	ErrDegenerateRoute      = errors.New("origin and destination are the same location")
	ErrUnknownTransportMode = errors.New("unknown transport mode")
	ErrInvalidQuantity      = errors.New("invalid quantity")

	// ErrPolicyGap means a route class has no candidate strategies. It is a
	// configuration bug and must never be replaced by a default strategy.
	ErrPolicyGap = errors.New("no candidate strategies for route class")
)
