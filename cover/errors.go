package cover

import "errors"

// Sentinel errors. Match with errors.Is; call sites may wrap them with the
// offending index or phase.
var (
	// ErrInsufficientPoints is returned when fewer than two points are
	// supplied: two distinct centers cannot be chosen.
	ErrInsufficientPoints = errors.New("cover: at least two points are required")

	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("cover: coordinate is NaN or infinite")

	// ErrInvalidRadius is returned by SelectPair when a radius is NaN,
	// infinite or negative.
	ErrInvalidRadius = errors.New("cover: radius must be finite and non-negative")

	// ErrCoverageViolated is returned by Verify when a circle holds fewer
	// than ceil(n/2) points.
	ErrCoverageViolated = errors.New("cover: circle covers less than half of the points")
)
