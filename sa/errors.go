package sa

import "errors"

// Error kinds returned by the estimator and the decision-analysis helpers.
// Callers match them with errors.Is; messages carry the offending values.
//
// A constant model is not an error kind: its zero total variance surfaces
// as NaN or Inf indices.
var (
	// ErrConfiguration reports an invalid analysis setup: factor count
	// mismatch, non-positive run count, or a sampling range with max < min.
	ErrConfiguration = errors.New("configuration error")

	// ErrDimension reports vectors or matrices whose lengths disagree.
	ErrDimension = errors.New("dimension mismatch")
)
