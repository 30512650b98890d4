package strength

import "errors"

// Estimator configuration errors.
// These are fatal to an analysis call and must never be silently
// swallowed: an estimator with a non-positive hash rate would divide by
// zero, and unordered thresholds would break the tier partition.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances at each validation site. This allows
// callers to use errors.Is() for programmatic handling while keeping the
// messages human-readable.
var (
	// ErrInvalidHashRate is returned when the configured attacker hash
	// rate is zero or negative. The estimate divides by the hash rate,
	// so a non-positive value has no meaning.
	ErrInvalidHashRate = errors.New("invalid hash rate: must be positive")

	// ErrThresholdsNotAscending is returned when the tier boundaries are
	// not strictly ascending. Classification requires a total,
	// non-overlapping partition of [0, infinity).
	ErrThresholdsNotAscending = errors.New("invalid tier thresholds: must be strictly ascending")
)
