package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrInvalidHashRate is returned when the attacker hash rate is zero
	// or negative. The break-time estimate divides combinations by the
	// hash rate, so a non-positive value would be a silent division by
	// zero.
	ErrInvalidHashRate = errors.New("invalid hash rate: must be positive")

	// ErrThresholdsNotAscending is returned when the tier boundaries are
	// not strictly ascending. Unordered boundaries would leave gaps or
	// overlaps in the tier partition.
	ErrThresholdsNotAscending = errors.New("invalid tier thresholds: must be strictly ascending")

	// ErrInvalidBatchSize is returned when the batch size is not
	// positive. A batch size of zero would mean no concurrent analyses,
	// effectively stopping a list audit.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and
	// --markdown are specified. Only one output format can be used at a
	// time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
