package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The attacker model defaults are deliberately pessimistic for the user:
// they assume a fast offline attack rather than a rate-limited online one.
const (
	// DefaultHashRate is the assumed attacker throughput in guesses per
	// second. 1e10 corresponds to a single modern GPU attacking a fast
	// unsalted hash. Users modelling slower KDFs (bcrypt, argon2) or
	// larger rigs should override it via --hash-rate or the config file.
	DefaultHashRate = 1e10

	// DefaultBatchSize of 10 concurrent analyses balances throughput
	// with ordered, readable output when auditing password lists.
	// Each analysis is pure CPU work, so there is little to gain from
	// very large values.
	DefaultBatchSize = 10

	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"
)

// DefaultThresholds are the tier boundaries in seconds: one minute, one
// day, one year, one century. A password whose estimated break time
// exceeds the last boundary classifies as the top tier.
//
// Design decision: boundaries are expressed in seconds rather than
// time.Duration because estimated break times routinely exceed the
// ~292-year range of a Duration.
var DefaultThresholds = [4]float64{
	60,         // 1 minute
	86400,      // 1 day
	31536000,   // 1 year
	3153600000, // 100 years
}

// Config holds all configuration options for passcheck.
// It is populated from CLI flags and the optional YAML config file, then
// passed through the application via dependency injection rather than
// global state.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is manageable, and nesting would add complexity
// without significant benefit.
type Config struct {
	// HashRate is the assumed attacker throughput in guesses per second.
	// Must be positive; the break-time estimate divides by it.
	HashRate float64

	// Thresholds are the four strictly ascending tier boundaries in
	// seconds used to classify estimated break times.
	Thresholds [4]float64

	// BatchSize is the number of concurrent analyses when auditing a
	// password list. Must be positive.
	BatchSize int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ShowPassword disables input masking during the interactive prompt.
	ShowPassword bool

	// SkipConfirm skips the confirmation gate before running the
	// analysis in interactive mode.
	SkipConfirm bool

	// JSONReport enables JSON report output instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// NoColor disables colored output in the human-readable report.
	NoColor bool

	// ReportFile is the output file path for the report. When set, the
	// report is written to this file in addition to stdout.
	ReportFile string

	// ConfigFilePath is the path to the configuration file. If empty,
	// the tool searches the standard locations (see FindConfigFile).
	ConfigFilePath string

	// ListFile is the path of a newline-separated password list to
	// audit in batch mode. Empty means single-password mode.
	ListFile string

	// Passwords are the candidate passwords given as positional
	// arguments. Empty means prompt interactively.
	Passwords []string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because the important defaults are non-zero (hash rate,
// thresholds, batch size). This also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		HashRate:   DefaultHashRate,
		Thresholds: DefaultThresholds,
		BatchSize:  DefaultBatchSize,
	}
}

// XDGConfigDir returns the XDG config directory for passcheck.
// On Linux: ~/.config/passcheck
// On macOS: ~/Library/Application Support/passcheck
// On Windows: %APPDATA%\passcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// The estimate divides by the hash rate; zero or negative rates are
	// meaningless and must fail loudly rather than produce infinities.
	if c.HashRate <= 0 {
		return ErrInvalidHashRate
	}

	// Classification needs a total, non-overlapping partition.
	for i := 1; i < len(c.Thresholds); i++ {
		if c.Thresholds[i] <= c.Thresholds[i-1] {
			return ErrThresholdsNotAscending
		}
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
