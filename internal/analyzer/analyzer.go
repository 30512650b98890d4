package analyzer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/config"
	"github.com/passcheck/passcheck/internal/model"
	"github.com/passcheck/passcheck/internal/strength"
)

// Analyzer runs the full analysis for one candidate password: charset
// validation, composition profiling, brute-force estimation, tier
// classification, and suggestion generation.
//
// An Analyzer is immutable after construction and safe for concurrent
// use; each Analyze call is independent and builds only transient state.
type Analyzer struct {
	estimator *strength.Estimator
	logger    *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets a custom logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// New creates an Analyzer from the configuration. It returns a
// configuration error if the hash rate is not positive or the tier
// thresholds are not strictly ascending.
func New(cfg *config.Config, opts ...Option) (*Analyzer, error) {
	estimator, err := strength.NewEstimator(cfg.HashRate, cfg.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("invalid analyzer configuration: %w", err)
	}

	a := &Analyzer{estimator: estimator}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}

	return a, nil
}

// Analyze profiles the password, estimates its brute-force break time,
// and returns the structured report. It returns ErrInvalidCharacter when
// the password contains a character outside every defined class.
//
// The call is pure apart from the report timestamp: the same password and
// configuration always produce the same profile, estimate, tier, and
// suggestions.
func (a *Analyzer) Analyze(password string) (*model.Report, error) {
	if !charset.IsValid(password) {
		return nil, ErrInvalidCharacter
	}

	profile := charset.NewProfile(password)
	combinations := strength.Combinations(profile)
	seconds := a.estimator.BreakSeconds(combinations)
	tier := a.estimator.Classify(seconds)

	report := &model.Report{
		Profile:      profile,
		Combinations: combinations,
		BreakSeconds: seconds,
		Tier:         tier,
		Suggestions:  strength.Suggestions(profile, tier),
		AnalyzedAt:   time.Now(),
	}

	a.logger.Debug("analysis complete",
		"length", profile.Length,
		"tier", tier.String(),
		"break_time", report.BreakTime(),
	)

	return report, nil
}
