package model

import (
	"encoding/json"
	"math/big"
	"time"

	"github.com/passcheck/passcheck/internal/charset"
)

// Report is the structured result of analyzing one candidate password.
// It never contains the password itself.
//
// Design decision: Combinations and BreakSeconds use math/big because
// the search space grows as alphabet^length; a 20-character password over
// the full alphabet already exceeds uint64, and float64 saturates around
// length 150. Reports must stay exact at any input length.
type Report struct {
	// Profile is the composition profile of the analyzed password.
	Profile charset.Profile `json:"profile"`

	// Combinations is the estimated number of candidate passwords a
	// brute-force attacker must enumerate.
	Combinations *big.Int `json:"-"`

	// BreakSeconds is the estimated time in seconds to exhaust the
	// search space at the configured hash rate.
	BreakSeconds *big.Float `json:"-"`

	// Tier is the security tier derived from BreakSeconds.
	Tier Tier `json:"tier"`

	// Suggestions is the ordered list of improvement messages.
	// Order is a presentation contract and must be preserved.
	Suggestions []string `json:"suggestions"`

	// AnalyzedAt is the time the analysis ran.
	AnalyzedAt time.Time `json:"analyzed_at"`

	// Err holds a per-item failure message in batch mode, for example
	// when a list entry contains characters outside every class.
	// Empty for successful analyses.
	Err string `json:"error,omitempty"`
}

// reportJSON mirrors Report with text encodings for the big values.
type reportJSON struct {
	Profile      charset.Profile `json:"profile"`
	Combinations string          `json:"combinations"`
	BreakSeconds string          `json:"break_seconds"`
	BreakTime    string          `json:"break_time"`
	Tier         Tier            `json:"tier"`
	TierName     string          `json:"tier_name"`
	Suggestions  []string        `json:"suggestions"`
	AnalyzedAt   time.Time       `json:"analyzed_at"`
	Err          string          `json:"error,omitempty"`
}

// MarshalJSON encodes the report with the big values rendered as decimal
// strings so that consumers are not limited by 64-bit number ranges.
func (r *Report) MarshalJSON() ([]byte, error) {
	out := reportJSON{
		Profile:     r.Profile,
		Tier:        r.Tier,
		TierName:    r.Tier.String(),
		Suggestions: r.Suggestions,
		AnalyzedAt:  r.AnalyzedAt,
		Err:         r.Err,
	}

	if r.Combinations != nil {
		out.Combinations = r.Combinations.String()
	}
	if r.BreakSeconds != nil {
		out.BreakSeconds = r.BreakSeconds.Text('g', 6)
		out.BreakTime = FormatBreakTime(r.BreakSeconds)
	}

	return json.Marshal(out)
}

// BreakTime returns the human-readable break time for the report.
// Reports without an estimate (failed batch items) return an empty string.
func (r *Report) BreakTime() string {
	if r.BreakSeconds == nil {
		return ""
	}
	return FormatBreakTime(r.BreakSeconds)
}

// Failed reports whether the analysis produced an error instead of an
// estimate.
func (r *Report) Failed() bool {
	return r.Err != ""
}
