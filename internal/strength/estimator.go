package strength

import (
	"math/big"

	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/model"
)

// Estimator computes brute-force break times against a fixed attacker
// hash rate and classifies them into security tiers via ascending time
// thresholds. An Estimator is immutable after construction and safe for
// concurrent use.
type Estimator struct {
	// hashRate is the assumed attacker throughput in guesses per second.
	hashRate float64

	// thresholds are the four ascending tier boundaries in seconds.
	// Break times at or below thresholds[i] classify as Tier(i); a break
	// time above every boundary classifies as the top tier.
	thresholds [model.NumTiers - 1]float64
}

// NewEstimator creates an Estimator for the given hash rate and tier
// thresholds. It returns ErrInvalidHashRate if the hash rate is not
// positive and ErrThresholdsNotAscending if the thresholds do not form a
// strictly ascending sequence.
func NewEstimator(hashRate float64, thresholds [model.NumTiers - 1]float64) (*Estimator, error) {
	if hashRate <= 0 {
		return nil, ErrInvalidHashRate
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, ErrThresholdsNotAscending
		}
	}
	return &Estimator{hashRate: hashRate, thresholds: thresholds}, nil
}

// slotWeight returns the alphabet contribution of one class slot.
// The symbol slots are cumulative rather than independent: a password
// using medium-tier symbols is assumed to draw from the high and medium
// sets together, and low-tier usage implies all three. This intentionally
// over-counts when several symbol tiers are present at once; it is a
// coarse alphabet-growth heuristic inherited from the estimation model,
// not an exact alphabet size. Do not "fix" it to per-class sizes.
func slotWeight(c charset.Class) int64 {
	switch c {
	case charset.ClassDigits, charset.ClassLower, charset.ClassUpper, charset.ClassHighSymbols:
		return int64(charset.Size(c))
	case charset.ClassMediumSymbols:
		return int64(charset.Size(charset.ClassHighSymbols) + charset.Size(charset.ClassMediumSymbols))
	case charset.ClassLowSymbols:
		return int64(charset.Size(charset.ClassHighSymbols) +
			charset.Size(charset.ClassMediumSymbols) +
			charset.Size(charset.ClassLowSymbols))
	default:
		return 0
	}
}

// Combinations estimates the number of candidate passwords a brute-force
// attacker must enumerate for the given profile: the sum of the present
// slot weights raised to the power of the password length.
//
// Boundary conventions, asserted by tests:
//   - length 0 yields exactly 1 combination (exponent identity, including
//     the 0^0 case when no class is present)
//   - no class present with length > 0 yields 0 combinations
func Combinations(p charset.Profile) *big.Int {
	var alphabet int64
	for _, c := range charset.Classes() {
		if p.Has(c) {
			alphabet += slotWeight(c)
		}
	}

	return new(big.Int).Exp(
		big.NewInt(alphabet),
		big.NewInt(int64(p.Length)),
		nil,
	)
}

// BreakSeconds estimates the time in seconds to exhaust the given number
// of combinations at the estimator's hash rate. The result is exact to
// big.Float precision and never overflows to infinity.
func (e *Estimator) BreakSeconds(combinations *big.Int) *big.Float {
	return new(big.Float).Quo(
		new(big.Float).SetInt(combinations),
		big.NewFloat(e.hashRate),
	)
}

// Classify maps an estimated break time onto a security tier: the index
// of the first threshold the break time does not exceed, or the top tier
// when it exceeds all of them. The thresholds partition [0, infinity)
// totally and without overlap, so every non-negative input lands in
// exactly one tier.
func (e *Estimator) Classify(seconds *big.Float) model.Tier {
	for i, boundary := range e.thresholds {
		if seconds.Cmp(big.NewFloat(boundary)) <= 0 {
			return model.Tier(i)
		}
	}
	return model.TierVeryStrong
}
