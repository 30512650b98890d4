package model

// Tier represents the discrete security level assigned to a password
// based on its estimated brute-force break time. Tier 0 is the weakest,
// tier 4 the strongest.
//
// Design decision: We use iota-based constants rather than string
// constants for efficiency in comparisons and ordering. The String()
// method provides human-readable output when needed.
type Tier int

const (
	// TierVeryWeak indicates a password broken almost immediately.
	// Typical examples: short digit-only or lowercase-only passwords.
	TierVeryWeak Tier = iota

	// TierWeak indicates a password broken within the first boundary
	// window. Usually too short or drawn from a narrow alphabet.
	TierWeak

	// TierModerate indicates a password that resists casual attacks but
	// falls to a determined attacker within the second boundary window.
	TierModerate

	// TierStrong indicates a password that holds up well against
	// brute force but still has measurable weaknesses.
	TierStrong

	// TierVeryStrong indicates a password whose estimated break time
	// exceeds every configured boundary.
	TierVeryStrong
)

// String returns a human-readable representation of the tier.
func (t Tier) String() string {
	switch t {
	case TierVeryWeak:
		return "VERY WEAK"
	case TierWeak:
		return "WEAK"
	case TierModerate:
		return "MODERATE"
	case TierStrong:
		return "STRONG"
	case TierVeryStrong:
		return "VERY STRONG"
	default:
		return "UNKNOWN"
	}
}

// NumTiers is the number of defined security tiers. A classification
// needs exactly NumTiers-1 ascending boundaries.
const NumTiers = 5
