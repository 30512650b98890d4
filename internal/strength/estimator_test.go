package strength

import (
	"errors"
	"math/big"
	"testing"

	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/model"
)

// testThresholds is the ascending boundary quadruple used across the
// estimator tests: 1 second, 1 hour, 1 day, 1 year.
var testThresholds = [4]float64{1, 3600, 86400, 31536000}

// TestNewEstimator tests constructor validation.
func TestNewEstimator(t *testing.T) {
	t.Parallel()

	t.Run("valid configuration", func(t *testing.T) {
		t.Parallel()
		e, err := NewEstimator(1e9, testThresholds)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e == nil {
			t.Fatal("expected non-nil estimator")
		}
	})

	t.Run("zero hash rate", func(t *testing.T) {
		t.Parallel()
		if _, err := NewEstimator(0, testThresholds); !errors.Is(err, ErrInvalidHashRate) {
			t.Errorf("expected ErrInvalidHashRate, got %v", err)
		}
	})

	t.Run("negative hash rate", func(t *testing.T) {
		t.Parallel()
		if _, err := NewEstimator(-1, testThresholds); !errors.Is(err, ErrInvalidHashRate) {
			t.Errorf("expected ErrInvalidHashRate, got %v", err)
		}
	})

	t.Run("descending thresholds", func(t *testing.T) {
		t.Parallel()
		bad := [4]float64{3600, 1, 86400, 31536000}
		if _, err := NewEstimator(1e9, bad); !errors.Is(err, ErrThresholdsNotAscending) {
			t.Errorf("expected ErrThresholdsNotAscending, got %v", err)
		}
	})

	t.Run("equal adjacent thresholds", func(t *testing.T) {
		t.Parallel()
		bad := [4]float64{1, 1, 86400, 31536000}
		if _, err := NewEstimator(1e9, bad); !errors.Is(err, ErrThresholdsNotAscending) {
			t.Errorf("expected ErrThresholdsNotAscending, got %v", err)
		}
	})
}

// TestCombinations tests the search-space estimate, including the
// cumulative symbol slot weights and the length-zero identity.
func TestCombinations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		profile  charset.Profile
		expected *big.Int
	}{
		{
			name:     "empty profile yields the exponent identity",
			profile:  charset.Profile{},
			expected: big.NewInt(1),
		},
		{
			name:     "no class present with positive length yields zero",
			profile:  charset.Profile{Length: 3},
			expected: big.NewInt(0),
		},
		{
			name:     "lowercase only, length three",
			profile:  charset.Profile{Length: 3, Lower: true},
			expected: big.NewInt(26 * 26 * 26),
		},
		{
			name:     "digits only, length six",
			profile:  charset.Profile{Length: 6, Digits: true},
			expected: big.NewInt(1000000),
		},
		{
			name:     "high symbols weigh their own size",
			profile:  charset.Profile{Length: 1, HighSymbols: true},
			expected: big.NewInt(8),
		},
		{
			name:     "medium symbols weigh high plus medium",
			profile:  charset.Profile{Length: 1, MediumSymbols: true},
			expected: big.NewInt(13),
		},
		{
			name:     "low symbols weigh all three tiers",
			profile:  charset.Profile{Length: 1, LowSymbols: true},
			expected: big.NewInt(22),
		},
		{
			name: "symbol tiers stack cumulatively when combined",
			profile: charset.Profile{
				Length: 1, HighSymbols: true, MediumSymbols: true,
			},
			expected: big.NewInt(8 + 13),
		},
		{
			name: "all classes, length one",
			profile: charset.Profile{
				Length: 1, Digits: true, Lower: true, Upper: true,
				HighSymbols: true, MediumSymbols: true, LowSymbols: true,
			},
			expected: big.NewInt(10 + 26 + 26 + 8 + 13 + 22),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Combinations(tc.profile)
			if got.Cmp(tc.expected) != 0 {
				t.Errorf("Combinations(%+v) = %s, expected %s", tc.profile, got, tc.expected)
			}
		})
	}
}

// TestCombinationsExceedsUint64 tests that the estimate stays exact past
// the 64-bit range.
func TestCombinationsExceedsUint64(t *testing.T) {
	t.Parallel()

	p := charset.Profile{Length: 40, Lower: true}
	got := Combinations(p)

	expected := new(big.Int).Exp(big.NewInt(26), big.NewInt(40), nil)
	if got.Cmp(expected) != 0 {
		t.Errorf("Combinations = %s, expected %s", got, expected)
	}
	if got.IsUint64() {
		t.Error("expected 26^40 to exceed uint64")
	}
}

// TestCombinationsMonotonicInLength tests that adding characters never
// shrinks the search space for a fixed non-empty alphabet.
func TestCombinationsMonotonicInLength(t *testing.T) {
	t.Parallel()

	prev := big.NewInt(0)
	for length := 1; length <= 64; length++ {
		got := Combinations(charset.Profile{Length: length, Lower: true, Digits: true})
		if got.Cmp(prev) < 0 {
			t.Fatalf("combinations decreased at length %d: %s < %s", length, got, prev)
		}
		prev = got
	}
}

// TestCombinationsMonotonicInClasses tests that enabling more classes
// never shrinks the search space for a fixed length.
func TestCombinationsMonotonicInClasses(t *testing.T) {
	t.Parallel()

	profiles := []charset.Profile{
		{Length: 8, Digits: true},
		{Length: 8, Digits: true, Lower: true},
		{Length: 8, Digits: true, Lower: true, Upper: true},
		{Length: 8, Digits: true, Lower: true, Upper: true, HighSymbols: true},
		{Length: 8, Digits: true, Lower: true, Upper: true, HighSymbols: true, MediumSymbols: true},
		{Length: 8, Digits: true, Lower: true, Upper: true, HighSymbols: true, MediumSymbols: true, LowSymbols: true},
	}

	prev := big.NewInt(0)
	for i, p := range profiles {
		got := Combinations(p)
		if got.Cmp(prev) < 0 {
			t.Fatalf("combinations decreased at step %d: %s < %s", i, got, prev)
		}
		prev = got
	}
}

// TestBreakSeconds tests the combinations-to-seconds division.
func TestBreakSeconds(t *testing.T) {
	t.Parallel()

	e, err := NewEstimator(10, testThresholds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := e.BreakSeconds(big.NewInt(100))
	if got.Cmp(big.NewFloat(10)) != 0 {
		t.Errorf("BreakSeconds(100) at rate 10 = %v, expected 10", got)
	}

	// Sub-second estimates must not round to zero.
	got = e.BreakSeconds(big.NewInt(5))
	if got.Cmp(big.NewFloat(0.5)) != 0 {
		t.Errorf("BreakSeconds(5) at rate 10 = %v, expected 0.5", got)
	}
}

// TestClassify tests the tier partition at and around every boundary.
func TestClassify(t *testing.T) {
	t.Parallel()

	e, err := NewEstimator(1e9, testThresholds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testCases := []struct {
		name     string
		seconds  float64
		expected model.Tier
	}{
		{"zero seconds", 0, model.TierVeryWeak},
		{"below first boundary", 0.5, model.TierVeryWeak},
		{"at first boundary", 1, model.TierVeryWeak},
		{"just above first boundary", 1.5, model.TierWeak},
		{"at second boundary", 3600, model.TierWeak},
		{"just above second boundary", 3601, model.TierModerate},
		{"at third boundary", 86400, model.TierModerate},
		{"just above third boundary", 86401, model.TierStrong},
		{"at fourth boundary", 31536000, model.TierStrong},
		{"just above fourth boundary", 31536001, model.TierVeryStrong},
		{"far above fourth boundary", 1e18, model.TierVeryStrong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := e.Classify(big.NewFloat(tc.seconds))
			if got != tc.expected {
				t.Errorf("Classify(%v) = %v, expected %v", tc.seconds, got, tc.expected)
			}
		})
	}
}

// TestClassifyPartitionIsTotal tests that an arbitrary ascending
// threshold quadruple assigns exactly one tier to a sweep of values with
// no gaps or overlaps.
func TestClassifyPartitionIsTotal(t *testing.T) {
	t.Parallel()

	thresholds := [4]float64{2, 5, 11, 23}
	e, err := NewEstimator(1, thresholds)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev := model.TierVeryWeak
	for s := 0.0; s <= 30; s += 0.5 {
		tier := e.Classify(big.NewFloat(s))
		if tier < model.TierVeryWeak || tier > model.TierVeryStrong {
			t.Fatalf("Classify(%v) = %v, outside the tier range", s, tier)
		}
		if tier < prev {
			t.Fatalf("tier decreased at %v: %v after %v", s, tier, prev)
		}
		prev = tier
	}
	if prev != model.TierVeryStrong {
		t.Fatalf("sweep ended at %v, expected the top tier", prev)
	}
}
