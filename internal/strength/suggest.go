package strength

import (
	"github.com/passcheck/passcheck/internal/charset"
	"github.com/passcheck/passcheck/internal/model"
)

// MinRecommendedLength is the password length below which the length
// suggestion is emitted.
const MinRecommendedLength = 12

// Improvement messages. The set is fixed and single-locale.
const (
	// MsgAlreadyStrong is the only message emitted for top-tier passwords.
	MsgAlreadyStrong = "Your password is very strong against brute-force attacks. Good job!"

	// MsgIncreaseLength is emitted when the password is shorter than
	// MinRecommendedLength.
	MsgIncreaseLength = "Increase the length of your password. At least 12 characters are recommended."

	// MsgAddDigits is emitted when the password contains no digits.
	MsgAddDigits = "Include digits in your password for more variety."

	// MsgAddLowercase is emitted when the password contains no lowercase letters.
	MsgAddLowercase = "Include lowercase letters in your password."

	// MsgAddUppercase is emitted when the password contains no uppercase letters.
	MsgAddUppercase = "Include uppercase letters in your password."

	// MsgAddSymbols is emitted when the password contains no symbol of
	// any compatibility tier.
	MsgAddSymbols = "Add symbols (such as @, # or $) to increase complexity."
)

// tierMessages holds the tier-specific weakness message emitted first for
// every non-top tier.
var tierMessages = map[model.Tier]string{
	model.TierVeryWeak: "Your password is extremely weak against brute-force attacks. Change it immediately.",
	model.TierWeak:     "Your password is very weak against brute-force attacks. Improving it is strongly recommended.",
	model.TierModerate: "Your password is weak against brute-force attacks. It should be improved.",
	model.TierStrong:   "Your password is strong against brute-force attacks, but it can be made even stronger.",
}

// Suggestions returns the ordered improvement messages for a profile and
// its tier. The order is a presentation contract: the tier message comes
// first, followed by the length, digits, lowercase, uppercase, and symbol
// checks, each appended only when its condition holds. A top-tier
// password gets the single "already strong" message.
func Suggestions(p charset.Profile, tier model.Tier) []string {
	if tier == model.TierVeryStrong {
		return []string{MsgAlreadyStrong}
	}

	suggestions := []string{tierMessages[tier]}

	if p.Length < MinRecommendedLength {
		suggestions = append(suggestions, MsgIncreaseLength)
	}
	if !p.Digits {
		suggestions = append(suggestions, MsgAddDigits)
	}
	if !p.Lower {
		suggestions = append(suggestions, MsgAddLowercase)
	}
	if !p.Upper {
		suggestions = append(suggestions, MsgAddUppercase)
	}
	if !p.HasSymbol() {
		suggestions = append(suggestions, MsgAddSymbols)
	}

	return suggestions
}
