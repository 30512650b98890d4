package charset

// Class identifies one of the character classes a password may draw from.
// Symbols are split into three "compatibility" tiers reflecting how widely
// password policies accept them: high-tier symbols are accepted almost
// everywhere, low-tier symbols are frequently rejected or need escaping.
//
// Design decision: We use iota-based constants rather than string keys
// so that class dispatch is a fixed enumerated iteration instead of the
// reflection-style attribute lookup the classes could otherwise invite.
type Class int

const (
	// ClassDigits is the decimal digits 0-9.
	ClassDigits Class = iota

	// ClassLower is the lowercase ASCII letters a-z.
	ClassLower

	// ClassUpper is the uppercase ASCII letters A-Z.
	ClassUpper

	// ClassHighSymbols is the symbols accepted by virtually every
	// password policy.
	ClassHighSymbols

	// ClassMediumSymbols is the symbols accepted by most password
	// policies.
	ClassMediumSymbols

	// ClassLowSymbols is the symbols that password policies commonly
	// reject or mishandle (quotes, backslash, shell metacharacters).
	ClassLowSymbols
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassDigits:
		return "digits"
	case ClassLower:
		return "lowercase letters"
	case ClassUpper:
		return "uppercase letters"
	case ClassHighSymbols:
		return "common symbols"
	case ClassMediumSymbols:
		return "less common symbols"
	case ClassLowSymbols:
		return "rare symbols"
	default:
		return "unknown"
	}
}

// Members of each class. These are fixed at process start and never
// mutated, so they are safe to share across concurrent analyses.
const (
	digitChars      = "0123456789"
	lowerChars      = "abcdefghijklmnopqrstuvwxyz"
	upperChars      = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	highSymbolChars = "!#$%&*@^"
	mediumSymbols   = "()-._"
	lowSymbolChars  = "\"'+,/:;<=>?[\\]`{|}~"
)

// classMembers maps each class to its member string in estimation order.
// The order matters: the estimator walks classes from the most restricted
// alphabet (digits) to the least compatible symbols.
var classMembers = [...]string{
	ClassDigits:        digitChars,
	ClassLower:         lowerChars,
	ClassUpper:         upperChars,
	ClassHighSymbols:   highSymbolChars,
	ClassMediumSymbols: mediumSymbols,
	ClassLowSymbols:    lowSymbolChars,
}

// classSets holds the rune-membership set for each class, built once at
// package initialization.
var classSets = func() [len(classMembers)]map[rune]struct{} {
	var sets [len(classMembers)]map[rune]struct{}
	for i, members := range classMembers {
		set := make(map[rune]struct{}, len(members))
		for _, r := range members {
			set[r] = struct{}{}
		}
		sets[i] = set
	}
	return sets
}()

// validChars is the union of all class sets. A password is valid only if
// every rune belongs to this union.
var validChars = func() map[rune]struct{} {
	union := make(map[rune]struct{})
	for _, set := range classSets {
		for r := range set {
			union[r] = struct{}{}
		}
	}
	return union
}()

// Classes returns all character classes in estimation order.
func Classes() []Class {
	return []Class{
		ClassDigits,
		ClassLower,
		ClassUpper,
		ClassHighSymbols,
		ClassMediumSymbols,
		ClassLowSymbols,
	}
}

// Members returns the member characters of the class. It returns an empty
// string for an unknown class.
func Members(c Class) string {
	if c < 0 || int(c) >= len(classMembers) {
		return ""
	}
	return classMembers[c]
}

// Size returns the number of characters in the class.
func Size(c Class) int {
	return len(Members(c))
}

// Contains reports whether the rune belongs to the class.
func Contains(c Class, r rune) bool {
	if c < 0 || int(c) >= len(classSets) {
		return false
	}
	_, ok := classSets[c][r]
	return ok
}

// HasClassMember reports whether the password contains at least one
// character of the class. The empty string contains no class members.
// Runes outside every defined class never match; they do not error.
func HasClassMember(password string, c Class) bool {
	for _, r := range password {
		if Contains(c, r) {
			return true
		}
	}
	return false
}

// IsValid reports whether every character of the password belongs to the
// union of all defined classes. The empty string is vacuously valid;
// callers that require non-empty input must check length separately.
func IsValid(password string) bool {
	for _, r := range password {
		if _, ok := validChars[r]; !ok {
			return false
		}
	}
	return true
}
