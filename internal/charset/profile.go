package charset

// Profile records which character classes a password draws from and how
// long it is. It is a transient value built fresh for each analysis and
// carries no identity beyond that call.
//
// Design decision: Profile is an immutable value type returned by
// NewProfile rather than a shared structure mutated in place. Analyses
// stay independent and the profile can be embedded in reports without
// copying concerns.
type Profile struct {
	// Length is the password length in characters (runes).
	Length int `json:"length"`

	// Digits reports whether the password contains a decimal digit.
	Digits bool `json:"digits"`

	// Lower reports whether the password contains a lowercase letter.
	Lower bool `json:"lower"`

	// Upper reports whether the password contains an uppercase letter.
	Upper bool `json:"upper"`

	// HighSymbols reports whether the password contains a high
	// compatibility symbol.
	HighSymbols bool `json:"high_symbols"`

	// MediumSymbols reports whether the password contains a medium
	// compatibility symbol.
	MediumSymbols bool `json:"medium_symbols"`

	// LowSymbols reports whether the password contains a low
	// compatibility symbol.
	LowSymbols bool `json:"low_symbols"`
}

// NewProfile analyzes the password and returns its composition profile.
// The function is pure: the same password always yields the same profile.
func NewProfile(password string) Profile {
	length := 0
	for range password {
		length++
	}

	return Profile{
		Length:        length,
		Digits:        HasClassMember(password, ClassDigits),
		Lower:         HasClassMember(password, ClassLower),
		Upper:         HasClassMember(password, ClassUpper),
		HighSymbols:   HasClassMember(password, ClassHighSymbols),
		MediumSymbols: HasClassMember(password, ClassMediumSymbols),
		LowSymbols:    HasClassMember(password, ClassLowSymbols),
	}
}

// Has reports whether the profile marks the given class as present.
func (p Profile) Has(c Class) bool {
	switch c {
	case ClassDigits:
		return p.Digits
	case ClassLower:
		return p.Lower
	case ClassUpper:
		return p.Upper
	case ClassHighSymbols:
		return p.HighSymbols
	case ClassMediumSymbols:
		return p.MediumSymbols
	case ClassLowSymbols:
		return p.LowSymbols
	default:
		return false
	}
}

// HasSymbol reports whether any symbol class is present.
func (p Profile) HasSymbol() bool {
	return p.HighSymbols || p.MediumSymbols || p.LowSymbols
}

// PresentClasses returns the classes present in the profile, in
// estimation order.
func (p Profile) PresentClasses() []Class {
	var present []Class
	for _, c := range Classes() {
		if p.Has(c) {
			present = append(present, c)
		}
	}
	return present
}
