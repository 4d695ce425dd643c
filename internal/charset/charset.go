// Package charset defines the character classes shared by the password
// scorer, the entropy estimator and the generator.
package charset

const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// ScoringSpecial is the narrower special set recognised when scoring.
	ScoringSpecial = "@$!%*?&"
)

// Sizes assumed for each class when estimating entropy. The special class is
// always counted as the full punctuation alphabet.
const (
	LowerSize   = 26
	UpperSize   = 26
	DigitSize   = 10
	SpecialSize = 32
)

// Profile records which character classes occur in a password.
type Profile struct {
	HasLower   bool
	HasUpper   bool
	HasDigit   bool
	HasSpecial bool
}

// Detect computes the class profile of password. Only ASCII letters and
// digits count; no normalization is applied.
func Detect(password string) Profile {
	var p Profile
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			p.HasLower = true
		case r >= 'A' && r <= 'Z':
			p.HasUpper = true
		case r >= '0' && r <= '9':
			p.HasDigit = true
		case isScoringSpecial(r):
			p.HasSpecial = true
		}
	}
	return p
}

// Count returns how many classes are present.
func (p Profile) Count() int {
	n := 0
	for _, ok := range []bool{p.HasLower, p.HasUpper, p.HasDigit, p.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// SetSize returns the assumed alphabet size for the present classes.
func (p Profile) SetSize() int {
	size := 0
	if p.HasLower {
		size += LowerSize
	}
	if p.HasUpper {
		size += UpperSize
	}
	if p.HasDigit {
		size += DigitSize
	}
	if p.HasSpecial {
		size += SpecialSize
	}
	return size
}

func isScoringSpecial(r rune) bool {
	for _, s := range ScoringSpecial {
		if r == s {
			return true
		}
	}
	return false
}
