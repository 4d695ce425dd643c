package strength

import "github.com/nbutton23/zxcvbn-go"

// MaxAdviceRunes is how much of a password zxcvbn sees. Its matcher grows
// much faster than linearly with input length; later runes are ignored.
const MaxAdviceRunes = 64

// Advice is a second opinion from zxcvbn's pattern matcher. It is reported
// alongside Score but never changes it.
type Advice struct {
	Score     int
	Entropy   float64
	CrackTime string
}

// Advise runs zxcvbn over the first MaxAdviceRunes runes of password.
// userInputs are words the password should not be built from, such as the
// account email.
func Advise(password string, userInputs ...string) Advice {
	if password == "" {
		return Advice{CrackTime: "instant"}
	}
	m := zxcvbn.PasswordStrength(truncateRunes(password, MaxAdviceRunes), userInputs)
	return Advice{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
	}
}

func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
