// Package strength scores passwords and estimates how long they would take
// to crack. Every function here is pure and safe for concurrent use.
package strength

import (
	"strings"
	"unicode/utf8"

	"github.com/vaultpass/keysmith/internal/charset"
)

const MaxScore = 6

// Feedback messages, in the order the checks run.
const (
	HintLength     = "Increase the length to at least 8 characters."
	HintCommon     = "This is a commonly used password and very insecure."
	HintSequential = "Avoid sequential characters (like 'abc' or '123')."
	HintRepeated   = "Avoid repeated characters (like 'aaa')."
)

var commonPasswords = map[string]struct{}{
	"password":    {},
	"123456":      {},
	"qwerty":      {},
	"admin":       {},
	"welcome":     {},
	"password123": {},
}

var sequences = []string{
	"abc", "bcd", "cde", "def", "efg", "fgh", "ghi", "hij", "ijk", "jkl", "klm", "lmn",
	"mno", "nop", "opq", "pqr", "qrs", "rst", "stu", "tuv", "uvw", "vwx", "wxy", "xyz",
	"012", "123", "234", "345", "456", "567", "678", "789",
}

// Result is the outcome of scoring a single password.
type Result struct {
	Score    int
	Feedback []string
}

// Label buckets the score into weak, medium or strong.
func (r Result) Label() string {
	switch {
	case r.Score >= 5:
		return "strong"
	case r.Score >= 3:
		return "medium"
	default:
		return "weak"
	}
}

// Progress returns the score as a fraction of MaxScore.
func (r Result) Progress() float64 {
	return float64(r.Score) / MaxScore
}

// Score rates password on a 0..6 scale and collects improvement hints.
func Score(password string) Result {
	score := 0
	feedback := []string{}

	switch n := utf8.RuneCountInString(password); {
	case n >= 12:
		score += 2
	case n >= 8:
		score++
	default:
		feedback = append(feedback, HintLength)
	}

	score += charset.Detect(password).Count()

	lower := strings.ToLower(password)
	if IsCommon(password) {
		score = 0
		feedback = append(feedback, HintCommon)
	}

	if hasSequence(lower) {
		score--
		feedback = append(feedback, HintSequential)
	}

	if hasRepeat(password, 3) {
		score--
		feedback = append(feedback, HintRepeated)
	}

	return Result{Score: max(0, min(score, MaxScore)), Feedback: feedback}
}

// IsCommon reports whether password is on the denylist, ignoring case.
func IsCommon(password string) bool {
	_, ok := commonPasswords[strings.ToLower(password)]
	return ok
}

func hasSequence(s string) bool {
	for _, seq := range sequences {
		if strings.Contains(s, seq) {
			return true
		}
	}
	return false
}

// hasRepeat reports whether any rune other than a newline occurs n or more
// times in a row.
func hasRepeat(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == '\n' {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
