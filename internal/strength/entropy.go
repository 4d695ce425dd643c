package strength

import (
	"unicode/utf8"

	"github.com/vaultpass/keysmith/internal/charset"
)

// Bucket is a qualitative crack-time class.
type Bucket string

const (
	BucketInstant Bucket = "instant"
	BucketHours   Bucket = "hours"
	BucketDays    Bucket = "days"
	BucketYears   Bucket = "years"
)

// Describe returns a sentence suitable for showing to a user.
func (b Bucket) Describe() string {
	switch b {
	case BucketInstant:
		return "This password could be cracked instantly."
	case BucketHours:
		return "This password might take a few hours to crack."
	case BucketDays:
		return "This password might take a few days to crack."
	case BucketYears:
		return "This password would take years to crack with current technology."
	default:
		return ""
	}
}

// Entropy is a heuristic strength value and the bucket it falls into.
//
// The value is length * (length/100) * (setSize/10). It is a rough proxy,
// not Shannon entropy.
type Entropy struct {
	Value  float64
	Bucket Bucket
}

// Estimate computes the heuristic entropy of password. It returns false
// when the password contains no recognised character class, in which case
// there is nothing to report.
func Estimate(password string) (Entropy, bool) {
	size := charset.Detect(password).SetSize()
	if size == 0 {
		return Entropy{}, false
	}

	n := float64(utf8.RuneCountInString(password))
	value := n * (n / 100) * (float64(size) / 10)
	return Entropy{Value: value, Bucket: Classify(value)}, true
}

// Classify maps an entropy value to its bucket. Lower bounds are inclusive.
func Classify(value float64) Bucket {
	switch {
	case value < 40:
		return BucketInstant
	case value < 60:
		return BucketHours
	case value < 80:
		return BucketDays
	default:
		return BucketYears
	}
}
