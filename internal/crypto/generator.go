package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/vaultpass/keysmith/internal/charset"
)

const (
	MinLength = 1
	MaxLength = 128
)

var (
	ErrLengthTooShort = errors.New("password length must be at least 1")
	ErrLengthTooLong  = errors.New("password length must be at most 128")
)

// randReader is the entropy source for every pick and shuffle.
var randReader io.Reader = rand.Reader

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns sensible defaults: 16 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// EnabledSets returns the character sets switched on in opts, in seeding
// order: lowercase, uppercase, numbers, symbols.
func (o GeneratorOptions) EnabledSets() []string {
	var sets []string
	if o.Lowercase {
		sets = append(sets, charset.Lowercase)
	}
	if o.Uppercase {
		sets = append(sets, charset.Uppercase)
	}
	if o.Numbers {
		sets = append(sets, charset.Digits)
	}
	if o.Symbols {
		sets = append(sets, charset.Punctuation)
	}
	return sets
}

// Generate creates a cryptographically secure random password based on the given options.
//
// Every enabled class contributes at least one character. With no class
// enabled the password is drawn from lowercase letters. When Length is
// smaller than the number of enabled classes, only the first Length classes
// in seeding order are represented and nothing else is added.
func Generate(opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}

	requiredSets := opts.EnabledSets()
	var pool string
	for _, set := range requiredSets {
		pool += set
	}
	if pool == "" {
		pool = charset.Lowercase
	}

	if len(requiredSets) > opts.Length {
		requiredSets = requiredSets[:opts.Length]
	}

	result := make([]byte, opts.Length)

	// Guarantee at least one character from each selected type.
	for i, set := range requiredSets {
		ch, err := randChar(set)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	// Fill the remaining positions from the full pool.
	for i := len(requiredSets); i < opts.Length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randIndex returns a uniform random integer in [0, n).
func randIndex(n int) (int, error) {
	v, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

// randChar picks a random character from set.
func randChar(set string) (byte, error) {
	i, err := randIndex(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
