package crypto

import (
	"errors"
	"strings"
)

const (
	DefaultWords = 4
	MaxWords     = 64
)

var (
	ErrWordCount     = errors.New("word count must be between 1 and 64")
	ErrEmptyWordlist = errors.New("wordlist is empty")
)

// GeneratePassphrase picks wordCount words from words uniformly at random,
// with replacement, and joins them with single spaces.
func GeneratePassphrase(wordCount int, words []string) (string, error) {
	if wordCount < 1 || wordCount > MaxWords {
		return "", ErrWordCount
	}
	if len(words) == 0 {
		return "", ErrEmptyWordlist
	}

	picked := make([]string, wordCount)
	for i := range picked {
		j, err := randIndex(len(words))
		if err != nil {
			return "", err
		}
		picked[i] = words[j]
	}

	return strings.Join(picked, " "), nil
}
