package crypto

import (
	"slices"
	"strings"
	"testing"
)

func TestGeneratePassphrase(t *testing.T) {
	words := []string{"anchor", "bramble", "cobalt", "drift", "ember"}

	tests := []struct {
		name    string
		count   int
		words   []string
		wantErr error
	}{
		{name: "default count", count: DefaultWords, words: words},
		{name: "single word", count: 1, words: words},
		{name: "more words than list", count: 12, words: words[:2]},
		{name: "maximum", count: MaxWords, words: words},
		{name: "zero words", count: 0, words: words, wantErr: ErrWordCount},
		{name: "too many words", count: MaxWords + 1, words: words, wantErr: ErrWordCount},
		{name: "empty list", count: 4, words: nil, wantErr: ErrEmptyWordlist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePassphrase(tt.count, tt.words)
			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("GeneratePassphrase() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GeneratePassphrase() unexpected error: %v", err)
			}

			parts := strings.Split(got, " ")
			if len(parts) != tt.count {
				t.Fatalf("GeneratePassphrase() produced %d words, want %d", len(parts), tt.count)
			}
			for _, p := range parts {
				if !slices.Contains(tt.words, p) {
					t.Errorf("word %q not from the wordlist", p)
				}
			}
		})
	}
}
