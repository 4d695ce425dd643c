package crypto

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/vaultpass/keysmith/internal/charset"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			wantErr: nil,
		},
		{
			name: "all options enabled",
			opts: GeneratorOptions{
				Length: 32, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true,
			},
			wantErr: nil,
		},
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 16, Uppercase: true},
			wantErr: nil,
		},
		{
			name:    "single character",
			opts:    GeneratorOptions{Length: 1, Numbers: true},
			wantErr: nil,
		},
		{
			name:    "no character types falls back",
			opts:    GeneratorOptions{Length: 16},
			wantErr: nil,
		},
		{
			name:    "shorter than enabled classes",
			opts:    GeneratorOptions{Length: 2, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
			wantErr: nil,
		},
		{
			name:    "maximum length",
			opts:    GeneratorOptions{Length: MaxLength, Uppercase: true, Lowercase: true},
			wantErr: nil,
		},
		{
			name:    "zero length",
			opts:    GeneratorOptions{Length: 0, Lowercase: true},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "negative length",
			opts:    GeneratorOptions{Length: -3},
			wantErr: ErrLengthTooShort,
		},
		{
			name:    "length too long",
			opts:    GeneratorOptions{Length: 200, Uppercase: true},
			wantErr: ErrLengthTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(tt.opts)

			if tt.wantErr != nil {
				if err != tt.wantErr {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
		})
	}
}

func TestGenerateContainsRequiredTypes(t *testing.T) {
	for _, length := range []int{4, 8, 16} {
		opts := GeneratorOptions{
			Length:    length,
			Uppercase: true,
			Lowercase: true,
			Numbers:   true,
			Symbols:   true,
		}

		// Run multiple times to reduce flakiness from randomness.
		for i := 0; i < 50; i++ {
			password, err := Generate(opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}

			if !strings.ContainsAny(password, charset.Uppercase) {
				t.Errorf("password %q missing uppercase character", password)
			}
			if !strings.ContainsAny(password, charset.Lowercase) {
				t.Errorf("password %q missing lowercase character", password)
			}
			if !strings.ContainsAny(password, charset.Digits) {
				t.Errorf("password %q missing number character", password)
			}
			if !strings.ContainsAny(password, charset.Punctuation) {
				t.Errorf("password %q missing symbol character", password)
			}
		}
	}
}

func TestGenerateSingleTypeContainsOnlyThatType(t *testing.T) {
	tests := []struct {
		name    string
		opts    GeneratorOptions
		charset string
	}{
		{
			name:    "uppercase only",
			opts:    GeneratorOptions{Length: 32, Uppercase: true},
			charset: charset.Uppercase,
		},
		{
			name:    "lowercase only",
			opts:    GeneratorOptions{Length: 32, Lowercase: true},
			charset: charset.Lowercase,
		},
		{
			name:    "numbers only",
			opts:    GeneratorOptions{Length: 32, Numbers: true},
			charset: charset.Digits,
		},
		{
			name:    "symbols only",
			opts:    GeneratorOptions{Length: 32, Symbols: true},
			charset: charset.Punctuation,
		},
		{
			name:    "nothing selected uses lowercase",
			opts:    GeneratorOptions{Length: 32},
			charset: charset.Lowercase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			password, err := Generate(tt.opts)
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			for _, ch := range password {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestGenerateTruncatesSeedsInOrder(t *testing.T) {
	opts := GeneratorOptions{Length: 2, Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}

	for i := 0; i < 50; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(password) != 2 {
			t.Fatalf("Generate() length = %d, want 2", len(password))
		}
		if !strings.ContainsAny(password, charset.Lowercase) || !strings.ContainsAny(password, charset.Uppercase) {
			t.Errorf("password %q should hold one lowercase and one uppercase character", password)
		}
	}
}

func TestGenerateProducesUniquePasswords(t *testing.T) {
	opts := DefaultOptions()
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		password, err := Generate(opts)
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}

func TestGenerateRandomSourceFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	orig := randReader
	randReader = iotest.ErrReader(boom)
	defer func() { randReader = orig }()

	_, err := Generate(DefaultOptions())
	if !errors.Is(err, boom) {
		t.Errorf("Generate() error = %v, want wrapped %v", err, boom)
	}
}

func TestEnabledSetsOrder(t *testing.T) {
	sets := DefaultOptions().EnabledSets()
	want := []string{charset.Lowercase, charset.Uppercase, charset.Digits, charset.Punctuation}
	if len(sets) != len(want) {
		t.Fatalf("EnabledSets() returned %d sets, want %d", len(sets), len(want))
	}
	for i := range want {
		if sets[i] != want[i] {
			t.Errorf("EnabledSets()[%d] = %q, want %q", i, sets[i], want[i])
		}
	}
}
