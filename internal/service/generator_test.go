package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

func boolPtr(b bool) *bool { return &b }

type staticWords []string

func (s staticWords) Read() ([]string, error) { return s, nil }

type brokenWords struct{}

func (brokenWords) Read() ([]string, error) { return nil, wordlist.ErrUnavailable }

func TestGenerate_Defaults(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	if resp.Label == "" {
		t.Error("expected a strength label")
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_NoCharacterTypesFallsBack(t *testing.T) {
	svc := NewGeneratorService(nil)
	resp, err := svc.Generate(model.GenerateRequest{
		Length:    12,
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Trim(resp.Password, "abcdefghijklmnopqrstuvwxyz") != "" {
		t.Errorf("expected lowercase-only password, got %q", resp.Password)
	}
}

func TestGenerate_LengthOutOfRange(t *testing.T) {
	svc := NewGeneratorService(nil)
	if _, err := svc.Generate(model.GenerateRequest{Length: -1}); !errors.Is(err, crypto.ErrLengthTooShort) {
		t.Errorf("expected ErrLengthTooShort, got %v", err)
	}
	if _, err := svc.Generate(model.GenerateRequest{Length: 200}); !errors.Is(err, crypto.ErrLengthTooLong) {
		t.Errorf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestPassphrase_Defaults(t *testing.T) {
	svc := NewGeneratorService(staticWords{"amber", "birch", "cedar"})
	resp, err := svc.Passphrase(model.PassphraseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Words != crypto.DefaultWords {
		t.Errorf("expected %d words, got %d", crypto.DefaultWords, resp.Words)
	}
	if n := len(strings.Fields(resp.Passphrase)); n != crypto.DefaultWords {
		t.Errorf("passphrase has %d words, want %d", n, crypto.DefaultWords)
	}
}

func TestPassphrase_InvalidCount(t *testing.T) {
	svc := NewGeneratorService(staticWords{"amber"})
	if _, err := svc.Passphrase(model.PassphraseRequest{Words: -2}); !errors.Is(err, crypto.ErrWordCount) {
		t.Errorf("expected ErrWordCount, got %v", err)
	}
}

func TestPassphrase_WordlistUnavailable(t *testing.T) {
	for name, src := range map[string]wordlist.Source{"broken": brokenWords{}, "missing": nil} {
		t.Run(name, func(t *testing.T) {
			svc := NewGeneratorService(src)
			_, err := svc.Passphrase(model.PassphraseRequest{Words: 3})
			if !errors.Is(err, wordlist.ErrUnavailable) {
				t.Errorf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}

func TestPassphrase_EmptyWordlist(t *testing.T) {
	svc := NewGeneratorService(staticWords{})
	if _, err := svc.Passphrase(model.PassphraseRequest{}); !errors.Is(err, crypto.ErrEmptyWordlist) {
		t.Errorf("expected ErrEmptyWordlist, got %v", err)
	}
}
