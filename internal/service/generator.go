package service

import (
	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/strength"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

// GeneratorService handles password and passphrase generation.
type GeneratorService struct {
	words wordlist.Source
}

// NewGeneratorService creates a new GeneratorService. words backs passphrase
// generation and is only read when a passphrase is requested.
func NewGeneratorService(words wordlist.Source) *GeneratorService {
	return &GeneratorService{words: words}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: boolOrDefault(req.Uppercase, true),
		Lowercase: boolOrDefault(req.Lowercase, true),
		Numbers:   boolOrDefault(req.Numbers, true),
		Symbols:   boolOrDefault(req.Symbols, true),
	}

	if opts.Length == 0 {
		opts.Length = crypto.DefaultOptions().Length
	}

	password, err := crypto.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	result := strength.Score(password)
	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Score:    result.Score,
		Label:    result.Label(),
	}, nil
}

// Passphrase produces a space-separated passphrase from the configured wordlist.
// A wordlist that cannot be read yields an error wrapping wordlist.ErrUnavailable.
func (s *GeneratorService) Passphrase(req model.PassphraseRequest) (model.PassphraseResponse, error) {
	count := req.Words
	if count == 0 {
		count = crypto.DefaultWords
	}
	if count < 1 || count > crypto.MaxWords {
		return model.PassphraseResponse{}, crypto.ErrWordCount
	}

	if s.words == nil {
		return model.PassphraseResponse{}, wordlist.ErrUnavailable
	}
	words, err := s.words.Read()
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	phrase, err := crypto.GeneratePassphrase(count, words)
	if err != nil {
		return model.PassphraseResponse{}, err
	}

	return model.PassphraseResponse{Passphrase: phrase, Words: count}, nil
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
