package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"unicode/utf8"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/strength"
)

// MaxAnalyzeLength bounds the input accepted for analysis.
const MaxAnalyzeLength = 256

var ErrPasswordTooLong = errors.New("password must be at most 256 characters")

// StrengthService builds strength reports for passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Analyze scores the password and attaches entropy, digest and zxcvbn advice.
// An empty password is valid input and yields a weak report without entropy.
func (s *StrengthService) Analyze(req model.AnalyzeRequest) (model.AnalysisResponse, error) {
	if utf8.RuneCountInString(req.Password) > MaxAnalyzeLength {
		return model.AnalysisResponse{}, ErrPasswordTooLong
	}

	result := strength.Score(req.Password)
	sum := sha256.Sum256([]byte(req.Password))
	advice := strength.Advise(req.Password)

	resp := model.AnalysisResponse{
		Score:    result.Score,
		MaxScore: strength.MaxScore,
		Label:    result.Label(),
		Progress: result.Progress(),
		Feedback: result.Feedback,
		SHA256:   hex.EncodeToString(sum[:]),
		Advice: model.AdviceResponse{
			Score:     advice.Score,
			Entropy:   advice.Entropy,
			CrackTime: advice.CrackTime,
		},
	}

	if e, ok := strength.Estimate(req.Password); ok {
		resp.Entropy = &model.EntropyResponse{
			Value:       e.Value,
			Bucket:      string(e.Bucket),
			Description: e.Bucket.Describe(),
		}
	}

	return resp, nil
}
