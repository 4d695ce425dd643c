package model

// AnalyzeRequest carries the password to evaluate.
type AnalyzeRequest struct {
	Password string `json:"password"`
}

// EntropyResponse is omitted from AnalysisResponse when the password has no recognised character class.
type EntropyResponse struct {
	Value       float64 `json:"value"`
	Bucket      string  `json:"bucket"`
	Description string  `json:"description"`
}

// AdviceResponse is the zxcvbn second opinion.
type AdviceResponse struct {
	Score     int     `json:"score"`
	Entropy   float64 `json:"entropy"`
	CrackTime string  `json:"crack_time"`
}

// AnalysisResponse is the full strength report for a password.
type AnalysisResponse struct {
	Score    int              `json:"score"`
	MaxScore int              `json:"max_score"`
	Label    string           `json:"label"`
	Progress float64          `json:"progress"`
	Feedback []string         `json:"feedback"`
	Entropy  *EntropyResponse `json:"entropy,omitempty"`
	SHA256   string           `json:"sha256"`
	Advice   AdviceResponse   `json:"advice"`
}
