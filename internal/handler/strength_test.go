package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
)

func TestHandleAnalyze(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"password":"Tr0ub4dor&3!"}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("expected Cache-Control no-store, got %q", got)
	}

	var resp model.AnalysisResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Score != 6 || resp.Label != "strong" {
		t.Errorf("expected strong/6, got %s/%d", resp.Label, resp.Score)
	}
	if resp.Entropy == nil {
		t.Error("expected an entropy section")
	}
	if len(resp.SHA256) != 64 {
		t.Errorf("expected a hex sha256 digest, got %q", resp.SHA256)
	}
}

func TestHandleAnalyze_EmptyPassword(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(`{"password":""}`))
	rec := httptest.NewRecorder()
	h.HandleAnalyze(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), `"entropy":{`) {
		t.Errorf("expected no entropy section, got %s", rec.Body.String())
	}
}

func TestHandleAnalyze_Errors(t *testing.T) {
	h := NewStrengthHandler(service.NewStrengthService())

	tests := []struct {
		name string
		body string
	}{
		{"missing body", ""},
		{"malformed", `{"password":`},
		{"too long", `{"password":"` + strings.Repeat("a", service.MaxAnalyzeLength+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.HandleAnalyze(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
		})
	}
}
