package handler

import (
	"errors"
	"net/http"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
)

// StrengthHandler handles password analysis requests.
type StrengthHandler struct {
	service *service.StrengthService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(svc *service.StrengthService) *StrengthHandler {
	return &StrengthHandler{service: svc}
}

// HandleAnalyze handles POST /api/v1/analyze requests.
func (h *StrengthHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalyzeRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Analyze(req)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, resp)
}
