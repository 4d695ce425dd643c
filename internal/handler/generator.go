package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/keysmith/internal/crypto"
	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

// GeneratorHandler handles HTTP requests for password and passphrase generation.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandleGenerate handles POST /api/v1/generate requests.
func (h *GeneratorHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("password generation failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	resp, err := h.service.Passphrase(req)
	if err != nil {
		switch {
		case isValidationError(err):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, wordlist.ErrUnavailable), errors.Is(err, crypto.ErrEmptyWordlist):
			slog.Warn("passphrase wordlist unavailable", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, errorResponse("wordlist unavailable"))
		default:
			slog.Error("passphrase generation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrLengthTooShort) ||
		errors.Is(err, crypto.ErrLengthTooLong) ||
		errors.Is(err, crypto.ErrWordCount)
}
