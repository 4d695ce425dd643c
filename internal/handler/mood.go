package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
)

// MoodHandler handles HTTP requests for the mood journal.
type MoodHandler struct {
	service *service.MoodService
}

// NewMoodHandler creates a new MoodHandler.
func NewMoodHandler(svc *service.MoodService) *MoodHandler {
	return &MoodHandler{service: svc}
}

// HandleRecordMood handles POST /api/v1/moods requests.
func (h *MoodHandler) HandleRecordMood(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.MoodRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.Record(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMood), errors.Is(err, service.ErrNotesTooLong):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			slog.Error("record mood failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListMoods handles GET /api/v1/moods requests.
func (h *MoodHandler) HandleListMoods(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	history, err := h.service.History(r.Context(), userID)
	if err != nil {
		slog.Error("mood history failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, history)
}

// HandleDistribution handles GET /api/v1/moods/distribution requests.
func (h *MoodHandler) HandleDistribution(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	counts, err := h.service.Distribution(r.Context(), userID)
	if err != nil {
		slog.Error("mood distribution failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, counts)
}

// HandleExport handles GET /api/v1/moods/export requests with a CSV download.
func (h *MoodHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	// Buffer so a failed query can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.service.ExportCSV(r.Context(), userID, &buf); err != nil {
		slog.Error("mood export failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="mood_data.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
