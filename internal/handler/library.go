package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaultpass/keysmith/internal/model"
	"github.com/vaultpass/keysmith/internal/service"
)

// LibraryHandler handles HTTP requests for the personal book library.
type LibraryHandler struct {
	service *service.LibraryService
}

// NewLibraryHandler creates a new LibraryHandler.
func NewLibraryHandler(svc *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{service: svc}
}

// HandleAddBook handles POST /api/v1/books requests.
func (h *LibraryHandler) HandleAddBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	var req model.BookRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	resp, err := h.service.AddBook(r.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookFieldsRequired), errors.Is(err, service.ErrInvalidYear):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			h.internalError(w, "add book", err)
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleListBooks handles GET /api/v1/books requests.
func (h *LibraryHandler) HandleListBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	books, err := h.service.ListBooks(r.Context(), userID)
	if err != nil {
		h.internalError(w, "list books", err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// HandleSearchBooks handles GET /api/v1/books/search?q= requests.
func (h *LibraryHandler) HandleSearchBooks(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	books, err := h.service.SearchBooks(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, service.ErrKeywordRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		h.internalError(w, "search books", err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// HandleSetRead handles PATCH /api/v1/books/{id}/read requests.
func (h *LibraryHandler) HandleSetRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	bookID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	var req model.ReadStatusRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	if err := h.service.SetRead(r.Context(), userID, bookID, req.Read); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		h.internalError(w, "set read", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteBook handles DELETE /api/v1/books/{id} requests.
func (h *LibraryHandler) HandleDeleteBook(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	bookID, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveBook(r.Context(), userID, bookID); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		h.internalError(w, "delete book", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleStats handles GET /api/v1/books/stats requests.
func (h *LibraryHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Stats(r.Context(), userID)
	if err != nil {
		h.internalError(w, "library stats", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *LibraryHandler) internalError(w http.ResponseWriter, op string, err error) {
	slog.Error("library operation failed", "op", op, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
}
