package handler

import (
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/keysmith/internal/middleware"
	"github.com/vaultpass/keysmith/internal/repository"
	"github.com/vaultpass/keysmith/internal/service"
)

func newMoodRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	h := NewMoodHandler(service.NewMoodService(repository.NewMoodRepository(db)))

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(testSecret))
		r.Get("/api/v1/moods", h.HandleListMoods)
		r.Post("/api/v1/moods", h.HandleRecordMood)
		r.Get("/api/v1/moods/distribution", h.HandleDistribution)
		r.Get("/api/v1/moods/export", h.HandleExport)
	})
	return r, mock
}

func TestHandleRecordMood(t *testing.T) {
	r, mock := newMoodRouter(t)

	mock.ExpectExec("INSERT INTO mood_entries").
		WithArgs(int64(4), "happy", "sunny walk", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authorized(t, http.MethodPost, "/api/v1/moods", `{"mood":"Happy","notes":"sunny walk"}`, 4))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestHandleRecordMood_InvalidMood(t *testing.T) {
	r, _ := newMoodRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authorized(t, http.MethodPost, "/api/v1/moods", `{"mood":"bored"}`, 4))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleDistribution(t *testing.T) {
	r, mock := newMoodRouter(t)

	mock.ExpectQuery("SELECT mood, COUNT").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"mood", "n"}).AddRow("sad", 3).AddRow("happy", 1))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authorized(t, http.MethodGet, "/api/v1/moods/distribution", "", 4))

	want := `[{"mood":"sad","count":3},{"mood":"happy","count":1}]`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHandleExport(t *testing.T) {
	r, mock := newMoodRouter(t)

	at := time.Date(2025, 3, 14, 9, 30, 15, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM mood_entries").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "mood", "notes", "created_at"}).
			AddRow(1, 4, "tired", "long day, no coffee", at))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authorized(t, http.MethodGet, "/api/v1/moods/export", "", 4))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "mood_data.csv") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	records, err := csv.NewReader(rec.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected header and one row, got %d records", len(records))
	}
	if records[1][0] != "2025-03-14 09:30:15" || records[1][2] != "long day, no coffee" {
		t.Errorf("unexpected row %q", records[1])
	}
}

func TestHandleExport_DatabaseError(t *testing.T) {
	r, mock := newMoodRouter(t)

	mock.ExpectQuery("SELECT (.+) FROM mood_entries").
		WillReturnError(errors.New("connection reset"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, authorized(t, http.MethodGet, "/api/v1/moods/export", "", 4))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected a JSON error, got %q", ct)
	}
}
