package main

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vaultpass/keysmith/internal/config"
	"github.com/vaultpass/keysmith/internal/handler"
	"github.com/vaultpass/keysmith/internal/middleware"
	"github.com/vaultpass/keysmith/internal/repository"
	"github.com/vaultpass/keysmith/internal/service"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

// newRouter wires every route. A nil db leaves the account, library and
// mood routes unregistered.
func newRouter(cfg config.Config, words wordlist.Source, db *sql.DB) http.Handler {
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(words))
	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService())

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/passphrase", genHandler.HandlePassphrase)
		r.Post("/api/v1/analyze", strengthHandler.HandleAnalyze)
	})

	if db == nil {
		return r
	}

	authHandler := handler.NewAuthHandler(
		service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTExpiry),
	)
	libraryHandler := handler.NewLibraryHandler(
		service.NewLibraryService(repository.NewBookRepository(db)),
	)
	moodHandler := handler.NewMoodHandler(
		service.NewMoodService(repository.NewMoodRepository(db)),
	)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Route("/api/v1/books", func(r chi.Router) {
			r.Get("/", libraryHandler.HandleListBooks)
			r.Post("/", libraryHandler.HandleAddBook)
			r.Get("/search", libraryHandler.HandleSearchBooks)
			r.Get("/stats", libraryHandler.HandleStats)
			r.Patch("/{id}/read", libraryHandler.HandleSetRead)
			r.Delete("/{id}", libraryHandler.HandleDeleteBook)
		})

		r.Route("/api/v1/moods", func(r chi.Router) {
			r.Get("/", moodHandler.HandleListMoods)
			r.Post("/", moodHandler.HandleRecordMood)
			r.Get("/distribution", moodHandler.HandleDistribution)
			r.Get("/export", moodHandler.HandleExport)
		})
	})

	return r
}
