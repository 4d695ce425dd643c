package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/keysmith/internal/config"
	"github.com/vaultpass/keysmith/internal/repository"
	"github.com/vaultpass/keysmith/internal/wordlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	words := wordlist.NewCached(wordlist.FileSource{Path: cfg.WordlistPath})
	if _, err := words.Read(); err != nil {
		slog.Warn("wordlist not loaded, passphrase route will return 503", "path", cfg.WordlistPath, "error", err)
	}

	// Account, library and mood routes need the database; the pure routes do not.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	cancel()
	if err != nil {
		slog.Warn("database unavailable, account routes disabled", "error", err)
	} else {
		defer db.Close()
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, words, db),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
