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
	"github.com/sharenotes/sharenotes-go/internal/config"
	"github.com/sharenotes/sharenotes-go/internal/handler"
	"github.com/sharenotes/sharenotes-go/internal/repository"
	"github.com/sharenotes/sharenotes-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := repository.NewDB(ctx, cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		cancel()
		slog.Error("database connection failed", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}
	if cfg.AutoMigrate {
		if err := repository.Migrate(ctx, db); err != nil {
			cancel()
			slog.Error("database migration failed", "error", err)
			os.Exit(1)
		}
	}
	cancel()
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	shareRepo := repository.NewShareRepository(db)

	router := handler.NewRouter(handler.Deps{
		Auth:      service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry),
		Notes:     service.NewNoteService(noteRepo),
		Shares:    service.NewShareService(noteRepo, shareRepo),
		JWTSecret: cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "driver", cfg.DBDriver)
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

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
