// Package main is the entry point for the Tutor Catalog API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/pkordes/tutor-catalog/backend/internal/config"
	"github.com/pkordes/tutor-catalog/backend/internal/handler"
	"github.com/pkordes/tutor-catalog/backend/internal/middleware"
	"github.com/pkordes/tutor-catalog/backend/internal/repo"
	"github.com/pkordes/tutor-catalog/backend/internal/service"
	"github.com/pkordes/tutor-catalog/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(context.Background()); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(context.Background(), pool); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// --- Layers -----------------------------------------------------------
	tutors := service.NewTutorService(repo.NewTutorRepo(pool))
	courses := service.NewCourseService(repo.NewCourseRepo(pool))
	api := handler.NewServer(logger, tutors, courses, cfg.HealthMessage)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → SlogLogger → Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.Origins()))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Mount("/", api.Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for a signal, then give in-flight requests
	// up to 15 seconds to complete.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending migrations over a database/sql handle borrowed from pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// db holds no idle connections of its own; main closes the pool.
	db := stdlib.OpenDBFromPool(pool)

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", n)
	return nil
}
