package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/me-learn/tracker/internal/catalog"
	"github.com/me-learn/tracker/internal/notify"
	"github.com/me-learn/tracker/internal/platform/cache"
	"github.com/me-learn/tracker/internal/platform/config"
	"github.com/me-learn/tracker/internal/platform/database"
	"github.com/me-learn/tracker/internal/tracker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Log))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	snap, health, cleanup, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		slog.Error("failed to open snapshot store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}
	defer cleanup()

	hub := notify.NewHub()
	engine := tracker.NewEngine(tracker.EngineConfig{
		Catalog: tracker.NewCatalogStore(snap, canonicalCourses(cfg)),
		Profile: tracker.NewProfileStore(snap),
		Events:  hub,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      newMux(engine, hub, health),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "backend", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

// newSnapshotStore builds the configured snapshot backend. It returns the
// store, a readiness check, and a cleanup func for any held connections.
func newSnapshotStore(ctx context.Context, cfg *config.Config) (tracker.SnapshotStore, func(context.Context) error, func(), error) {
	noCheck := func(context.Context) error { return nil }
	noCleanup := func() {}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return tracker.NewMemoryStore(), noCheck, noCleanup, nil

	case config.BackendFile:
		store, err := tracker.NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, noCheck, noCleanup, nil

	case config.BackendRedis:
		c, err := cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			return nil, nil, nil, err
		}
		store, err := tracker.NewRedisStore(c.Client)
		if err != nil {
			c.Close()
			return nil, nil, nil, err
		}
		return store, c.HealthCheck, func() { c.Close() }, nil

	case config.BackendPostgres:
		db, err := database.New(ctx, cfg.Database.URL, cfg.Database.MaxConns, cfg.Database.MinConns)
		if err != nil {
			return nil, nil, nil, err
		}
		store, err := tracker.NewPostgresStore(ctx, db.Pool)
		if err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return store, db.HealthCheck, func() { db.Close() }, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// canonicalCourses returns the canonical catalog: a configured course pack
// when one loads successfully, the built-in defaults otherwise.
func canonicalCourses(cfg *config.Config) []catalog.Course {
	if cfg.CoursePackPath == "" {
		return catalog.Defaults()
	}

	loader, err := catalog.NewLoader(cfg.CoursePackPath)
	if err != nil {
		slog.Warn("course pack unavailable, using built-in catalog", "path", cfg.CoursePackPath, "error", err)
		return catalog.Defaults()
	}
	courses := loader.Courses()
	if len(courses) == 0 {
		slog.Warn("course pack is empty, using built-in catalog", "path", cfg.CoursePackPath)
		return catalog.Defaults()
	}
	return courses
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.AddSource}
	if cfg.Format == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
