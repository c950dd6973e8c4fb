package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neexbeast/aerovoyage/internal/api"
	"github.com/neexbeast/aerovoyage/internal/cache"
	"github.com/neexbeast/aerovoyage/internal/catalog"
	"github.com/neexbeast/aerovoyage/internal/config"
	"github.com/neexbeast/aerovoyage/internal/flight"
	"github.com/neexbeast/aerovoyage/internal/storage"
	"github.com/neexbeast/aerovoyage/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

	var (
		store   catalog.Store
		dbPing  api.Pinger
		snaps   catalog.SnapshotCache
		rdbPing api.Pinger
	)

	// Connect to PostgreSQL.
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		// Run migrations.
		applied, err := storage.RunMigrations(ctx, pool, migrations.FS, ".")
		if err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied", "files", applied)

		store = storage.NewRepository(pool)
		dbPing = pool
	} else {
		log.Info("DATABASE_URL not set, postgres disabled")
	}

	// Connect to Redis.
	if cfg.RedisURL != "" {
		catalogCache, err := cache.Open(ctx, cfg.RedisURL, cfg.CatalogCacheTTL)
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer func() { _ = catalogCache.Close() }()

		snaps = catalogCache
		rdbPing = catalogCache
	} else {
		log.Info("REDIS_URL not set, catalog cache disabled")
	}

	// Wire dependencies.
	cat, err := catalog.NewLoader(store, snaps, log).Load(ctx)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	generator := flight.NewGenerator(cat, nil)
	handlers := api.NewHandlers(cat, generator, log)
	router := api.NewRouter(handlers, dbPing, rdbPing, cfg.RateLimitPerMinute, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port, "locations", len(cat.Locations()), "carriers", cat.Len())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}
