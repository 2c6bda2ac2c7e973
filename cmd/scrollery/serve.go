// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"scrollery/internal/cache"
	"scrollery/internal/config"
	"scrollery/internal/database"
	"scrollery/internal/handlers"
	"scrollery/internal/middleware"
	"scrollery/internal/render"
	"scrollery/internal/router"
	"scrollery/internal/storage"
	"scrollery/internal/store"
	"scrollery/web"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gallery server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Structured logger — JSON in production, readable text in development.
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		return err
	}

	// Populate the image catalog. With a bucket configured the catalog
	// mirrors its objects; otherwise it falls back to picsum.photos
	// placeholders. Both paths are no-ops on a populated catalog.
	if cfg.HasBucket() {
		storageClient, err := storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			return err
		}
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)

		urls, err := storageClient.ListImageURLs(context.Background())
		if err != nil {
			return err
		}
		if err := database.SeedURLs(db, urls); err != nil {
			return err
		}
	} else {
		if err := database.Seed(db, cfg.SeedCount); err != nil {
			return err
		}
	}

	// Connect to Valkey for the rendered-fragment cache. The server
	// stays up without it — every request just renders from scratch.
	var fragments *cache.FragmentCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unreachable — fragment caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		fragments = cache.NewFragmentCache(valkeyClient, cache.DefaultFragmentTTL)
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New()
	if err != nil {
		return err
	}

	imageStore := store.NewImageStore(db)
	gallery := handlers.NewGallery(renderer, imageStore, fragments)

	limiter := middleware.NewRateLimiter(120, time.Minute)
	defer limiter.Stop()

	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return err
	}

	// Set up the Chi router with all middleware and routes.
	r := router.New(gallery, limiter, static)

	// Create the HTTP server with sensible timeouts.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
