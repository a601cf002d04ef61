// Copyright (c) 2026 CustomSnap <hello@customsnap.dev>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the CustomSnap server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
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

	"customsnap/internal/cache"
	"customsnap/internal/catalog"
	"customsnap/internal/config"
	"customsnap/internal/database"
	"customsnap/internal/handlers"
	"customsnap/internal/middleware"
	"customsnap/internal/router"
	"customsnap/internal/session"
	"customsnap/internal/storage"
	"customsnap/internal/store"
)

func main() {
	// Structured logger — outputs JSON in production, text in development.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load .env if present. Real environment variables win over file values.
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Initialize session store backed by Valkey.
	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Initialize data stores.
	userStore := store.NewUserStore(db)
	leadStore := store.NewLeadStore(db)
	discoveryStore := store.NewDiscoveryStore(db)
	projectStore := store.NewProjectStore(db)
	assetStore := store.NewAssetStore(db)
	catalogStore := store.NewCatalogStore(db)

	// Load the website catalog into memory. A missing catalog is created
	// with the default characteristic universe on first start.
	manager, err := catalog.NewManager(context.Background(), catalogStore)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog loaded", "builds", manager.Stats().TotalBuilds)

	// Connect to S3-compatible object storage (optional — app works without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured — asset uploads disabled")
	}

	// Catalog reports (stats, summary) are cached in Valkey.
	reportCache := cache.NewReportCache(valkeyClient, cache.DefaultReportTTL)

	// Public intake endpoints are rate limited per IP.
	rateLimiter := middleware.NewRateLimiter(30, time.Minute)
	defer rateLimiter.Stop()

	// Create handler groups with their dependencies.
	authHandlers := handlers.NewAuth(sessionStore, userStore)
	leadHandlers := handlers.NewLeads(leadStore, projectStore)
	discoveryHandlers := handlers.NewDiscovery(discoveryStore, leadStore, projectStore)
	projectHandlers := handlers.NewProjects(projectStore, leadStore, discoveryStore, cfg.PreviewBaseURL)
	catalogHandlers := handlers.NewCatalog(manager, projectStore, reportCache)
	portalHandlers := handlers.NewPortal(sessionStore, leadStore, projectStore, assetStore)
	userHandlers := handlers.NewUsers(userStore)
	assetHandlers := handlers.NewAssets(storageClient, assetStore, projectStore)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, rateLimiter,
		authHandlers, leadHandlers, discoveryHandlers, projectHandlers,
		catalogHandlers, portalHandlers, userHandlers, assetHandlers)

	// Create the HTTP server with sensible timeouts. Asset uploads can be
	// slow on bad connections, so the read timeout is generous.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
