// Copyright (c) 2026 Casa Pjoxante <info@casapjoxante.org>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Casa Pjoxante content server.
// It loads configuration, connects to services, sets up routing, and
// starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pjoxante/internal/cache"
	"pjoxante/internal/chat"
	"pjoxante/internal/config"
	"pjoxante/internal/database"
	"pjoxante/internal/handlers"
	"pjoxante/internal/router"
	"pjoxante/internal/storage"
	"pjoxante/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// Connect to PostgreSQL and bring the schema up to date.
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

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

	// Connect to Valkey for the public view cache. The cache is an
	// optimization: without Valkey every request hits PostgreSQL, which a
	// site this size tolerates, so a connection failure only warns.
	var viewCache *cache.ViewCache
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyAddr(), cfg.ValkeyPassword)
	if err != nil {
		slog.Warn("valkey unavailable — view caching disabled", "error", err)
	} else {
		defer valkeyClient.Close()
		viewCache = cache.NewViewCache(valkeyClient, cache.DefaultViewTTL)
	}

	// Connect to S3-compatible object storage (optional — the app works
	// without it, with image uploads disabled).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	}
	if storageClient == nil {
		slog.Warn("s3 storage not configured — image uploads disabled")
	} else {
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint)
	}

	// Chat assistant. Without an API key the widget answers with the
	// canned reply.
	chatService := chat.NewService(chat.NewClaude(cfg.ChatAPIKey, cfg.ChatModel, cfg.ChatBaseURL))
	if cfg.ChatAPIKey == "" {
		slog.Warn("chat provider not configured — canned replies only")
	}

	// Data stores, one per content domain.
	heroStore := store.NewHeroStore(db)
	aboutStore := store.NewAboutStore(db)
	valuesStore := store.NewValuesStore(db)
	projectsStore := store.NewProjectsStore(db)
	coursesStore := store.NewCoursesStore(db)
	blogStore := store.NewBlogStore(db)

	publicHandlers := &handlers.Public{
		Hero:     heroStore,
		About:    aboutStore,
		Values:   valuesStore,
		Projects: projectsStore,
		Courses:  coursesStore,
		Blog:     blogStore,
		Cache:    viewCache,
	}
	adminHandlers := &handlers.Admin{
		Hero:     heroStore,
		About:    aboutStore,
		Values:   valuesStore,
		Projects: projectsStore,
		Courses:  coursesStore,
		Blog:     blogStore,
		Cache:    viewCache,
		Storage:  storageClient,
	}
	chatHandlers := &handlers.Chat{Service: chatService}

	r := router.New(router.Deps{
		Public:     publicHandlers,
		Admin:      adminHandlers,
		Chat:       chatHandlers,
		AdminToken: cfg.AdminToken,
	})

	// WriteTimeout must accommodate the chat endpoint, which waits on the
	// assistant provider (up to 20s) before falling back.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

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

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
