// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the gift shop API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"giftshop/internal/cache"
	"giftshop/internal/catalog"
	"giftshop/internal/config"
	"giftshop/internal/database"
	"giftshop/internal/handlers"
	"giftshop/internal/middleware"
	"giftshop/internal/notify"
	"giftshop/internal/observability"
	"giftshop/internal/router"
	"giftshop/internal/session"
	"giftshop/internal/storage"
	"giftshop/internal/store"
	"giftshop/internal/store/memory"
)

// devAdminPassword is accepted in development when no ADMIN_PASSWORD_HASH
// is configured.
const devAdminPassword = "admin"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "giftshop:", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.IsDev())
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded",
		zap.String("env", cfg.Env),
		zap.String("addr", cfg.Addr()),
		zap.String("storage", cfg.StorageDriver),
		zap.String("notify", cfg.NotifyBackend),
	)

	ctx := context.Background()

	deps, db, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	// Connect to Valkey (response cache, admin sessions, notification outbox).
	valkeyClient, err := cache.ConnectValkey(logger, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		return fmt.Errorf("connect to valkey: %w", err)
	}
	defer valkeyClient.Close()

	responseCache := cache.NewResponseCache(valkeyClient, cfg.CacheTTL, logger)

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	sessionStore := session.NewStore(valkeyClient, !cfg.IsDev())

	notifier, closeNotifier, err := newNotifier(ctx, cfg, valkeyClient, logger)
	if err != nil {
		return err
	}
	defer closeNotifier()

	deps.Notifier = notifier
	deps.Logger = logger
	deps.Tracer = otel.Tracer("giftshop/catalog")

	svc, err := catalog.New(deps)
	if err != nil {
		return fmt.Errorf("init catalog service: %w", err)
	}

	// Seed sample data into empty tables.
	if cfg.Seed {
		if err := database.Seed(ctx, svc, logger); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		// Seeding goes through the service; the cache may hold empty lists.
		responseCache.InvalidateAll(ctx)
	}

	// Connect to S3-compatible object storage (optional, uploads answer 503 without it).
	var uploads handlers.Uploader
	storageClient, err := storage.New(storage.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	switch {
	case err != nil:
		return fmt.Errorf("init s3 storage: %w", err)
	case storageClient != nil:
		uploads = storageClient
		logger.Info("s3 storage connected",
			zap.String("endpoint", cfg.S3Endpoint),
			zap.String("bucket", cfg.S3Bucket),
		)
	default:
		logger.Warn("s3 storage not configured, image uploads disabled")
	}

	passwordHash, err := adminPasswordHash(cfg, logger)
	if err != nil {
		return err
	}

	limiter := middleware.NewRateLimiter(
		router.Limits(cfg.RateLimitPerMinute, cfg.LoginAttempts, cfg.LoginWindow)...,
	)
	defer limiter.Stop()

	r := router.New(
		logger,
		sessionStore,
		responseCache,
		limiter,
		handlers.NewPublic(svc),
		handlers.NewAdmin(svc, responseCache, uploads),
		handlers.NewAuth(sessionStore, cfg.AdminUsername, passwordHash),
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	// Let queued notifications finish before their transports close.
	svc.Wait()

	logger.Info("server stopped gracefully")
	return nil
}

// openRepositories returns catalog repositories for the configured storage
// driver. db is nil for the memory driver.
func openRepositories(ctx context.Context, cfg *config.Config, logger *zap.Logger) (catalog.Deps, *sql.DB, error) {
	if cfg.StorageDriver == "memory" {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New().Deps(), nil, nil
	}

	db, err := database.Connect(ctx, cfg.DSN(), logger)
	if err != nil {
		return catalog.Deps{}, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := database.Migrate(db, logger); err != nil {
		db.Close()
		return catalog.Deps{}, nil, fmt.Errorf("run migrations: %w", err)
	}
	return store.Deps(db), db, nil
}

// newNotifier builds the configured notification backend. The returned
// close func releases its transport.
func newNotifier(ctx context.Context, cfg *config.Config, client *redis.Client, logger *zap.Logger) (catalog.Notifier, func(), error) {
	nop := func() {}

	switch cfg.NotifyBackend {
	case "valkey":
		n, err := notify.NewValkey(client, notify.DefaultOutboxKey, cfg.NotifyRecipient)
		if err != nil {
			return nil, nop, fmt.Errorf("init valkey notifier: %w", err)
		}
		logger.Info("notifications queued in valkey", zap.String("key", notify.DefaultOutboxKey))
		return n, nop, nil

	case "pubsub":
		psClient, err := pubsub.NewClient(ctx, cfg.PubSubProjectID)
		if err != nil {
			return nil, nop, fmt.Errorf("connect to pubsub: %w", err)
		}
		topic := psClient.Topic(cfg.PubSubTopic)
		n, err := notify.NewPubSub(topic, cfg.NotifyRecipient)
		if err != nil {
			psClient.Close()
			return nil, nop, fmt.Errorf("init pubsub notifier: %w", err)
		}
		logger.Info("notifications published to pubsub",
			zap.String("project", cfg.PubSubProjectID),
			zap.String("topic", cfg.PubSubTopic),
		)
		return n, func() {
			topic.Stop()
			psClient.Close()
		}, nil

	default:
		return notify.NewLog(logger, cfg.NotifyRecipient), nop, nil
	}
}

// adminPasswordHash returns the configured bcrypt hash. Development falls
// back to a hash of devAdminPassword; elsewhere an empty hash disables login.
func adminPasswordHash(cfg *config.Config, logger *zap.Logger) (string, error) {
	if cfg.AdminPasswordHash != "" {
		if _, err := bcrypt.Cost([]byte(cfg.AdminPasswordHash)); err != nil {
			return "", fmt.Errorf("ADMIN_PASSWORD_HASH is not a bcrypt hash: %w", err)
		}
		return cfg.AdminPasswordHash, nil
	}
	if !cfg.IsDev() {
		logger.Warn("ADMIN_PASSWORD_HASH not set, admin login disabled")
		return "", nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash dev admin password: %w", err)
	}
	logger.Warn("ADMIN_PASSWORD_HASH not set, using the development password",
		zap.String("username", cfg.AdminUsername),
	)
	return string(hash), nil
}
