// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Env      string `validate:"oneof=development production testing"`
	LogLevel string `validate:"oneof=debug info warn error"`

	// Storage: "postgres" or "memory"
	StorageDriver string `validate:"oneof=postgres memory"`

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	Seed       bool

	// Valkey (Redis-compatible cache)
	ValkeyHost     string `validate:"required"`
	ValkeyPort     string `validate:"required,numeric"`
	ValkeyPassword string
	CacheTTL       time.Duration `validate:"gte=0"`

	// Admin credential
	AdminUsername     string `validate:"required"`
	AdminPasswordHash string

	// Notifications
	NotifyBackend   string `validate:"oneof=log valkey pubsub"`
	NotifyRecipient string `validate:"omitempty,email"`
	PubSubProjectID string `validate:"required_if=NotifyBackend pubsub"`
	PubSubTopic     string `validate:"required_if=NotifyBackend pubsub"`

	// S3-compatible object storage for uploaded images
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Per-client budgets. Checkout and message routes share RateLimitPerMinute;
	// admin login allows LoginAttempts per LoginWindow.
	RateLimitPerMinute int           `validate:"gte=1"`
	LoginAttempts      int           `validate:"gte=1"`
	LoginWindow        time.Duration `validate:"gte=1s"`
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. A .env file in the working directory
// is loaded first when present; real environment variables win. Returns an
// error if critical values are missing in production mode.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cacheTTL, err := time.ParseDuration(envOrDefault("CACHE_TTL", "2m"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	rateLimit, err := strconv.Atoi(envOrDefault("RATE_LIMIT_PER_MINUTE", "30"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE: %w", err)
	}
	loginAttempts, err := strconv.Atoi(envOrDefault("LOGIN_ATTEMPTS", "10"))
	if err != nil {
		return nil, fmt.Errorf("LOGIN_ATTEMPTS: %w", err)
	}
	loginWindow, err := time.ParseDuration(envOrDefault("LOGIN_WINDOW", "15m"))
	if err != nil {
		return nil, fmt.Errorf("LOGIN_WINDOW: %w", err)
	}
	seed, err := strconv.ParseBool(envOrDefault("SEED", "false"))
	if err != nil {
		return nil, fmt.Errorf("SEED: %w", err)
	}

	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "info"),

		StorageDriver: envOrDefault("STORAGE_DRIVER", "postgres"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "giftshop"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "giftshop"),
		Seed:       seed,

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		CacheTTL:       cacheTTL,

		AdminUsername:     envOrDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		NotifyBackend:   envOrDefault("NOTIFY_BACKEND", "log"),
		NotifyRecipient: os.Getenv("NOTIFY_RECIPIENT"),
		PubSubProjectID: os.Getenv("PUBSUB_PROJECT_ID"),
		PubSubTopic:     os.Getenv("PUBSUB_TOPIC"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "giftshop-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		RateLimitPerMinute: rateLimit,
		LoginAttempts:      loginAttempts,
		LoginWindow:        loginWindow,
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Env == "production" {
		if cfg.StorageDriver == "postgres" && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// S3Enabled reports whether image uploads are configured.
func (c *Config) S3Enabled() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
