// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct shared by the web
// server, the CLI and the TUI.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recipebox/internal/debounce"
)

// Recipe sources.
const (
	SourceSeed     = "seed"
	SourcePostgres = "postgres"
)

// Favorites backends for the web server.
const (
	BackendMemory = "memory"
	BackendValkey = "valkey"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host     string
	Port     string
	Env      string // "development", "production", "testing"
	LogLevel string // "debug", "info", "warn", "error"

	// Where recipes and favorites live
	RecipeSource     string // "seed" or "postgres"
	FavoritesBackend string // "memory" or "valkey"
	FavoritesDB      string // SQLite file used by the CLI and TUI

	// Search input quiet period
	SearchDebounce time.Duration

	// PostgreSQL connection (RecipeSource = postgres)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (favorites + page cache)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible storage for exports (optional)
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error for unknown backends,
// malformed durations, or a default database password in production.
func Load() (*Config, error) {
	cfg := &Config{
		Host:     envOrDefault("APP_HOST", "0.0.0.0"),
		Port:     envOrDefault("APP_PORT", "8080"),
		Env:      envOrDefault("APP_ENV", "development"),
		LogLevel: envOrDefault("LOG_LEVEL", "debug"),

		RecipeSource:     strings.ToLower(envOrDefault("RECIPE_SOURCE", SourceSeed)),
		FavoritesBackend: strings.ToLower(envOrDefault("FAVORITES_BACKEND", BackendMemory)),
		FavoritesDB:      envOrDefault("FAVORITES_DB", defaultFavoritesDB()),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "recipebox"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "recipebox"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "recipebox-exports"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),
	}

	debounceRaw := envOrDefault("SEARCH_DEBOUNCE", debounce.DefaultDelay.String())
	d, err := time.ParseDuration(debounceRaw)
	if err != nil || d <= 0 {
		return nil, fmt.Errorf("SEARCH_DEBOUNCE must be a positive duration, got %q", debounceRaw)
	}
	cfg.SearchDebounce = d

	switch cfg.RecipeSource {
	case SourceSeed, SourcePostgres:
	default:
		return nil, fmt.Errorf("RECIPE_SOURCE must be %q or %q, got %q", SourceSeed, SourcePostgres, cfg.RecipeSource)
	}

	switch cfg.FavoritesBackend {
	case BackendMemory, BackendValkey:
	default:
		return nil, fmt.Errorf("FAVORITES_BACKEND must be %q or %q, got %q", BackendMemory, BackendValkey, cfg.FavoritesBackend)
	}

	if cfg.Env == "production" && cfg.RecipeSource == SourcePostgres {
		if cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
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
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// UsesValkey reports whether a Valkey connection is needed.
func (c *Config) UsesValkey() bool {
	return c.FavoritesBackend == BackendValkey
}

// S3Configured reports whether export uploads can be enabled.
func (c *Config) S3Configured() bool {
	return c.S3Endpoint != "" && c.S3AccessKey != "" && c.S3SecretKey != ""
}

// SlogLevel maps LogLevel onto a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// defaultFavoritesDB returns ~/.recipebox/favorites.db, or a relative path
// when the home directory is unknown.
func defaultFavoritesDB() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".recipebox", "favorites.db")
	}
	return filepath.Join(home, ".recipebox", "favorites.db")
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
