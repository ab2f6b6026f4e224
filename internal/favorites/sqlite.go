// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package favorites

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"recipebox/internal/models"
)

var _ Store = (*SQLite)(nil)

// SQLite keeps favorites in a small key/value table in a local database
// file. Used by the CLI and TUI, which have no server-side visitor.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the
// schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create favorites directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open favorites db: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create favorites schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Load reads the set stored under Key.
func (s *SQLite) Load(ctx context.Context) models.FavoriteSet {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, Key).Scan(&value)
	if err == sql.ErrNoRows {
		return models.NewFavoriteSet()
	}
	if err != nil {
		slog.Warn("favorites load failed", "backend", "sqlite", "error", err)
		return models.NewFavoriteSet()
	}

	set, err := decode([]byte(value))
	if err != nil {
		slog.Warn("favorites unreadable, starting empty", "backend", "sqlite", "error", err)
		return models.NewFavoriteSet()
	}
	return set
}

// Save upserts the set under Key.
func (s *SQLite) Save(ctx context.Context, set models.FavoriteSet) error {
	data, err := encode(set)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, Key, string(data))
	if err != nil {
		return fmt.Errorf("favorites save: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
