// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package favorites

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"recipebox/internal/models"
)

const (
	// keyPrefix namespaces favorite sets in Valkey.
	keyPrefix = "favorites:"

	// DefaultTTL is how long an untouched favorite set is kept.
	DefaultTTL = 30 * 24 * time.Hour
)

var _ Scoped = (*Valkey)(nil)

// Valkey stores each visitor's favorites as a JSON list under its own key.
type Valkey struct {
	client *redis.Client
	ttl    time.Duration
}

// NewValkey creates a per-visitor favorites backend on the given client.
func NewValkey(client *redis.Client, ttl time.Duration) *Valkey {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Valkey{client: client, ttl: ttl}
}

// ForVisitor returns the store for one visitor.
func (v *Valkey) ForVisitor(visitorID string) Store {
	return &valkeyStore{client: v.client, key: keyPrefix + visitorID, ttl: v.ttl}
}

type valkeyStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// Load reads the visitor's set. Missing keys, connection errors and bad
// payloads all yield an empty set.
func (s *valkeyStore) Load(ctx context.Context) models.FavoriteSet {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return models.NewFavoriteSet()
	}
	if err != nil {
		slog.Warn("favorites load failed", "backend", "valkey", "key", s.key, "error", err)
		return models.NewFavoriteSet()
	}

	set, err := decode(data)
	if err != nil {
		slog.Warn("favorites unreadable, starting empty", "backend", "valkey", "key", s.key, "error", err)
		return models.NewFavoriteSet()
	}
	return set
}

// Save writes the set and refreshes its TTL.
func (s *valkeyStore) Save(ctx context.Context, set models.FavoriteSet) error {
	data, err := encode(set)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("favorites save: %w", err)
	}
	return nil
}
