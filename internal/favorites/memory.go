// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package favorites

import (
	"context"
	"log/slog"
	"sync"

	"recipebox/internal/models"
)

// Compile-time interface checks.
var (
	_ Store  = (*Memory)(nil)
	_ Scoped = (*MemoryScoped)(nil)
)

// Memory keeps the encoded set in process memory. Data is lost on restart.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// Load decodes the stored set.
func (m *Memory) Load(_ context.Context) models.FavoriteSet {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return models.NewFavoriteSet()
	}
	set, err := decode(m.data)
	if err != nil {
		slog.Warn("favorites unreadable, starting empty", "backend", "memory", "error", err)
		return models.NewFavoriteSet()
	}
	return set
}

// Save encodes and stores the set.
func (m *Memory) Save(_ context.Context, set models.FavoriteSet) error {
	data, err := encode(set)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

// MemoryScoped keeps one Memory store per visitor.
type MemoryScoped struct {
	mu     sync.Mutex
	stores map[string]*Memory
}

// NewMemoryScoped returns an empty per-visitor memory backend.
func NewMemoryScoped() *MemoryScoped {
	return &MemoryScoped{stores: make(map[string]*Memory)}
}

// ForVisitor returns the visitor's store, creating it on first use.
func (m *MemoryScoped) ForVisitor(visitorID string) Store {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.stores[visitorID]
	if !ok {
		s = NewMemory()
		m.stores[visitorID] = s
	}
	return s
}
