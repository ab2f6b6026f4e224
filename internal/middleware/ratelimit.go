// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"recipebox/internal/visitor"
)

// window tracks request timestamps for a single client key.
type window struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter limits requests per client over a sliding window. Clients are
// keyed by visitor id when the visitor middleware ran, otherwise by IP.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	period  time.Duration
	stopCh  chan struct{}
	once    sync.Once
}

// NewRateLimiter allows limit requests per period and starts a janitor
// goroutine that drops idle clients. Call Stop to release it.
func NewRateLimiter(limit int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		period:  period,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup(time.Now())
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop terminates the janitor goroutine. Safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stopCh) })
}

// allow records a hit for key at now and reports whether it is within limit.
func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	win, ok := rl.clients[key]
	if !ok {
		win = &window{}
		rl.clients[key] = win
	}
	rl.mu.Unlock()

	cutoff := now.Add(-rl.period)

	win.mu.Lock()
	defer win.mu.Unlock()

	kept := win.hits[:0]
	for _, ts := range win.hits {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	win.hits = kept

	if len(win.hits) >= rl.limit {
		return false
	}
	win.hits = append(win.hits, now)
	return true
}

// cleanup drops clients with no hit inside the current window.
func (rl *RateLimiter) cleanup(now time.Time) {
	cutoff := now.Add(-rl.period)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, win := range rl.clients {
		win.mu.Lock()
		idle := len(win.hits) == 0 || !win.hits[len(win.hits)-1].After(cutoff)
		win.mu.Unlock()
		if idle {
			delete(rl.clients, key)
		}
	}
}

// size returns the number of tracked clients.
func (rl *RateLimiter) size() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Middleware rejects requests over the limit with 429 Too Many Requests.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientKey(r), time.Now()) {
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey prefers the visitor id and falls back to the client IP.
func clientKey(r *http.Request) string {
	if id, ok := visitor.FromCtx(r.Context()); ok {
		return "v:" + id.String()
	}
	return "ip:" + clientIP(r)
}

// clientIP extracts the client address, honouring X-Forwarded-For and
// X-Real-IP for proxied requests.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
