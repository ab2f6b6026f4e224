// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"recipebox/internal/visitor"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, time.Second)
	defer rl.Stop()
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !rl.allow("a", now) {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.allow("a", now) {
		t.Error("4th request should be limited")
	}
	if !rl.allow("b", now) {
		t.Error("a different client should be allowed")
	}
}

func TestRateLimiterWindowSlides(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	start := time.Now()

	rl.allow("a", start)
	rl.allow("a", start)
	if rl.allow("a", start.Add(30*time.Second)) {
		t.Error("should be limited inside the window")
	}
	if !rl.allow("a", start.Add(61*time.Second)) {
		t.Error("should be allowed once the window has passed")
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)
	defer rl.Stop()
	start := time.Now()

	rl.allow("idle", start)
	rl.allow("busy", start.Add(50*time.Second))

	rl.cleanup(start.Add(90 * time.Second))

	if rl.size() != 1 {
		t.Fatalf("tracked clients: got %d, want 1", rl.size())
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	next, _ := okHandler()
	handler := rl.Middleware(next)

	id := uuid.New()
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/favorites/1", nil)
		req = req.WithContext(visitor.WithID(req.Context(), id))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i := range want {
		if codes[i] != want[i] {
			t.Errorf("request %d: got %d, want %d", i+1, codes[i], want[i])
		}
	}
}

func TestClientKey(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name  string
		setup func(r *http.Request) *http.Request
		want  string
	}{
		{
			name:  "visitor id wins",
			setup: func(r *http.Request) *http.Request { return r.WithContext(visitor.WithID(r.Context(), id)) },
			want:  "v:" + id.String(),
		},
		{
			name: "first forwarded address",
			setup: func(r *http.Request) *http.Request {
				r.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
				return r
			},
			want: "ip:203.0.113.9",
		},
		{
			name: "real ip header",
			setup: func(r *http.Request) *http.Request {
				r.Header.Set("X-Real-IP", " 198.51.100.4 ")
				return r
			},
			want: "ip:198.51.100.4",
		},
		{
			name: "remote addr without port",
			setup: func(r *http.Request) *http.Request {
				r.RemoteAddr = "192.0.2.7:5123"
				return r
			},
			want: "ip:192.0.2.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.setup(httptest.NewRequest(http.MethodGet, "/", nil))
			if got := clientKey(r); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
