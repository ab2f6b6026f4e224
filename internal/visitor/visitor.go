// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package visitor identifies anonymous browsers with a long-lived uuid
// cookie. The id scopes per-visitor favorites; it carries no account and
// grants nothing.
package visitor

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	// CookieName is the name of the visitor cookie sent to the browser.
	CookieName = "rb_visitor"

	// DefaultTTL is how long the browser keeps the visitor cookie.
	DefaultTTL = 30 * 24 * time.Hour
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey struct{}

// Identifier reads or issues visitor cookies.
type Identifier struct {
	secure bool
	ttl    time.Duration
}

// NewIdentifier creates an Identifier. secure marks the cookie Secure,
// which production deployments behind TLS should enable.
func NewIdentifier(secure bool) *Identifier {
	return &Identifier{secure: secure, ttl: DefaultTTL}
}

// Identify returns the visitor id carried by the request cookie. When the
// cookie is missing or not a valid uuid a new id is generated and set on
// the response. The second result reports whether the id is new.
func (i *Identifier) Identify(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			return id, false
		}
	}

	id := uuid.New()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   i.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(i.ttl.Seconds()),
	})
	return id, true
}

// WithID returns a copy of ctx carrying the visitor id.
func WithID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromCtx extracts the visitor id from ctx. The boolean is false when no
// visitor middleware ran for the request.
func FromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}
