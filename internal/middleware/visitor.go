// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"

	"recipebox/internal/visitor"
)

// Visitor identifies the browser with the visitor cookie and stores the id
// in the request context. Downstream handlers read it with visitor.FromCtx.
func Visitor(ident *visitor.Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, _ := ident.Identify(w, r)
			next.ServeHTTP(w, r.WithContext(visitor.WithID(r.Context(), id)))
		})
	}
}
