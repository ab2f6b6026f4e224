// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// maxSearchLen caps the search text, in runes. Longer input is truncated
// rather than rejected so a pasted paragraph still searches its prefix.
const maxSearchLen = 200

// sanitizeSearch trims surrounding whitespace and truncates to maxSearchLen.
func sanitizeSearch(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= maxSearchLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxSearchLen])
}

// parseRecipeID parses a positive recipe id from a URL parameter.
func parseRecipeID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid recipe id %q", raw)
	}
	return id, nil
}

// safeReturn accepts only same-site absolute paths as redirect targets.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, `\`) {
		return "/"
	}
	return target
}
