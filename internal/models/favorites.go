// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "sort"

// FavoriteSet is a set of recipe ids. The zero value is an empty, read-only
// set; use NewFavoriteSet before calling Toggle.
type FavoriteSet map[int]struct{}

// NewFavoriteSet returns a set containing ids.
func NewFavoriteSet(ids ...int) FavoriteSet {
	s := make(FavoriteSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports whether id is a favorite.
func (s FavoriteSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips membership of id and returns the new membership.
func (s FavoriteSet) Toggle(id int) bool {
	if _, ok := s[id]; ok {
		delete(s, id)
		return false
	}
	s[id] = struct{}{}
	return true
}

// IDs returns the members in ascending order.
func (s FavoriteSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy of the set.
func (s FavoriteSet) Clone() FavoriteSet {
	return NewFavoriteSet(s.IDs()...)
}

// Equal reports whether both sets hold the same ids.
func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Has(id) {
			return false
		}
	}
	return true
}
