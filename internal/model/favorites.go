package model

import "sort"

// FavoriteSet is a set of favorite groups. Values handed out by the
// favorites store are never mutated afterwards; With/Without return copies.
type FavoriteSet map[GroupID]struct{}

// NewFavoriteSet builds a set from ids, skipping empty identifiers
func NewFavoriteSet(ids ...GroupID) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		if id.Valid() {
			set[id] = struct{}{}
		}
	}
	return set
}

// Contains reports membership
func (s FavoriteSet) Contains(id GroupID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of members
func (s FavoriteSet) Len() int {
	return len(s)
}

// Clone returns an independent copy
func (s FavoriteSet) Clone() FavoriteSet {
	out := make(FavoriteSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

// With returns a copy of s with id added
func (s FavoriteSet) With(id GroupID) FavoriteSet {
	out := s.Clone()
	out[id] = struct{}{}
	return out
}

// Without returns a copy of s with id removed
func (s FavoriteSet) Without(id GroupID) FavoriteSet {
	out := s.Clone()
	delete(out, id)
	return out
}

// Sorted returns the members in ascending order
func (s FavoriteSet) Sorted() []GroupID {
	out := make([]GroupID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Strings returns the sorted members as plain strings
func (s FavoriteSet) Strings() []string {
	sorted := s.Sorted()
	out := make([]string, len(sorted))
	for i, id := range sorted {
		out[i] = string(id)
	}
	return out
}

// Equal reports whether both sets have the same members
func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
