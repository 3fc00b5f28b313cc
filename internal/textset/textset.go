// Package textset provides a small string set used for exclusion lists,
// seen-text tracking and keyword tables.
package textset

import (
	"sort"
	"strings"
)

// Set is an unordered collection of strings
type Set map[string]struct{}

// New creates a set holding the given values
func New(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Has reports whether v is in the set. A nil set contains nothing.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of values in the set
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the values in ascending order
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// ContainsAnyIn reports whether text contains any value of the set as a
// substring. Values are expected to be lowercase; text is compared as given.
func (s Set) ContainsAnyIn(text string) bool {
	for v := range s {
		if strings.Contains(text, v) {
			return true
		}
	}
	return false
}

// Intersects reports whether any of values is in the set
func (s Set) Intersects(values []string) bool {
	for _, v := range values {
		if s.Has(v) {
			return true
		}
	}
	return false
}
