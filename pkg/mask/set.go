package mask

import (
	"maps"
	"slices"
)

// Set is a set of flat grid positions.
type Set map[int]struct{}

// NewSet returns a set holding positions.
func NewSet(positions ...int) Set {
	s := make(Set, len(positions))
	for _, p := range positions {
		s[p] = struct{}{}
	}
	return s
}

// Range returns the set {0, 1, ..., n-1}.
func Range(n int) Set {
	s := make(Set, n)
	for i := range n {
		s[i] = struct{}{}
	}
	return s
}

// Contains reports whether p is in the set.
func (s Set) Contains(p int) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of positions.
func (s Set) Len() int { return len(s) }

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	out := maps.Clone(s)
	if out == nil {
		out = make(Set, len(o))
	}
	for p := range o {
		out[p] = struct{}{}
	}
	return out
}

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set {
	out := make(Set)
	for p := range s {
		if o.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Difference returns s \ o.
func (s Set) Difference(o Set) Set {
	out := make(Set)
	for p := range s {
		if !o.Contains(p) {
			out[p] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold the same positions.
func (s Set) Equal(o Set) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Contains(p) {
			return false
		}
	}
	return true
}

// Sorted returns the positions in ascending order.
func (s Set) Sorted() []int {
	return slices.Sorted(maps.Keys(s))
}
