package generator

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// UsingSet keeps using directives unique in first-seen order
type UsingSet struct {
	entries *orderedmap.OrderedMap[string, struct{}]
}

// NewUsingSet creates a set seeded with the given directives
func NewUsingSet(seed ...string) *UsingSet {
	s := &UsingSet{
		entries: orderedmap.New[string, struct{}](),
	}
	s.Add(seed...)
	return s
}

// Add inserts directives not already present. Empty strings are ignored.
func (s *UsingSet) Add(usings ...string) {
	for _, u := range usings {
		if u == "" {
			continue
		}
		s.entries.Set(u, struct{}{})
	}
}

// Contains reports whether the directive is in the set
func (s *UsingSet) Contains(using string) bool {
	_, ok := s.entries.Get(using)
	return ok
}

// Len returns the number of directives
func (s *UsingSet) Len() int {
	return s.entries.Len()
}

// List returns the directives in insertion order
func (s *UsingSet) List() []string {
	out := make([]string, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
