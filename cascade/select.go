// Package cascade guards dependent lookups against stale responses.
//
// A dependent fetch (departments for the selected college) is tagged
// with the prerequisite value active at dispatch time. If the
// selection changes while the fetch is in flight, the response's tag
// no longer matches and the result is discarded instead of
// overwriting state that belongs to the new selection:
// latest-request-wins, no cancellation.
package cascade

import "sync"

// Select tracks the active prerequisite value for one dependent lookup
type Select struct {
	mu      sync.Mutex
	current string
}

// Set records a new selection, superseding any fetch still in flight
func (s *Select) Set(value string) {
	s.mu.Lock()
	s.current = value
	s.mu.Unlock()
}

// Current returns the active selection
func (s *Select) Current() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Commit applies fn only when tag still matches the active selection,
// and reports whether it did. A false return means the response was
// stale and must be dropped.
func (s *Select) Commit(tag string, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tag != s.current {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

// Registry hands out one Select per key (session, form field...)
type Registry struct {
	mu sync.Mutex
	m  map[string]*Select
}

// Get returns the Select for key, creating it on first use
func (r *Registry) Get(key string) *Select {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.m == nil {
		r.m = make(map[string]*Select)
	}
	sel, ok := r.m[key]
	if !ok {
		sel = &Select{}
		r.m[key] = sel
	}
	return sel
}
