// Package gamestate tracks run-scoped flags and counters: keys collected,
// enemies slain, objectives flagged. The HUD and objective predicates read
// it; pickups and combat write it.
package gamestate

import "sync"

// State holds the current run's flags and counters.
type State struct {
	mu sync.RWMutex

	// Flags are boolean values (e.g., "scroll_found")
	flags map[string]bool

	// Counters are integer values (e.g., "keys", "slain")
	counters map[string]int
}

// New creates an empty state.
func New() *State {
	return &State{
		flags:    make(map[string]bool),
		counters: make(map[string]int),
	}
}

// Flag returns the value of a flag (false if not set).
func (s *State) Flag(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[name]
}

// SetFlag sets a flag.
func (s *State) SetFlag(name string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[name] = value
}

// Counter returns the value of a counter (0 if not set).
func (s *State) Counter(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counters[name]
}

// SetCounter sets a counter to a specific value.
func (s *State) SetCounter(name string, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name] = value
}

// AddCounter adds delta to a counter (can be negative) and returns the
// new value.
func (s *State) AddCounter(name string, delta int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name] += delta
	return s.counters[name]
}

// Reset clears all flags and counters for a new run.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags = make(map[string]bool)
	s.counters = make(map[string]int)
}
