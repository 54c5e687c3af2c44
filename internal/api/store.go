// Package api holds the HTTP surface: handlers, middleware, request and
// response models, and the in-memory run store.
package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"energy-outlook/internal/analysis"
	"energy-outlook/internal/sim"
)

// Run is one stored simulation: the full year records plus the summary digest
// served on the list endpoints.
type Run struct {
	ID        string
	CreatedAt time.Time
	Results   sim.ResultSet
	Summaries []analysis.ScenarioSummary
	Failures  map[string]string
}

// RunStore keeps completed runs in memory so records can be fetched after the
// simulate response. It holds at most maxRuns entries and evicts the oldest.
type RunStore struct {
	mu      sync.RWMutex
	runs    map[string]*Run
	order   []string // insertion order, oldest first
	maxRuns int
}

const defaultMaxRuns = 100

func NewRunStore() *RunStore {
	return &RunStore{
		runs:    make(map[string]*Run),
		maxRuns: defaultMaxRuns,
	}
}

// Put stores a run under a fresh ID and returns it.
func (s *RunStore) Put(results sim.ResultSet, summaries []analysis.ScenarioSummary, failures map[string]string) *Run {
	run := &Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Results:   results,
		Summaries: summaries,
		Failures:  failures,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
	for len(s.order) > s.maxRuns {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
	}
	return run
}

// Get returns a stored run, or false if the ID is unknown or evicted.
func (s *RunStore) Get(id string) (*Run, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	return run, ok
}

// Len reports the number of stored runs.
func (s *RunStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
