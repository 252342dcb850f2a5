// Package session holds the AssignmentStore: the working, session-scoped
// map from plan identifier to its committed segmentation state. It is the
// only mutable shared state in the core, and commit is its only external
// mutator (plus the janitor's pruning of idle entries).
package session

import (
	"sync"
	"time"

	"routeadmin/internal/core/domain/model/segment"
)

// entry pairs a committed assignment with its last-touched time so the
// janitor can prune sessions whose admin walked away.
type entry struct {
	data      segment.PlanAssignmentData
	touchedAt time.Time
}

// Store is the in-memory assignment store keyed by plan identifier. It is
// safe for concurrent use; a commit replaces the prior value for its plan
// atomically in a single map write. Durable copies of committed
// assignments live in the assignment repository, so pruning an idle
// session loses nothing that was committed.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time

	lockMu      sync.Mutex
	commitLocks map[string]*sync.Mutex
}

// NewStore creates an empty assignment store.
func NewStore() *Store {
	return &Store{
		entries:     make(map[string]entry),
		now:         time.Now,
		commitLocks: make(map[string]*sync.Mutex),
	}
}

// NewStoreWithClock creates a store with an injected clock, for tests.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		entries:     make(map[string]entry),
		now:         now,
		commitLocks: make(map[string]*sync.Mutex),
	}
}

// Commit replaces the assignment for data's plan. Last writer wins at this
// level; the optimistic version check happens in the commit handler before
// this call.
func (s *Store) Commit(data segment.PlanAssignmentData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[data.PlanID()] = entry{
		data:      data,
		touchedAt: s.now(),
	}
}

// WithCommitLock runs fn while holding the commit lock for planID. The
// commit handler wraps its whole compare-and-commit sequence in this
// lock, so two concurrent commits naming the same expected version cannot
// both pass the version check; the loser re-reads after the winner's
// store write and sees the fresh token.
func (s *Store) WithCommitLock(planID string, fn func() error) error {
	l := s.commitLock(planID)
	l.Lock()
	defer l.Unlock()
	return fn()
}

func (s *Store) commitLock(planID string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	l, ok := s.commitLocks[planID]
	if !ok {
		l = &sync.Mutex{}
		s.commitLocks[planID] = l
	}
	return l
}

// Get returns the committed assignment for a plan, if any.
func (s *Store) Get(planID string) (segment.PlanAssignmentData, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[planID]
	return e.data, ok
}

// Delete drops the assignment for a plan, if any. Called when the plan
// itself is deleted from the routing provider.
func (s *Store) Delete(planID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, planID)
}

// All returns a snapshot of every committed assignment keyed by plan.
// The returned map is a copy; mutating it does not touch the store.
func (s *Store) All() map[string]segment.PlanAssignmentData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]segment.PlanAssignmentData, len(s.entries))
	for planID, e := range s.entries {
		out[planID] = e.data
	}
	return out
}

// Len returns the number of plans with a committed assignment.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Prune removes entries not touched within keepFor and reports how many
// were removed. Called by the session janitor job.
func (s *Store) Prune(keepFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-keepFor)
	pruned := 0
	for planID, e := range s.entries {
		if e.touchedAt.Before(cutoff) {
			delete(s.entries, planID)
			pruned++
		}
	}
	return pruned
}
