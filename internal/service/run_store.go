package service

import (
	"sync"
	"time"

	"github.com/agathon991/class-schedule-creator/internal/dto"
)

// runStore keeps completed schedule runs in memory for a bounded time.
// Runs are advisory artifacts, not records, so losing them on restart
// is acceptable and nothing is persisted.
type runStore struct {
	mu   sync.Mutex
	ttl  time.Duration
	runs map[string]storedRun
}

type storedRun struct {
	resp      *dto.BuildScheduleResponse
	expiresAt time.Time
}

// NewRunStore creates a store whose entries expire after ttl.
func NewRunStore(ttl time.Duration) *runStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &runStore{ttl: ttl, runs: make(map[string]storedRun)}
}

// Save retains a run, evicting any expired entries while it holds the lock.
func (s *runStore) Save(runID string, resp *dto.BuildScheduleResponse) {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, run := range s.runs {
		if now.After(run.expiresAt) {
			delete(s.runs, id)
		}
	}
	s.runs[runID] = storedRun{resp: resp, expiresAt: now.Add(s.ttl)}
}

// Get returns a retained run, treating expired entries as absent.
func (s *runStore) Get(runID string) (*dto.BuildScheduleResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[runID]
	if !ok {
		return nil, false
	}
	if time.Now().After(run.expiresAt) {
		delete(s.runs, runID)
		return nil, false
	}
	return run.resp, true
}

// Delete removes a run regardless of expiry.
func (s *runStore) Delete(runID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
}
