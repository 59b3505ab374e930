package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"topofix-hq/topofix/pkg/archive"
)

// MemoryStorage implements the archive.Storage interface using an
// in-memory map. Runs are lost when the process exits; use it for
// tests and for runs that should not leave a database behind.
type MemoryStorage struct {
	runs map[string]*archive.Run
	mu   sync.RWMutex
}

// NewMemoryStorage creates a new in-memory storage backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		runs: make(map[string]*archive.Run),
	}
}

// Store persists a run to memory.
func (s *MemoryStorage) Store(ctx context.Context, run *archive.Run) error {
	if run == nil {
		return archive.NewStorageError("memory", "store", fmt.Errorf("run cannot be nil"))
	}
	if run.ID == "" {
		return archive.NewStorageError("memory", "store", fmt.Errorf("run ID cannot be empty"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to isolate the map from caller mutations
	runCopy := *run
	s.runs[run.ID] = &runCopy

	return nil
}

// Get retrieves a run by ID.
func (s *MemoryStorage) Get(ctx context.Context, id string) (*archive.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, ok := s.runs[id]
	if !ok {
		return nil, archive.ErrNotFound
	}

	runCopy := *run
	return &runCopy, nil
}

// List retrieves runs matching the filter, newest first.
func (s *MemoryStorage) List(ctx context.Context, filter *archive.Filter) ([]*archive.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]*archive.Run, 0, len(s.runs))
	for _, run := range s.runs {
		if !matchesFilter(run, filter) {
			continue
		}
		runCopy := *run
		results = append(results, &runCopy)
	}

	// Newest first, ID as tiebreaker for stable output
	sort.Slice(results, func(i, j int) bool {
		if !results[i].StartedAt.Equal(results[j].StartedAt) {
			return results[i].StartedAt.After(results[j].StartedAt)
		}
		return results[i].ID < results[j].ID
	})

	if filter != nil && filter.Limit > 0 && len(results) > filter.Limit {
		results = results[:filter.Limit]
	}

	return results, nil
}

// Delete removes a run by ID.
func (s *MemoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[id]; !ok {
		return archive.ErrNotFound
	}
	delete(s.runs, id)

	return nil
}

// DeleteOlderThan removes runs started before the cutoff.
func (s *MemoryStorage) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var deleted int64
	for id, run := range s.runs {
		if run.StartedAt.Before(cutoff) {
			delete(s.runs, id)
			deleted++
		}
	}

	return deleted, nil
}

// Count returns the total number of archived runs.
func (s *MemoryStorage) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.runs)), nil
}

// Close releases resources held by the storage backend.
func (s *MemoryStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]*archive.Run)
	return nil
}

// matchesFilter checks if a run matches the filter.
func matchesFilter(run *archive.Run, filter *archive.Filter) bool {
	if filter == nil {
		return true
	}
	if filter.Since != nil && run.StartedAt.Before(*filter.Since) {
		return false
	}
	if filter.Status != "" && run.Status != filter.Status {
		return false
	}
	return true
}

// Clear removes all runs from storage (for testing).
func (s *MemoryStorage) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = make(map[string]*archive.Run)
}

// Size returns the number of runs in storage (for testing).
func (s *MemoryStorage) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.runs)
}
