// Package memory provides an in-memory ports.RunStore, used by default
// when no Redis backend is configured.
package memory

import (
	"context"
	"slices"
	"sync"

	"sortvis/pkg/ports"
)

// Store implements ports.RunStore in memory. Safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	data map[string]ports.RunRecord
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]ports.RunRecord),
	}
}

// Save persists the record in memory.
func (s *Store) Save(ctx context.Context, rec ports.RunRecord) error {
	// Copy the sorted slice so the caller can't mutate stored state.
	rec.Sorted = slices.Clone(rec.Sorted)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rec.ID] = rec
	return nil
}

// Load retrieves a record by ID.
func (s *Store) Load(ctx context.Context, id string) (ports.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[id]
	if !ok {
		return ports.RunRecord{}, ports.ErrRunNotFound
	}
	rec.Sorted = slices.Clone(rec.Sorted)
	return rec, nil
}

// List returns the IDs of stored runs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// Delete removes a record.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
