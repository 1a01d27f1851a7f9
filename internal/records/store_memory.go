package records

import (
	"context"
	"sync"
)

// MemoryStore keeps records in memory in insertion order and is safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[Collection][]Record
}

// NewMemoryStore constructs a MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[Collection][]Record)}
}

// List returns a copy of the student's records for a collection.
func (s *MemoryStore) List(ctx context.Context, studentID string, c Collection) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.data[studentID][c]
	out := make([]Record, len(stored))
	copy(out, stored)
	return out, nil
}

// Put appends a record.
func (s *MemoryStore) Put(ctx context.Context, studentID string, c Collection, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	byCollection, ok := s.data[studentID]
	if !ok {
		byCollection = make(map[Collection][]Record)
		s.data[studentID] = byCollection
	}
	byCollection[c] = append(byCollection[c], rec)
	return nil
}
