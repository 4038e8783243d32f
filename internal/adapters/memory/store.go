// Package memory implements ports.NotebookStore in memory.
package memory

import (
	"context"
	"sync"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Store keeps notebooks in a map. Safe for concurrent use.
type Store struct {
	data map[string]*domain.Notebook
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Notebook),
	}
}

// Save persists the notebook in memory.
func (s *Store) Save(ctx context.Context, nb *domain.Notebook) error {
	// Copy so callers can't mutate stored state through the pointer.
	copied := *nb
	copied.Cells = append([]string(nil), nb.Cells...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[nb.ID] = &copied
	return nil
}

// Load retrieves a notebook by ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Notebook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nb, ok := s.data[id]
	if !ok {
		return nil, domain.ErrNotebookNotFound
	}

	ret := *nb
	ret.Cells = append([]string(nil), nb.Cells...)
	return &ret, nil
}

// List returns the IDs of all stored notebooks.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

// Delete removes a notebook.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}
