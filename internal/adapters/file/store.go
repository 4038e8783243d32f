// Package file implements ports.NotebookStore on the local filesystem,
// one JSON document per notebook in an uploads directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// Store persists notebooks as {id}.json files under dir.
type Store struct {
	dir string
}

// NewStore creates the store, making the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+".json")
}

// Save writes the notebook document.
func (s *Store) Save(ctx context.Context, nb *domain.Notebook) error {
	data, err := json.MarshalIndent(nb, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal notebook: %w", err)
	}
	if err := os.WriteFile(s.path(nb.ID), data, 0o644); err != nil {
		return fmt.Errorf("failed to write notebook: %w", err)
	}
	return nil
}

// Load reads a notebook document by ID.
func (s *Store) Load(ctx context.Context, id string) (*domain.Notebook, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotebookNotFound
		}
		return nil, fmt.Errorf("failed to read notebook: %w", err)
	}

	var nb domain.Notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notebook: %w", err)
	}
	return &nb, nil
}

// List returns the IDs of all stored notebooks.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads dir: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// Delete removes a notebook document. Deleting a missing ID is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := os.Remove(s.path(id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete notebook: %w", err)
	}
	return nil
}
