package ports

import (
	"context"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// NotebookStore defines the interface for persisting uploaded notebooks.
type NotebookStore interface {
	// Save persists the notebook under its ID.
	Save(ctx context.Context, nb *domain.Notebook) error

	// Load retrieves a notebook by ID.
	// Returns domain.ErrNotebookNotFound if it does not exist.
	Load(ctx context.Context, id string) (*domain.Notebook, error)

	// List returns the IDs of all stored notebooks.
	List(ctx context.Context) ([]string, error)

	// Delete removes a notebook by ID.
	Delete(ctx context.Context, id string) error
}
