package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulkit12dhingra/view-python/pkg/domain"
)

// RunNotebookStoreContract runs a suite of tests to verify that a
// NotebookStore implementation adheres to the defined interface contract.
func RunNotebookStoreContract(t *testing.T, store NotebookStore) {
	ctx := context.Background()
	notebookID := "contract-test-notebook-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		nb := &domain.Notebook{
			ID:       notebookID,
			Filename: "contract.ipynb",
			Cells:    []string{"x = 1", "print(x)"},
		}

		err := store.Save(ctx, nb)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, notebookID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, nb.Filename, loaded.Filename)
		assert.Equal(t, nb.Cells, loaded.Cells)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+notebookID)
		assert.ErrorIs(t, err, domain.ErrNotebookNotFound)
	})

	t.Run("Overwrite", func(t *testing.T) {
		first := &domain.Notebook{ID: notebookID, Cells: []string{"x = 1"}}
		second := &domain.Notebook{ID: notebookID, Cells: []string{"x = 2"}}
		require.NoError(t, store.Save(ctx, first))
		require.NoError(t, store.Save(ctx, second))

		loaded, err := store.Load(ctx, notebookID)
		require.NoError(t, err)
		assert.Equal(t, []string{"x = 2"}, loaded.Cells)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, &domain.Notebook{ID: notebookID})
		require.NoError(t, err)

		err = store.Delete(ctx, notebookID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, notebookID)
		assert.ErrorIs(t, err, domain.ErrNotebookNotFound, "Load after Delete should return ErrNotebookNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := notebookID + "-1"
		id2 := notebookID + "-2"
		_ = store.Save(ctx, &domain.Notebook{ID: id1})
		_ = store.Save(ctx, &domain.Notebook{ID: id2})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
