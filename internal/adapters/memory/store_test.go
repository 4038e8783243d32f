package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pulkit12dhingra/view-python/internal/adapters/memory"
	"github.com/Pulkit12dhingra/view-python/pkg/domain"
	"github.com/Pulkit12dhingra/view-python/pkg/ports"
)

func TestStore_Contract(t *testing.T) {
	ports.RunNotebookStoreContract(t, memory.NewStore())
}

func TestStore_SaveLoad(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	nb := &domain.Notebook{
		ID:       "nb-1",
		Filename: "demo.ipynb",
		Cells:    []string{"x = 1", "print(x)"},
	}
	require.NoError(t, store.Save(ctx, nb))

	loaded, err := store.Load(ctx, "nb-1")
	require.NoError(t, err)
	assert.Equal(t, nb.Filename, loaded.Filename)
	assert.Equal(t, nb.Cells, loaded.Cells)
}

func TestStore_LoadMissing(t *testing.T) {
	store := memory.NewStore()

	_, err := store.Load(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotebookNotFound)
}

func TestStore_IsolatedFromCaller(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	nb := &domain.Notebook{ID: "nb-1", Cells: []string{"x = 1"}}
	require.NoError(t, store.Save(ctx, nb))

	// Mutating the caller's copy must not reach stored state.
	nb.Cells[0] = "tampered"

	loaded, err := store.Load(ctx, "nb-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"x = 1"}, loaded.Cells)
}

func TestStore_List(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Notebook{ID: "a"}))
	require.NoError(t, store.Save(ctx, &domain.Notebook{ID: "b"}))

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, ids)
}

func TestStore_Delete(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &domain.Notebook{ID: "a"}))
	require.NoError(t, store.Delete(ctx, "a"))

	_, err := store.Load(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotebookNotFound)

	// Deleting twice is harmless.
	assert.NoError(t, store.Delete(ctx, "a"))
}
