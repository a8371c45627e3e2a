package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortvis/pkg/adapters/memory"
	"sortvis/pkg/ports"
)

func record(id string) ports.RunRecord {
	return ports.RunRecord{
		ID:          id,
		Algorithm:   "bubble",
		Size:        3,
		Steps:       5,
		Sorted:      []int{1, 2, 3},
		CompletedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	require.NoError(t, store.Save(ctx, record("run-1")))

	got, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, record("run-1"), got)
}

func TestStore_LoadMissing(t *testing.T) {
	store := memory.NewStore()
	_, err := store.Load(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrRunNotFound)
}

func TestStore_ListSorted(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, store.Save(ctx, record(id)))
	}

	ids, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	require.NoError(t, store.Save(ctx, record("run-1")))

	require.NoError(t, store.Delete(ctx, "run-1"))
	_, err := store.Load(ctx, "run-1")
	require.ErrorIs(t, err, ports.ErrRunNotFound)

	// Deleting a missing record is not an error.
	require.NoError(t, store.Delete(ctx, "run-1"))
}

func TestStore_IsolatesSortedSlice(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	rec := record("run-1")
	require.NoError(t, store.Save(ctx, rec))
	rec.Sorted[0] = 99

	got, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.Sorted)

	got.Sorted[1] = 77
	again, err := store.Load(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, again.Sorted)
}
