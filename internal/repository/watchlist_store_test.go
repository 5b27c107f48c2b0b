package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TokenScope/internal/domain/models"
	"TokenScope/pkg/cache"
)

func TestCacheWatchlistStore(t *testing.T) {
	mc := cache.NewMemoryCache()
	defer mc.Close()
	store := NewCacheWatchlistStore(mc)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.Add(ctx, models.WatchlistEntry{Chain: "bsc", Address: "0xBBB", AddedAt: base.Add(time.Minute)}))
	require.NoError(t, store.Add(ctx, models.WatchlistEntry{Chain: "ethereum", Address: "0xaaa", Note: "first", AddedAt: base}))

	list, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ethereum", list[0].Chain)
	assert.Equal(t, "first", list[0].Note)
	assert.Equal(t, "0xBBB", list[1].Address)

	// Re-adding the same token replaces it.
	require.NoError(t, store.Add(ctx, models.WatchlistEntry{Chain: "bsc", Address: "0xbbb", Note: "updated", AddedAt: base.Add(time.Minute)}))
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "updated", list[1].Note)

	require.NoError(t, store.Remove(ctx, "BSC", "0xBbB"))
	list, err = store.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "0xaaa", list[0].Address)
}

func TestMemoryWatchlistStoreStartsEmpty(t *testing.T) {
	list, err := NewMemoryWatchlistStore().List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
