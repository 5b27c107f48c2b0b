package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/domain/repository"
	"TokenScope/pkg/cache"
)

const watchlistKey = "watchlist"

// CacheWatchlistStore keeps the local watchlist in a single cache hash,
// one field per chain:address.
type CacheWatchlistStore struct {
	cache cache.Service
}

// NewCacheWatchlistStore creates a watchlist store over the given cache backend.
func NewCacheWatchlistStore(c cache.Service) repository.WatchlistStore {
	return &CacheWatchlistStore{cache: c}
}

// NewMemoryWatchlistStore is the default process-local store.
func NewMemoryWatchlistStore() repository.WatchlistStore {
	return NewCacheWatchlistStore(cache.NewMemoryCache(cache.WithMemoryMaxSize(16)))
}

func (s *CacheWatchlistStore) List(ctx context.Context) ([]models.WatchlistEntry, error) {
	entries, err := cache.HGetAllTyped[models.WatchlistEntry](ctx, s.cache, watchlistKey)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}

	out := make([]models.WatchlistEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AddedAt.Equal(out[j].AddedAt) {
			return watchlistField(out[i].Chain, out[i].Address) < watchlistField(out[j].Chain, out[j].Address)
		}
		return out[i].AddedAt.Before(out[j].AddedAt)
	})
	return out, nil
}

func (s *CacheWatchlistStore) Add(ctx context.Context, entry models.WatchlistEntry) error {
	if err := s.cache.HSet(ctx, watchlistKey, watchlistField(entry.Chain, entry.Address), entry); err != nil {
		return fmt.Errorf("add to watchlist: %w", err)
	}
	return nil
}

func (s *CacheWatchlistStore) Remove(ctx context.Context, chain, address string) error {
	if err := s.cache.HDel(ctx, watchlistKey, watchlistField(chain, address)); err != nil {
		return fmt.Errorf("remove from watchlist: %w", err)
	}
	return nil
}

func watchlistField(chain, address string) string {
	return strings.ToLower(chain) + ":" + strings.ToLower(address)
}
