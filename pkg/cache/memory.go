package cache

import (
	"context"
	"sync"
	"time"
)

// MemoryCache implements Service in process memory with LRU eviction by key.
type MemoryCache struct {
	mu      sync.Mutex
	hashes  map[string]map[string][]byte
	access  map[string]time.Time
	maxKeys int
	now     func() time.Time
}

func NewMemoryCache(opts ...MemoryOption) *MemoryCache {
	cfg := &MemoryConfig{MaxKeys: 1000}
	for _, opt := range opts {
		opt(cfg)
	}
	return &MemoryCache{
		hashes:  make(map[string]map[string][]byte),
		access:  make(map[string]time.Time),
		maxKeys: cfg.MaxKeys,
		now:     time.Now,
	}
}

func (mc *MemoryCache) HSet(_ context.Context, key, field string, value interface{}) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	mc.mu.Lock()
	defer mc.mu.Unlock()

	h, ok := mc.hashes[key]
	if !ok {
		if mc.maxKeys > 0 && len(mc.hashes) >= mc.maxKeys {
			mc.evictLRU()
		}
		h = make(map[string][]byte)
		mc.hashes[key] = h
	}
	h[field] = data
	mc.access[key] = mc.now()
	return nil
}

func (mc *MemoryCache) HDel(_ context.Context, key string, fields ...string) error {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	h, ok := mc.hashes[key]
	if !ok {
		return nil
	}
	for _, f := range fields {
		delete(h, f)
	}
	if len(h) == 0 {
		delete(mc.hashes, key)
		delete(mc.access, key)
		return nil
	}
	mc.access[key] = mc.now()
	return nil
}

func (mc *MemoryCache) HGetAll(_ context.Context, key string) (map[string]string, error) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	h := mc.hashes[key]
	out := make(map[string]string, len(h))
	for f, v := range h {
		out[f] = string(v)
	}
	if h != nil {
		mc.access[key] = mc.now()
	}
	return out, nil
}

// evictLRU drops the least recently touched hash. Caller holds mu.
func (mc *MemoryCache) evictLRU() {
	var oldestKey string
	var oldest time.Time
	for key, at := range mc.access {
		if oldestKey == "" || at.Before(oldest) {
			oldest, oldestKey = at, key
		}
	}
	if oldestKey != "" {
		delete(mc.hashes, oldestKey)
		delete(mc.access, oldestKey)
	}
}

// Close drops every hash.
func (mc *MemoryCache) Close() error {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	mc.hashes = make(map[string]map[string][]byte)
	mc.access = make(map[string]time.Time)
	return nil
}

var _ Service = (*MemoryCache)(nil)
