package inmemory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/botirk38/embedmatch/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrInvalidCapacity indicates a bounded backend was configured without a positive capacity
var ErrInvalidCapacity = errors.New("capacity must be positive")

// LRUBackend implements CacheBackend using LRU eviction policy.
// Evicted texts are embedded again on their next use, so the at-most-once
// provider call guarantee only holds while the working set fits.
type LRUBackend struct {
	mu    *sync.Mutex
	cache *lru.Cache[string, []float32]
}

// NewLRUBackend creates a new LRU backend
func NewLRUBackend(config types.BackendConfig) (*LRUBackend, error) {
	if config.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	lruCache, err := lru.New[string, []float32](config.Capacity)
	if err != nil {
		return nil, err
	}

	return &LRUBackend{
		mu:    &sync.Mutex{},
		cache: lruCache,
	}, nil
}

// Get retrieves an embedding from the LRU cache, marking it recently used
func (b *LRUBackend) Get(ctx context.Context, key string) ([]float32, bool, error) {
	embedding, ok := b.cache.Get(key)
	return embedding, ok, nil
}

// SetIfAbsent stores a copy of embedding unless key is already present
func (b *LRUBackend) SetIfAbsent(ctx context.Context, key string, embedding []float32) ([]float32, error) {
	// the lock makes the peek and add a single step; the lru has its own lock for the rest
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.cache.Get(key); ok {
		return existing, nil
	}
	stored := slices.Clone(embedding)
	b.cache.Add(key, stored)
	return stored, nil
}

// Contains checks if a key exists in the LRU cache without affecting recency
func (b *LRUBackend) Contains(ctx context.Context, key string) (bool, error) {
	return b.cache.Contains(key), nil
}

// Len returns the number of entries in the LRU cache
func (b *LRUBackend) Len(ctx context.Context) (int, error) {
	return b.cache.Len(), nil
}

// Keys returns all keys in the LRU cache, oldest first
func (b *LRUBackend) Keys(ctx context.Context) ([]string, error) {
	return b.cache.Keys(), nil
}

// Close closes the LRU backend (no-op for in-memory)
func (b *LRUBackend) Close() error {
	return nil
}

var _ types.CacheBackend = (*LRUBackend)(nil)
