package inmemory

import (
	"context"
	"slices"
	"sync"

	"github.com/botirk38/embedmatch/types"
)

// MapBackend implements CacheBackend as an unbounded map. Entries are never
// evicted, so each distinct text is embedded at most once per process.
type MapBackend struct {
	mu      *sync.RWMutex
	entries map[string][]float32
}

// NewMapBackend creates a new unbounded map backend
func NewMapBackend() *MapBackend {
	return &MapBackend{
		mu:      &sync.RWMutex{},
		entries: make(map[string][]float32),
	}
}

// Get retrieves an embedding from the map
func (b *MapBackend) Get(ctx context.Context, key string) ([]float32, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	embedding, ok := b.entries[key]
	return embedding, ok, nil
}

// SetIfAbsent stores a copy of embedding unless key is already present
func (b *MapBackend) SetIfAbsent(ctx context.Context, key string, embedding []float32) ([]float32, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if existing, ok := b.entries[key]; ok {
		return existing, nil
	}
	stored := slices.Clone(embedding)
	b.entries[key] = stored
	return stored, nil
}

// Contains checks if a key exists in the map
func (b *MapBackend) Contains(ctx context.Context, key string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[key]
	return ok, nil
}

// Len returns the number of entries in the map
func (b *MapBackend) Len(ctx context.Context) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries), nil
}

// Keys returns all keys in the map in no particular order
func (b *MapBackend) Keys(ctx context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.entries))
	for key := range b.entries {
		keys = append(keys, key)
	}
	return keys, nil
}

// Close closes the map backend (no-op for in-memory)
func (b *MapBackend) Close() error {
	return nil
}

var _ types.CacheBackend = (*MapBackend)(nil)
