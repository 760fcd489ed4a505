package types

import "context"

// EmbeddingProvider defines the interface all embedding providers must satisfy.
type EmbeddingProvider interface {
	// EmbedText turns a piece of text into its embedding vector.
	EmbedText(ctx context.Context, text string) ([]float32, error)
	// Close frees any resources held by the provider.
	Close()
}

// CacheBackend stores embeddings keyed by the exact text they were computed from.
// Entries are only ever inserted, never updated in place.
type CacheBackend interface {
	// Get retrieves the embedding stored for key
	Get(ctx context.Context, key string) ([]float32, bool, error)

	// SetIfAbsent stores embedding under key unless an entry already exists.
	// It returns the embedding that is stored for key after the call.
	SetIfAbsent(ctx context.Context, key string, embedding []float32) ([]float32, error)

	// Contains checks if a key exists without affecting recency
	Contains(ctx context.Context, key string) (bool, error)

	// Len returns the number of entries in the backend
	Len(ctx context.Context) (int, error)

	// Keys returns all keys currently held
	Keys(ctx context.Context) ([]string, error)

	// Close releases backend resources
	Close() error
}

// BackendConfig provides configuration options for backends
type BackendConfig struct {
	// Capacity bounds the number of entries. Zero means unbounded, which only
	// the map backend supports.
	Capacity int
}

// BackendType represents the type of cache backend
type BackendType string

const (
	BackendMap BackendType = "map"
	BackendLRU BackendType = "lru"
)

// ProviderType represents the type of embedding provider
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGemini ProviderType = "gemini"
)
