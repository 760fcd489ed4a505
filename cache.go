package embedmatch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/botirk38/embedmatch/logging"
	"github.com/botirk38/embedmatch/options"
	"github.com/botirk38/embedmatch/types"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// EmbeddedValue pairs a string with its embedding.
// Embedding is shared with the cache and must not be modified.
type EmbeddedValue struct {
	Content   string    `json:"content"`
	Embedding []float32 `json:"embedding"`
}

// CacheStats is a snapshot of cache activity.
type CacheStats struct {
	Entries int `json:"entries"`
	// Hits counts lookups served from the backend.
	Hits int64 `json:"hits"`
	// Misses counts provider calls.
	Misses         int64 `json:"misses"`
	ProviderErrors int64 `json:"provider_errors"`
}

// Cache memoizes provider embeddings keyed by exact string content.
// Concurrent requests for the same uncached content share a single provider call.
// A Cache is meant to be built once and shared by every matcher in the process.
type Cache struct {
	backend     types.CacheBackend
	provider    types.EmbeddingProvider
	group       singleflight.Group
	concurrency int
	logger      *zap.Logger

	hits           atomic.Int64
	misses         atomic.Int64
	providerErrors atomic.Int64
}

// NewCache creates a Cache over the given backend and provider.
func NewCache(backend types.CacheBackend, provider types.EmbeddingProvider) (*Cache, error) {
	if backend == nil {
		return nil, errors.New("backend cannot be nil")
	}
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}

	return &Cache{
		backend:     backend,
		provider:    provider,
		concurrency: options.DefaultConcurrency,
		logger:      zap.NewNop(),
	}, nil
}

// WithLogger sets the logger. A nil logger disables logging.
func (c *Cache) WithLogger(logger *zap.Logger) *Cache {
	c.logger = logging.OrNop(logger)
	return c
}

// WithConcurrency bounds the provider calls BuildCorpus keeps in flight.
// Values below 1 are ignored.
func (c *Cache) WithConcurrency(n int) *Cache {
	if n > 0 {
		c.concurrency = n
	}
	return c
}

// Embed returns the embedding for content, calling the provider only when
// content has not been embedded before. Keys are compared byte for byte.
// Provider failures are returned as *ProviderError and are not cached.
//
// The provider call for a key is shared by every caller waiting on it and is
// not cancelled with any one of them. A caller whose ctx ends stops waiting
// and gets ctx.Err(); the call completes and its result is cached for the rest.
func (c *Cache) Embed(ctx context.Context, content string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	embedding, found, err := c.backend.Get(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("embedding cache lookup: %w", err)
	}
	if found {
		c.hits.Add(1)
		return embedding, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	resultCh := c.group.DoChan(content, func() (any, error) {
		// an earlier flight for this key may have completed since the lookup above
		if embedding, found, err := c.backend.Get(flightCtx, content); err == nil && found {
			c.hits.Add(1)
			return embedding, nil
		}
		return c.fetch(flightCtx, content)
	})

	select {
	case result := <-resultCh:
		if result.Err != nil {
			return nil, result.Err
		}
		return result.Val.([]float32), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) fetch(ctx context.Context, content string) ([]float32, error) {
	c.misses.Add(1)
	c.logger.Debug("embedding cache miss", zap.Int("content_bytes", len(content)))

	embedding, err := c.provider.EmbedText(ctx, content)
	if err == nil && len(embedding) == 0 {
		err = errEmptyEmbedding
	}
	if err != nil {
		c.providerErrors.Add(1)
		c.logger.Warn("embedding provider failed",
			zap.Int("content_bytes", len(content)),
			zap.Error(err),
		)
		return nil, &ProviderError{Content: content, Err: err}
	}

	stored, err := c.backend.SetIfAbsent(ctx, content, embedding)
	if err != nil {
		return nil, fmt.Errorf("embedding cache store: %w", err)
	}
	return stored, nil
}

// MakeEmbedded embeds content through the cache and pairs the two.
func (c *Cache) MakeEmbedded(ctx context.Context, content string) (EmbeddedValue, error) {
	embedding, err := c.Embed(ctx, content)
	if err != nil {
		return EmbeddedValue{}, err
	}
	return EmbeddedValue{Content: content, Embedding: embedding}, nil
}

// Contains reports whether content has already been embedded.
func (c *Cache) Contains(ctx context.Context, content string) (bool, error) {
	return c.backend.Contains(ctx, content)
}

// Len returns the number of cached embeddings.
func (c *Cache) Len(ctx context.Context) (int, error) {
	return c.backend.Len(ctx)
}

// Keys returns the contents that currently have a cached embedding, in no
// particular order.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	return c.backend.Keys(ctx)
}

// Stats returns a snapshot of cache activity.
func (c *Cache) Stats(ctx context.Context) (CacheStats, error) {
	entries, err := c.backend.Len(ctx)
	if err != nil {
		return CacheStats{}, err
	}
	return CacheStats{
		Entries:        entries,
		Hits:           c.hits.Load(),
		Misses:         c.misses.Load(),
		ProviderErrors: c.providerErrors.Load(),
	}, nil
}

// Close closes the underlying provider and backend.
func (c *Cache) Close() error {
	c.provider.Close()
	return c.backend.Close()
}
