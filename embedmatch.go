// Package embedmatch performs fuzzy string matching by comparing embeddings.
//
// A Cache embeds each distinct string at most once through an EmbeddingProvider
// and a Matcher scores candidates against a query with a similarity function
// (cosine by default):
//
//	m, err := embedmatch.New(
//		options.WithOpenAIProvider(""),
//		options.WithConcurrency(8),
//	)
//	best, err := m.BestMatch(ctx, "apple inc", []string{"Apple", "Alphabet", "Apple Inc."})
package embedmatch

import (
	"github.com/botirk38/embedmatch/options"
	"github.com/botirk38/embedmatch/providers"
	"github.com/botirk38/embedmatch/types"
)

// New creates a Matcher, and the Cache behind it, with functional options.
// A provider built by an option is closed again if New fails.
func New(opts ...options.Option) (*Matcher, error) {
	cfg := options.NewConfig()

	matcher, err := build(cfg, opts)
	if err != nil && cfg.Provider != nil {
		cfg.Provider.Close()
	}
	return matcher, err
}

func build(cfg *options.Config, opts []options.Option) (*Matcher, error) {
	if err := cfg.Apply(opts...); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var provider types.EmbeddingProvider = cfg.Provider
	if cfg.RequestsPerSecond > 0 {
		limited, err := providers.NewRateLimited(cfg.Provider, cfg.RequestsPerSecond, cfg.Burst)
		if err != nil {
			return nil, err
		}
		provider = limited
	}

	cache, err := NewCache(cfg.Backend, provider)
	if err != nil {
		return nil, err
	}
	cache.WithLogger(cfg.Logger).WithConcurrency(cfg.Concurrency)

	return NewMatcher(cache, cfg.Comparator)
}
