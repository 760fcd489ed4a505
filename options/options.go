// Package options provides functional options for configuring a Matcher and its embedding cache.
package options

import (
	"context"
	"errors"

	"github.com/botirk38/embedmatch/backends"
	"github.com/botirk38/embedmatch/providers/gemini"
	"github.com/botirk38/embedmatch/providers/openai"
	"github.com/botirk38/embedmatch/similarity"
	"github.com/botirk38/embedmatch/types"
	"go.uber.org/zap"
)

// DefaultConcurrency bounds parallel provider calls during a corpus build
const DefaultConcurrency = 4

// Option represents a configuration option for a Matcher
type Option func(*Config) error

// Config holds the configuration for building a Matcher
type Config struct {
	Backend     types.CacheBackend
	Provider    types.EmbeddingProvider
	Comparator  similarity.SimilarityFunc
	Concurrency int
	Logger      *zap.Logger

	// RequestsPerSecond and Burst throttle provider calls when RequestsPerSecond > 0
	RequestsPerSecond float64
	Burst             int
}

// NewConfig creates a new configuration with default values:
// an unbounded map backend, cosine similarity and a no-op logger.
func NewConfig() *Config {
	return &Config{
		Backend:     backends.NewMapBackend(),
		Comparator:  similarity.CosineSimilarity,
		Concurrency: DefaultConcurrency,
		Logger:      zap.NewNop(),
	}
}

// Apply applies all the given options to the config
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Backend == nil {
		return errors.New("backend is required - use WithMapBackend, WithLRUBackend, etc.")
	}
	if c.Provider == nil {
		return errors.New("embedding provider is required - use WithOpenAIProvider, WithGeminiProvider, etc.")
	}
	if c.Comparator == nil {
		return errors.New("comparator cannot be nil")
	}
	if c.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}
	if c.RequestsPerSecond < 0 {
		return errors.New("requests per second cannot be negative")
	}
	if c.RequestsPerSecond > 0 && c.Burst <= 0 {
		return errors.New("rate limit burst must be positive")
	}
	return nil
}

// WithMapBackend sets up the unbounded map backend
func WithMapBackend() Option {
	return func(cfg *Config) error {
		cfg.Backend = backends.NewMapBackend()
		return nil
	}
}

// WithLRUBackend sets up a bounded LRU in-memory backend.
// Evicted strings are embedded again when next seen.
func WithLRUBackend(capacity int) Option {
	return func(cfg *Config) error {
		backend, err := backends.NewLRUBackend(types.BackendConfig{
			Capacity: capacity,
		})
		if err != nil {
			return err
		}
		cfg.Backend = backend
		return nil
	}
}

// WithCustomBackend allows using a pre-configured backend
func WithCustomBackend(backend types.CacheBackend) Option {
	return func(cfg *Config) error {
		if backend == nil {
			return errors.New("backend cannot be nil")
		}
		cfg.Backend = backend
		return nil
	}
}

// WithOpenAIProvider sets up OpenAI embedding provider
func WithOpenAIProvider(apiKey string, model ...string) Option {
	return func(cfg *Config) error {
		config := openai.OpenAIConfig{
			APIKey: apiKey,
		}
		if len(model) > 0 {
			config.Model = model[0]
		}

		provider, err := openai.NewOpenAIProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithOpenAIConfig sets up OpenAI embedding provider from a full config
func WithOpenAIConfig(config openai.OpenAIConfig) Option {
	return func(cfg *Config) error {
		provider, err := openai.NewOpenAIProvider(config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithGeminiProvider sets up Gemini embedding provider
func WithGeminiProvider(ctx context.Context, config gemini.GeminiConfig) Option {
	return func(cfg *Config) error {
		provider, err := gemini.NewGeminiProvider(ctx, config)
		if err != nil {
			return err
		}
		cfg.Provider = provider
		return nil
	}
}

// WithCustomProvider allows using a pre-configured embedding provider
func WithCustomProvider(provider types.EmbeddingProvider) Option {
	return func(cfg *Config) error {
		if provider == nil {
			return errors.New("provider cannot be nil")
		}
		cfg.Provider = provider
		return nil
	}
}

// WithSimilarityComparator sets a custom similarity function
func WithSimilarityComparator(comparator similarity.SimilarityFunc) Option {
	return func(cfg *Config) error {
		if comparator == nil {
			return errors.New("comparator cannot be nil")
		}
		cfg.Comparator = comparator
		return nil
	}
}

// WithConcurrency bounds the number of provider calls in flight during a corpus build
func WithConcurrency(n int) Option {
	return func(cfg *Config) error {
		if n <= 0 {
			return errors.New("concurrency must be positive")
		}
		cfg.Concurrency = n
		return nil
	}
}

// WithLogger sets the logger used by the cache and matcher
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.Logger = logger
		return nil
	}
}

// WithRateLimit throttles provider calls to requestsPerSecond on average,
// allowing bursts of up to burst calls.
func WithRateLimit(requestsPerSecond float64, burst int) Option {
	return func(cfg *Config) error {
		if requestsPerSecond <= 0 || burst <= 0 {
			return errors.New("rate limit requires positive requests per second and burst")
		}
		cfg.RequestsPerSecond = requestsPerSecond
		cfg.Burst = burst
		return nil
	}
}
