// Package config loads embedmatch settings from a YAML file and the environment
// and turns them into options for embedmatch.New.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/botirk38/embedmatch/backends"
	"github.com/botirk38/embedmatch/logging"
	"github.com/botirk38/embedmatch/options"
	"github.com/botirk38/embedmatch/providers"
	"github.com/botirk38/embedmatch/similarity"
	"github.com/botirk38/embedmatch/types"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a Matcher.
type Config struct {
	Debug    bool           `yaml:"debug"`
	Provider ProviderConfig `yaml:"provider"`
	Cache    CacheConfig    `yaml:"cache"`
	Matching MatchingConfig `yaml:"matching"`
}

// ProviderConfig selects and configures the embedding provider.
type ProviderConfig struct {
	Type       string `yaml:"type"`
	Model      string `yaml:"model"`
	APIKey     string `yaml:"api_key"`
	BaseURL    string `yaml:"base_url"`
	Dimensions int    `yaml:"dimensions"`

	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// CacheConfig selects the embedding cache backend.
type CacheConfig struct {
	Backend  string `yaml:"backend"`
	Capacity int    `yaml:"capacity"`
}

// MatchingConfig holds scoring and corpus build settings.
type MatchingConfig struct {
	Similarity  string `yaml:"similarity"`
	Concurrency int    `yaml:"concurrency"`
}

// Load reads the config file at path when path is non-empty, loads a .env file
// from the working directory if present, applies EMBEDMATCH_* environment
// overrides and fills in defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	applyEnv(&cfg)
	ApplyDefaults(&cfg)

	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Debug = getEnvBool("EMBEDMATCH_DEBUG", cfg.Debug)

	cfg.Provider.Type = getEnv("EMBEDMATCH_PROVIDER", cfg.Provider.Type)
	cfg.Provider.Model = getEnv("EMBEDMATCH_MODEL", cfg.Provider.Model)
	cfg.Provider.APIKey = getEnv("EMBEDMATCH_API_KEY", cfg.Provider.APIKey)
	cfg.Provider.BaseURL = getEnv("EMBEDMATCH_BASE_URL", cfg.Provider.BaseURL)
	cfg.Provider.Dimensions = getEnvInt("EMBEDMATCH_DIMENSIONS", cfg.Provider.Dimensions)
	cfg.Provider.RequestsPerSecond = getEnvFloat("EMBEDMATCH_REQUESTS_PER_SECOND", cfg.Provider.RequestsPerSecond)
	cfg.Provider.Burst = getEnvInt("EMBEDMATCH_BURST", cfg.Provider.Burst)

	cfg.Cache.Backend = getEnv("EMBEDMATCH_CACHE_BACKEND", cfg.Cache.Backend)
	cfg.Cache.Capacity = getEnvInt("EMBEDMATCH_CACHE_CAPACITY", cfg.Cache.Capacity)

	cfg.Matching.Similarity = getEnv("EMBEDMATCH_SIMILARITY", cfg.Matching.Similarity)
	cfg.Matching.Concurrency = getEnvInt("EMBEDMATCH_CONCURRENCY", cfg.Matching.Concurrency)
}

// Validate checks that the configured names are known and the numbers usable.
func (c *Config) Validate() error {
	switch types.ProviderType(c.Provider.Type) {
	case types.ProviderOpenAI, types.ProviderGemini:
	default:
		return fmt.Errorf("%w: %q", providers.ErrUnsupportedProvider, c.Provider.Type)
	}
	if c.Provider.Dimensions < 0 {
		return errors.New("provider dimensions cannot be negative")
	}
	if c.Provider.RequestsPerSecond < 0 || c.Provider.Burst < 0 {
		return errors.New("provider rate limit cannot be negative")
	}

	switch types.BackendType(c.Cache.Backend) {
	case types.BackendMap:
	case types.BackendLRU:
		if c.Cache.Capacity <= 0 {
			return errors.New("lru cache requires a positive capacity")
		}
	default:
		return fmt.Errorf("%w: %q", backends.ErrUnsupportedBackend, c.Cache.Backend)
	}

	if _, err := similarity.ByName(c.Matching.Similarity); err != nil {
		return err
	}
	if c.Matching.Concurrency <= 0 {
		return errors.New("concurrency must be positive")
	}
	return nil
}

// Options validates the config and builds the options it describes. The
// provider client and the logger are created here.
func (c *Config) Options(ctx context.Context) ([]options.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	backend, err := backends.NewBackend(types.BackendType(c.Cache.Backend), types.BackendConfig{
		Capacity: c.Cache.Capacity,
	})
	if err != nil {
		return nil, err
	}

	comparator, err := similarity.ByName(c.Matching.Similarity)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(c.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	provider, err := providers.New(ctx, types.ProviderType(c.Provider.Type), providers.Settings{
		APIKey:     c.Provider.APIKey,
		BaseURL:    c.Provider.BaseURL,
		Model:      c.Provider.Model,
		Dimensions: c.Provider.Dimensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", c.Provider.Type, err)
	}

	opts := []options.Option{
		options.WithCustomBackend(backend),
		options.WithCustomProvider(provider),
		options.WithSimilarityComparator(comparator),
		options.WithConcurrency(c.Matching.Concurrency),
		options.WithLogger(logger),
	}
	if c.Provider.RequestsPerSecond > 0 {
		opts = append(opts, options.WithRateLimit(c.Provider.RequestsPerSecond, c.Provider.Burst))
	}
	return opts, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
