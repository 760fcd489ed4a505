package config

import (
	"github.com/botirk38/embedmatch/options"
	"github.com/botirk38/embedmatch/types"
)

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Provider.Type == "" {
		cfg.Provider.Type = string(types.ProviderOpenAI)
	}
	if cfg.Provider.RequestsPerSecond > 0 && cfg.Provider.Burst == 0 {
		cfg.Provider.Burst = 1
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = string(types.BackendMap)
	}
	if cfg.Matching.Similarity == "" {
		cfg.Matching.Similarity = "cosine"
	}
	if cfg.Matching.Concurrency == 0 {
		cfg.Matching.Concurrency = options.DefaultConcurrency
	}
}
