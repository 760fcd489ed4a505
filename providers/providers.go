package providers

import (
	"context"
	"errors"

	"github.com/botirk38/embedmatch/providers/gemini"
	"github.com/botirk38/embedmatch/providers/openai"
	"github.com/botirk38/embedmatch/types"
)

var ErrUnsupportedProvider = errors.New("unsupported provider type")

// Settings carries provider-agnostic settings used by New
type Settings struct {
	APIKey     string
	BaseURL    string
	Model      string
	Dimensions int
}

// New creates an embedding provider of the specified type
func New(ctx context.Context, providerType types.ProviderType, settings Settings) (types.EmbeddingProvider, error) {
	switch providerType {
	case types.ProviderOpenAI:
		return NewOpenAIProvider(openai.OpenAIConfig{
			APIKey:     settings.APIKey,
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		})
	case types.ProviderGemini:
		return NewGeminiProvider(ctx, gemini.GeminiConfig{
			APIKey:     settings.APIKey,
			BaseURL:    settings.BaseURL,
			Model:      settings.Model,
			Dimensions: settings.Dimensions,
		})
	default:
		return nil, ErrUnsupportedProvider
	}
}

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(config openai.OpenAIConfig) (types.EmbeddingProvider, error) {
	provider, err := openai.NewOpenAIProvider(config)
	if err != nil {
		return nil, err
	}
	return provider, nil
}

// NewGeminiProvider creates a new Gemini provider
func NewGeminiProvider(ctx context.Context, config gemini.GeminiConfig) (types.EmbeddingProvider, error) {
	provider, err := gemini.NewGeminiProvider(ctx, config)
	if err != nil {
		return nil, err
	}
	return provider, nil
}
