package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const DefaultGeminiModel = "text-embedding-004"

var (
	// ErrMissingAPIKey indicates no API key was configured or found in the environment
	ErrMissingAPIKey = errors.New("Gemini API key is required")

	// ErrEmptyInput indicates an attempt to embed the empty string
	ErrEmptyInput = errors.New("cannot embed empty text")

	// ErrNoEmbedding indicates the API answered without any embedding values
	ErrNoEmbedding = errors.New("no embedding returned by Gemini")
)

// GeminiProvider uses the Gemini API to embed text.
type GeminiProvider struct {
	client     *genai.Client
	model      string
	dimensions int32
}

// GeminiConfig provides configuration options for the Gemini embedding provider
type GeminiConfig struct {
	APIKey string
	Model  string

	// BaseURL overrides the Gemini API endpoint, e.g. for a proxy
	BaseURL string

	// Dimensions truncates output vectors when positive. Zero keeps the model default.
	Dimensions int
}

// NewGeminiProvider creates an embedding provider for Gemini.
// If APIKey is empty, GEMINI_API_KEY and then GOOGLE_API_KEY are consulted.
func NewGeminiProvider(ctx context.Context, config GeminiConfig) (*GeminiProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	if config.Dimensions < 0 {
		return nil, fmt.Errorf("dimensions must be non-negative, got %d", config.Dimensions)
	}

	model := config.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: config.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:     client,
		model:      model,
		dimensions: int32(config.Dimensions),
	}, nil
}

// Model returns the embedding model name
func (p *GeminiProvider) Model() string {
	return p.model
}

// EmbedText sends the embedding request to Gemini.
func (p *GeminiProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	var cfg *genai.EmbedContentConfig
	if p.dimensions > 0 {
		dims := p.dimensions
		cfg = &genai.EmbedContentConfig{OutputDimensionality: &dims}
	}

	resp, err := p.client.Models.EmbedContent(ctx, p.model, genai.Text(text), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini embedding failed: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrNoEmbedding
	}
	return resp.Embeddings[0].Values, nil
}

func (p *GeminiProvider) Close() {}
