package openai

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/botirk38/embedmatch/tokenizer"
	openai "github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

const (
	DefaultOpenAIModel = openai.EmbeddingModelTextEmbedding3Small

	// defaultMaxTokens is the input limit shared by all current OpenAI embedding models
	defaultMaxTokens = 8191
)

var (
	// ErrMissingAPIKey indicates no API key was configured or found in OPENAI_API_KEY
	ErrMissingAPIKey = errors.New("OpenAI API key is required")

	// ErrEmptyInput indicates an attempt to embed the empty string, which the API rejects
	ErrEmptyInput = errors.New("cannot embed empty text")

	// ErrInputTooLong indicates the text exceeds the model's input token limit
	ErrInputTooLong = errors.New("text exceeds model token limit")

	// ErrNoEmbedding indicates the API answered without any embedding data
	ErrNoEmbedding = errors.New("no embedding returned by OpenAI")
)

// openAIModelLimits maps embedding models to their maximum input tokens
var openAIModelLimits = map[string]int{
	openai.EmbeddingModelTextEmbedding3Small: 8191,
	openai.EmbeddingModelTextEmbedding3Large: 8191,
	openai.EmbeddingModelTextEmbeddingAda002: 8191,
}

// OpenAIProvider uses OpenAI's API to embed text.
type OpenAIProvider struct {
	client     *openai.Client
	model      string
	dimensions int
	counter    *tokenizer.Counter
}

// OpenAIConfig provides configuration options for OpenAI embedding provider
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	OrgID   string
	Model   string

	// Dimensions asks text-embedding-3 models for shortened vectors. Zero keeps the model default.
	Dimensions int

	// MaxRetries overrides the SDK's retry count when positive.
	MaxRetries int
}

// NewOpenAIProvider creates an embedding provider for OpenAI.
func NewOpenAIProvider(config OpenAIConfig) (*OpenAIProvider, error) {
	apiKey := config.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
	}

	model := config.Model
	if model == "" {
		model = DefaultOpenAIModel
	}

	if config.Dimensions < 0 {
		return nil, fmt.Errorf("dimensions must be non-negative, got %d", config.Dimensions)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.OrgID != "" {
		opts = append(opts, option.WithOrganization(config.OrgID))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	counter, err := tokenizer.NewCounter()
	if err != nil {
		return nil, err
	}

	client := openai.NewClient(opts...)
	return &OpenAIProvider{
		client:     &client,
		model:      model,
		dimensions: config.Dimensions,
		counter:    counter,
	}, nil
}

// GetMaxTokens returns the maximum input tokens for the configured model
func (p *OpenAIProvider) GetMaxTokens() int {
	if limit, ok := openAIModelLimits[p.model]; ok {
		return limit
	}
	return defaultMaxTokens
}

// Model returns the embedding model name
func (p *OpenAIProvider) Model() string {
	return p.model
}

// EmbedText sends the embedding request to OpenAI.
// Inputs over the model's token limit are rejected locally.
func (p *OpenAIProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, ErrEmptyInput
	}

	if p.counter != nil {
		tokens, err := p.counter.CountTokens(text)
		if err != nil {
			return nil, err
		}
		if limit := p.GetMaxTokens(); tokens > limit {
			return nil, fmt.Errorf("%w: %d tokens, limit %d", ErrInputTooLong, tokens, limit)
		}
	}

	params := openai.EmbeddingNewParams{
		Model: openai.EmbeddingModel(p.model),
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: []string{text},
		},
	}
	if p.dimensions > 0 {
		params.Dimensions = openai.Int(int64(p.dimensions))
	}

	resp, err := p.client.Embeddings.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, ErrNoEmbedding
	}
	// OpenAI returns []float64; convert to []float32
	embeddingF64 := resp.Data[0].Embedding
	embeddingF32 := make([]float32, len(embeddingF64))
	for i, v := range embeddingF64 {
		embeddingF32[i] = float32(v)
	}
	return embeddingF32, nil
}

func (p *OpenAIProvider) Close() {}
