package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
)

func TestNewGeminiProviderConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")
	ctx := context.Background()

	if _, err := NewGeminiProvider(ctx, GeminiConfig{}); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("Expected ErrMissingAPIKey, got %v", err)
	}

	if _, err := NewGeminiProvider(ctx, GeminiConfig{APIKey: "test-key", Dimensions: -5}); err == nil {
		t.Error("Expected error for negative dimensions")
	}

	provider, err := NewGeminiProvider(ctx, GeminiConfig{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("NewGeminiProvider() error: %v", err)
	}
	defer provider.Close()

	if provider.Model() != DefaultGeminiModel {
		t.Errorf("Expected default model %s, got %s", DefaultGeminiModel, provider.Model())
	}

	if _, err := provider.EmbedText(ctx, ""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestNewGeminiProviderEnvKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{Model: "gemini-embedding-001"})
	if err != nil {
		t.Fatalf("Expected GOOGLE_API_KEY to be used, got: %v", err)
	}
	if provider.Model() != "gemini-embedding-001" {
		t.Errorf("Expected custom model, got %s", provider.Model())
	}
}

type embedRequest struct {
	Requests []struct {
		Model                string `json:"model"`
		OutputDimensionality *int   `json:"outputDimensionality"`
		Content              struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"requests"`
}

func newTestServer(t *testing.T, status int, body string, seen func(embedRequest)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if !strings.HasSuffix(r.URL.Path, "/models/"+DefaultGeminiModel+":batchEmbedContents") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if key := r.Header.Get("x-goog-api-key"); key != "test-key" {
			t.Errorf("unexpected API key %q", key)
		}
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if seen != nil {
			seen(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &calls
}

func TestGeminiProviderEmbedText(t *testing.T) {
	requests := make(chan embedRequest, 1)
	server, calls := newTestServer(t, http.StatusOK,
		`{"embeddings": [{"values": [0.5, -0.25, 1.0]}]}`,
		func(req embedRequest) { requests <- req })

	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{
		APIKey:     "test-key",
		BaseURL:    server.URL,
		Dimensions: 3,
	})
	if err != nil {
		t.Fatalf("NewGeminiProvider() error: %v", err)
	}

	embedding, err := provider.EmbedText(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("EmbedText() error: %v", err)
	}
	if want := []float32{0.5, -0.25, 1.0}; !slices.Equal(embedding, want) {
		t.Errorf("EmbedText() = %v, want %v", embedding, want)
	}
	if calls.Load() != 1 {
		t.Errorf("Expected 1 request, got %d", calls.Load())
	}

	got := <-requests
	if len(got.Requests) != 1 {
		t.Fatalf("Expected 1 embed request, got %d", len(got.Requests))
	}
	req := got.Requests[0]
	if req.OutputDimensionality == nil || *req.OutputDimensionality != 3 {
		t.Errorf("Expected outputDimensionality 3, got %v", req.OutputDimensionality)
	}
	if len(req.Content.Parts) != 1 || req.Content.Parts[0].Text != "hello world" {
		t.Errorf("Unexpected content %+v", req.Content)
	}
}

func TestGeminiProviderDefaultDimensions(t *testing.T) {
	requests := make(chan embedRequest, 1)
	server, _ := newTestServer(t, http.StatusOK,
		`{"embeddings": [{"values": [1, 0]}]}`,
		func(req embedRequest) { requests <- req })

	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider() error: %v", err)
	}
	if _, err := provider.EmbedText(context.Background(), "hello"); err != nil {
		t.Fatalf("EmbedText() error: %v", err)
	}
	if got := <-requests; len(got.Requests) != 1 || got.Requests[0].OutputDimensionality != nil {
		t.Errorf("Expected no outputDimensionality, got %+v", got.Requests)
	}
}

func TestGeminiProviderEmptyResponse(t *testing.T) {
	for name, body := range map[string]string{
		"NoEmbeddings": `{"embeddings": []}`,
		"EmptyValues":  `{"embeddings": [{"values": []}]}`,
		"MissingField": `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			server, _ := newTestServer(t, http.StatusOK, body, nil)

			provider, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
			if err != nil {
				t.Fatalf("NewGeminiProvider() error: %v", err)
			}
			if _, err := provider.EmbedText(context.Background(), "hello"); !errors.Is(err, ErrNoEmbedding) {
				t.Errorf("Expected ErrNoEmbedding, got %v", err)
			}
		})
	}
}

func TestGeminiProviderAPIError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusBadRequest,
		`{"error": {"code": 400, "message": "bad input", "status": "INVALID_ARGUMENT"}}`, nil)

	provider, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test-key", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewGeminiProvider() error: %v", err)
	}
	if _, err := provider.EmbedText(context.Background(), "hello"); err == nil {
		t.Error("Expected error from API")
	}
}
