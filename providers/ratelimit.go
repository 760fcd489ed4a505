package providers

import (
	"context"
	"errors"

	"github.com/botirk38/embedmatch/types"
	"golang.org/x/time/rate"
)

// ErrInvalidRateLimit is returned for a non-positive request rate or burst
var ErrInvalidRateLimit = errors.New("rate limit requires positive requests per second and burst")

// RateLimitedProvider delays embedding requests so the wrapped provider sees
// at most RequestsPerSecond calls on average. A request whose context ends
// while waiting fails with the context's error.
type RateLimitedProvider struct {
	provider types.EmbeddingProvider
	limiter  *rate.Limiter
}

// NewRateLimited wraps provider with a token bucket limiter.
func NewRateLimited(provider types.EmbeddingProvider, requestsPerSecond float64, burst int) (*RateLimitedProvider, error) {
	if provider == nil {
		return nil, errors.New("provider cannot be nil")
	}
	if requestsPerSecond <= 0 || burst <= 0 {
		return nil, ErrInvalidRateLimit
	}

	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}, nil
}

// EmbedText waits for the limiter, then delegates to the wrapped provider.
func (p *RateLimitedProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return p.provider.EmbedText(ctx, text)
}

// Close closes the wrapped provider.
func (p *RateLimitedProvider) Close() {
	p.provider.Close()
}
