package embedmatch

import (
	"errors"
	"fmt"

	"github.com/botirk38/embedmatch/similarity"
)

var (
	// ErrProvider matches every *ProviderError via errors.Is
	ErrProvider = errors.New("embedding provider failed")

	// ErrEmptyCandidateSet indicates a best match was requested with no candidates
	ErrEmptyCandidateSet = errors.New("no candidates to match against")

	// ErrDegenerateVector indicates a zero-norm embedding, for which cosine similarity is undefined
	ErrDegenerateVector = similarity.ErrDegenerateVector

	// ErrDimensionMismatch indicates two embeddings of different lengths were compared
	ErrDimensionMismatch = similarity.ErrDimensionMismatch

	// errEmptyEmbedding is wrapped in a ProviderError when a provider returns no values
	errEmptyEmbedding = errors.New("provider returned an empty embedding")
)

// ProviderError wraps a failure from the embedding provider for one piece of content.
// Nothing is cached for Content when it is returned.
type ProviderError struct {
	Content string
	Err     error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("embedding provider failed for %d-byte input: %v", len(e.Content), e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrProvider.
func (e *ProviderError) Is(target error) bool {
	return target == ErrProvider
}
