// Package tokenizer counts tokens the way OpenAI embedding models see them.
package tokenizer

import (
	"errors"
	"fmt"

	"github.com/tiktoken-go/tokenizer"
)

// ErrTokenizerFailed indicates tokenization failed
var ErrTokenizerFailed = errors.New("tokenization failed")

// Counter counts tokens using tiktoken's cl100k_base encoding, which is the
// encoding of text-embedding-3-small, text-embedding-3-large and ada-002.
// This is a local operation that doesn't require an API call.
type Counter struct {
	encoding tokenizer.Codec
}

// NewCounter creates a Counter backed by the cl100k_base encoding
func NewCounter() (*Counter, error) {
	enc, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tokenizer: %w", err)
	}
	return &Counter{encoding: enc}, nil
}

// CountTokens counts the number of tokens in text
func (c *Counter) CountTokens(text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	ids, _, err := c.encoding.Encode(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrTokenizerFailed, err)
	}
	return len(ids), nil
}
