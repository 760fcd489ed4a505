package embedmatch

import "context"

// AllMatchesResult holds the result of an async AllMatches operation.
type AllMatchesResult struct {
	Matches []MatchCandidate
	Error   error
}

// AllMatchesAsync runs AllMatches in a goroutine.
// Returns a channel that will receive the result when complete.
func (m *Matcher) AllMatchesAsync(ctx context.Context, query string, candidates []string) <-chan AllMatchesResult {
	resultCh := make(chan AllMatchesResult, 1)
	go func() {
		defer close(resultCh)
		matches, err := m.AllMatches(ctx, query, candidates)
		resultCh <- AllMatchesResult{Matches: matches, Error: err}
	}()
	return resultCh
}

// BestMatchResult holds the result of an async BestMatch operation.
type BestMatchResult struct {
	Match MatchCandidate
	Error error
}

// BestMatchAsync runs BestMatch in a goroutine.
// Returns a channel that will receive the result when complete.
func (m *Matcher) BestMatchAsync(ctx context.Context, query string, candidates []string) <-chan BestMatchResult {
	resultCh := make(chan BestMatchResult, 1)
	go func() {
		defer close(resultCh)
		match, err := m.BestMatch(ctx, query, candidates)
		resultCh <- BestMatchResult{Match: match, Error: err}
	}()
	return resultCh
}

// CorpusResult holds the result of an async BuildCorpus operation.
type CorpusResult struct {
	Corpus []EmbeddedValue
	Error  error
}

// BuildCorpusAsync runs BuildCorpus in a goroutine.
// Returns a channel that will receive the result when complete.
func (c *Cache) BuildCorpusAsync(ctx context.Context, contents []string) <-chan CorpusResult {
	resultCh := make(chan CorpusResult, 1)
	go func() {
		defer close(resultCh)
		corpus, err := c.BuildCorpus(ctx, contents)
		resultCh <- CorpusResult{Corpus: corpus, Error: err}
	}()
	return resultCh
}
