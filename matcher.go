package embedmatch

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/botirk38/embedmatch/similarity"
	"go.uber.org/zap"
)

// MatchCandidate is one scored query/candidate pair. The embeddings are kept so
// a score can be explained or recomputed.
type MatchCandidate struct {
	QueryContent       string    `json:"query_content"`
	CandidateContent   string    `json:"candidate_content"`
	QueryEmbedding     []float32 `json:"query_embedding"`
	CandidateEmbedding []float32 `json:"candidate_embedding"`
	Score              float64   `json:"score"`
}

// Matcher ranks candidate strings against a query by embedding similarity.
type Matcher struct {
	cache      *Cache
	comparator similarity.SimilarityFunc
}

// NewMatcher creates a Matcher over a shared cache.
func NewMatcher(cache *Cache, comparator similarity.SimilarityFunc) (*Matcher, error) {
	if cache == nil {
		return nil, errors.New("cache cannot be nil")
	}
	if comparator == nil {
		return nil, errors.New("comparator cannot be nil")
	}

	return &Matcher{
		cache:      cache,
		comparator: comparator,
	}, nil
}

// Cache returns the embedding cache the matcher reads through.
func (m *Matcher) Cache() *Cache {
	return m.cache
}

// AllMatches scores every candidate against query and returns the results in
// candidate order, duplicates included. No sorting is applied.
func (m *Matcher) AllMatches(ctx context.Context, query string, candidates []string) ([]MatchCandidate, error) {
	q, err := m.cache.MakeEmbedded(ctx, query)
	if err != nil {
		return nil, err
	}

	corpus, err := m.cache.BuildCorpus(ctx, candidates)
	if err != nil {
		return nil, err
	}

	matches := make([]MatchCandidate, len(corpus))
	for i, candidate := range corpus {
		score, err := m.comparator(q.Embedding, candidate.Embedding)
		if err != nil {
			return nil, fmt.Errorf("scoring candidate %d: %w", i, err)
		}
		matches[i] = MatchCandidate{
			QueryContent:       q.Content,
			CandidateContent:   candidate.Content,
			QueryEmbedding:     q.Embedding,
			CandidateEmbedding: candidate.Embedding,
			Score:              score,
		}
	}

	m.cache.logger.Debug("scored candidates", zap.Int("candidates", len(matches)))
	return matches, nil
}

// BestMatch returns the highest scoring candidate. Ties go to the candidate
// that appears first. An empty candidate list fails with ErrEmptyCandidateSet
// before anything is embedded.
func (m *Matcher) BestMatch(ctx context.Context, query string, candidates []string) (MatchCandidate, error) {
	if len(candidates) == 0 {
		return MatchCandidate{}, ErrEmptyCandidateSet
	}

	matches, err := m.AllMatches(ctx, query, candidates)
	if err != nil {
		return MatchCandidate{}, err
	}
	return Rank(matches)[0], nil
}

// TopMatches returns up to n matches sorted by descending score.
func (m *Matcher) TopMatches(ctx context.Context, query string, candidates []string, n int) ([]MatchCandidate, error) {
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}

	matches, err := m.AllMatches(ctx, query, candidates)
	if err != nil {
		return nil, err
	}

	ranked := Rank(matches)
	if len(ranked) > n {
		return ranked[:n], nil
	}
	return ranked, nil
}

// Lookup returns the best match whose score is at least threshold, or nil if none qualifies.
func (m *Matcher) Lookup(ctx context.Context, query string, candidates []string, threshold float64) (*MatchCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	best, err := m.BestMatch(ctx, query, candidates)
	if err != nil {
		return nil, err
	}
	if best.Score < threshold {
		return nil, nil
	}
	return &best, nil
}

// Close closes the underlying cache.
func (m *Matcher) Close() error {
	return m.cache.Close()
}

// Rank returns a copy of matches sorted by descending score. The sort is
// stable, so equal scores keep their original relative order.
func Rank(matches []MatchCandidate) []MatchCandidate {
	ranked := make([]MatchCandidate, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
