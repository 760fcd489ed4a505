// Package similarity provides similarity algorithms for comparing embedding vectors.
package similarity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDimensionMismatch indicates the two vectors have different lengths
	ErrDimensionMismatch = errors.New("embedding dimensions do not match")

	// ErrDegenerateVector indicates a vector with zero norm (or zero variance),
	// for which the similarity is undefined
	ErrDegenerateVector = errors.New("similarity undefined for degenerate vector")

	// ErrUnknownSimilarity indicates ByName was given an unsupported name
	ErrUnknownSimilarity = errors.New("unknown similarity function")
)

// SimilarityFunc computes similarity between two embedding vectors.
// Higher values indicate greater similarity.
type SimilarityFunc func(a, b []float32) (float64, error)

// ByName returns the built-in similarity function registered under name.
// Accepted names: cosine, dot, euclidean, manhattan, pearson.
func ByName(name string) (SimilarityFunc, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cosine":
		return CosineSimilarity, nil
	case "dot", "dotproduct", "dot_product":
		return DotProductSimilarity, nil
	case "euclidean":
		return EuclideanSimilarity, nil
	case "manhattan":
		return ManhattanSimilarity, nil
	case "pearson":
		return PearsonCorrelationSimilarity, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSimilarity, name)
	}
}

func checkDimensions(a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}
	return nil
}
