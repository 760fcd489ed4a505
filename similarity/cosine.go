package similarity

import "math"

// CosineSimilarity computes dot(a,b) / (|a| * |b|).
// The result lies in [-1, 1]; identical nonzero vectors score exactly 1.
// Vectors of different length fail with ErrDimensionMismatch and a zero-norm
// vector (including an empty one) fails with ErrDegenerateVector.
func CosineSimilarity(a, b []float32) (float64, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, err
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0, ErrDegenerateVector
	}

	score := dot / math.Sqrt(normA*normB)
	// rounding can push |score| a hair past 1
	return math.Max(-1, math.Min(1, score)), nil
}
