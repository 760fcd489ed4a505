package similarity

import "math"

// EuclideanSimilarity computes similarity based on Euclidean distance.
// Returns 1 / (1 + distance), so the result is in (0, 1] and 1 means identical vectors.
func EuclideanSimilarity(a, b []float32) (float64, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, ErrDegenerateVector
	}

	var sum float64
	for i := range a {
		diff := float64(a[i]) - float64(b[i])
		sum += diff * diff
	}

	return 1 / (1 + math.Sqrt(sum)), nil
}
