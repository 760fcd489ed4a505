package similarity

// DotProductSimilarity computes the dot product between two vectors.
// No normalization is applied, so results depend on vector magnitudes.
func DotProductSimilarity(a, b []float32) (float64, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, ErrDegenerateVector
	}

	var dot float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
	}

	return dot, nil
}
