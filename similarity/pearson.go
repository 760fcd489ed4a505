package similarity

import "math"

// PearsonCorrelationSimilarity computes the Pearson correlation coefficient.
// Returns a value between -1 and 1, where 1 means perfect positive correlation.
// A vector with zero variance fails with ErrDegenerateVector.
func PearsonCorrelationSimilarity(a, b []float32) (float64, error) {
	if err := checkDimensions(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, ErrDegenerateVector
	}

	n := float64(len(a))

	var meanA, meanB float64
	for i := range a {
		meanA += float64(a[i])
		meanB += float64(b[i])
	}
	meanA /= n
	meanB /= n

	var numerator, sumSqA, sumSqB float64
	for i := range a {
		diffA := float64(a[i]) - meanA
		diffB := float64(b[i]) - meanB
		numerator += diffA * diffB
		sumSqA += diffA * diffA
		sumSqB += diffB * diffB
	}

	if sumSqA == 0 || sumSqB == 0 {
		return 0, ErrDegenerateVector
	}

	r := numerator / math.Sqrt(sumSqA*sumSqB)
	return math.Max(-1, math.Min(1, r)), nil
}
