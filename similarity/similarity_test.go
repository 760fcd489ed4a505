package similarity

import (
	"errors"
	"math"
	"testing"
)

// Test similarity functions with known vectors
func TestSimilarityFunctions(t *testing.T) {
	vec1 := []float32{1, 0, 0}
	vec2 := []float32{0, 1, 0}
	vec3 := []float32{1, 0, 0} // Same as vec1

	t.Run("CosineSimilarity", func(t *testing.T) {
		// Orthogonal vectors
		sim, err := CosineSimilarity(vec1, vec2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim != 0 {
			t.Errorf("Expected 0, got %f", sim)
		}

		// Identical vectors
		sim, err = CosineSimilarity(vec1, vec3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim != 1 {
			t.Errorf("Expected 1, got %f", sim)
		}

		// Opposite vectors
		sim, err = CosineSimilarity(vec1, []float32{-1, 0, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sim != -1 {
			t.Errorf("Expected -1, got %f", sim)
		}
	})

	t.Run("EuclideanSimilarity", func(t *testing.T) {
		sim, err := EuclideanSimilarity(vec1, vec3)
		if err != nil || sim != 1 {
			t.Errorf("Expected 1, got %f (err %v)", sim, err)
		}

		sim, err = EuclideanSimilarity(vec1, vec2)
		if err != nil || sim >= 1 {
			t.Errorf("Expected < 1, got %f (err %v)", sim, err)
		}
	})

	t.Run("DotProductSimilarity", func(t *testing.T) {
		sim, err := DotProductSimilarity(vec1, vec2)
		if err != nil || sim != 0 {
			t.Errorf("Expected 0, got %f (err %v)", sim, err)
		}

		sim, err = DotProductSimilarity(vec1, vec3)
		if err != nil || sim != 1 {
			t.Errorf("Expected 1, got %f (err %v)", sim, err)
		}
	})

	t.Run("ManhattanSimilarity", func(t *testing.T) {
		sim, err := ManhattanSimilarity(vec1, vec3)
		if err != nil || sim != 1 {
			t.Errorf("Expected 1, got %f (err %v)", sim, err)
		}

		sim, err = ManhattanSimilarity(vec1, vec2)
		if err != nil || sim >= 1 {
			t.Errorf("Expected < 1, got %f (err %v)", sim, err)
		}
	})

	t.Run("PearsonCorrelationSimilarity", func(t *testing.T) {
		a := []float32{1, 2, 3, 4, 5}
		b := []float32{2, 4, 6, 8, 10} // Perfect positive correlation

		sim, err := PearsonCorrelationSimilarity(a, b)
		if err != nil || math.Abs(sim-1) > 0.001 {
			t.Errorf("Expected ~1 for perfect correlation, got %f (err %v)", sim, err)
		}

		c := []float32{5, 4, 3, 2, 1}
		sim, err = PearsonCorrelationSimilarity(a, c)
		if err != nil || math.Abs(sim+1) > 0.001 {
			t.Errorf("Expected ~-1 for negative correlation, got %f (err %v)", sim, err)
		}

		_, err = PearsonCorrelationSimilarity([]float32{3, 3, 3}, a[:3])
		if !errors.Is(err, ErrDegenerateVector) {
			t.Errorf("Expected ErrDegenerateVector for constant vector, got %v", err)
		}
	})
}

func TestCosineSimilarityErrors(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want error
	}{
		{"zero vector first", []float32{0, 0, 0}, []float32{1, 2, 3}, ErrDegenerateVector},
		{"zero vector second", []float32{1, 2, 3}, []float32{0, 0, 0}, ErrDegenerateVector},
		{"empty vectors", []float32{}, []float32{}, ErrDegenerateVector},
		{"nil vectors", nil, nil, ErrDegenerateVector},
		{"different lengths", []float32{1, 0, 0}, []float32{1, 0}, ErrDimensionMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := CosineSimilarity(tt.a, tt.b)
			if !errors.Is(err, tt.want) {
				t.Fatalf("CosineSimilarity() error = %v, want %v", err, tt.want)
			}
			if math.IsNaN(sim) {
				t.Error("CosineSimilarity() returned NaN")
			}
		})
	}
}

func TestCosineSimilarityBounds(t *testing.T) {
	vectors := [][]float32{
		{1, 2, 3},
		{-4, 0.5, 9},
		{0.001, -0.002, 0.003},
		{1e6, 1e-6, -3},
		{0.1, 0.1, 0.1},
		{-1, -2, -3},
	}

	for i, a := range vectors {
		self, err := CosineSimilarity(a, a)
		if err != nil {
			t.Fatalf("vector %d: unexpected error: %v", i, err)
		}
		if self != 1.0 {
			t.Errorf("vector %d: self similarity = %v, want exactly 1", i, self)
		}

		for j, b := range vectors {
			sim, err := CosineSimilarity(a, b)
			if err != nil {
				t.Fatalf("pair (%d,%d): unexpected error: %v", i, j, err)
			}
			if sim < -1 || sim > 1 {
				t.Errorf("pair (%d,%d): similarity %v out of [-1, 1]", i, j, sim)
			}
		}
	}
}

func TestMismatchedDimensions(t *testing.T) {
	funcs := map[string]SimilarityFunc{
		"cosine":    CosineSimilarity,
		"dot":       DotProductSimilarity,
		"euclidean": EuclideanSimilarity,
		"manhattan": ManhattanSimilarity,
		"pearson":   PearsonCorrelationSimilarity,
	}

	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			if _, err := fn([]float32{1, 2, 3}, []float32{1, 2}); !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("expected ErrDimensionMismatch, got %v", err)
			}
		})
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "cosine", "COSINE", "dot", "euclidean", "manhattan", "pearson"} {
		fn, err := ByName(name)
		if err != nil {
			t.Errorf("ByName(%q) error: %v", name, err)
			continue
		}
		if fn == nil {
			t.Errorf("ByName(%q) returned nil func", name)
		}
	}

	if _, err := ByName("jaccard"); !errors.Is(err, ErrUnknownSimilarity) {
		t.Errorf("expected ErrUnknownSimilarity, got %v", err)
	}
}
