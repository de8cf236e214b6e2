package core

import "math"

// DistanceFunc is the opaque distance oracle between two feature vectors.
// Engines treat it as symmetric and non-negative; see the directwalk
// package docs for what happens when symmetry is violated.
type DistanceFunc func(a, b []float64) float64

// EuclideanDistance returns the L2 distance between a and b.
// Vectors of unequal length are compared over the shorter prefix.
//
// Complexity: O(d).
func EuclideanDistance(a, b []float64) float64 {
	var (
		n   = min(len(a), len(b))
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanDistance returns the L1 distance between a and b.
// Vectors of unequal length are compared over the shorter prefix.
//
// Complexity: O(d).
func ManhattanDistance(a, b []float64) float64 {
	var (
		n   = min(len(a), len(b))
		sum float64
		i   int
	)
	for i = 0; i < n; i++ {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// SkipMissing adapts fn to tolerate missing values encoded as NaN:
// coordinates where either side is NaN are dropped pairwise and the
// result is rescaled to the full dimension, so partially observed points
// remain comparable to complete ones. With every coordinate missing the
// distance is 0.
//
// Complexity: O(d) plus one call to fn on the reduced vectors.
func SkipMissing(fn DistanceFunc) DistanceFunc {
	return func(a, b []float64) float64 {
		var (
			n  = min(len(a), len(b))
			ra = make([]float64, 0, n)
			rb = make([]float64, 0, n)
			i  int
		)
		for i = 0; i < n; i++ {
			if math.IsNaN(a[i]) || math.IsNaN(b[i]) {
				continue
			}
			ra = append(ra, a[i])
			rb = append(rb, b[i])
		}
		if len(ra) == 0 {
			return 0
		}
		// Rescale so that dropping coordinates does not shrink distances.
		return fn(ra, rb) * float64(n) / float64(len(ra))
	}
}
