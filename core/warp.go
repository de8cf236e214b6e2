package core

import "math"

// WarpingDistance returns a DistanceFunc computing the dynamic time
// warping alignment cost between two sequences: coordinate order is
// treated as a time axis and each side may stretch or compress to line
// up with the other. Useful when points are sampled signals rather than
// independent features.
//
// window > 0 constrains alignment to the Sakoe-Chiba band |i-j| <=
// window; 0 leaves it unconstrained. A band narrower than the length
// difference admits no path and the result is +Inf. penalty is added to
// every non-diagonal step, biasing toward pointwise comparison.
//
// Only the distance is computed, so two DP rows suffice.
//
// Complexity: O(n·m) time, O(m) memory.
func WarpingDistance(window int, penalty float64) DistanceFunc {
	return func(a, b []float64) float64 {
		var (
			n, m = len(a), len(b)
			inf  = math.Inf(1)
		)
		if n == 0 || m == 0 {
			return 0
		}

		prev := make([]float64, m+1)
		curr := make([]float64, m+1)
		for j := 1; j <= m; j++ {
			prev[j] = inf
		}

		for i := 1; i <= n; i++ {
			curr[0] = inf
			for j := 1; j <= m; j++ {
				if d := i - j; window > 0 && (d > window || -d > window) {
					curr[j] = inf
					continue
				}
				var (
					cost = math.Abs(a[i-1] - b[j-1])
					best = math.Min(prev[j-1], math.Min(prev[j]+penalty, curr[j-1]+penalty))
				)
				curr[j] = cost + best
			}
			prev, curr = curr, prev
		}
		return prev[m]
	}
}
