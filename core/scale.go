package core

import "math"

// RangeScaler rescales feature vectors so every attribute spans [0,1]
// over a training dataset, matching the attribute normalization most
// metric-sensitive parameters are calibrated against. Attributes with
// zero observed range map to 0; NaN coordinates pass through untouched
// so missing-value handling composes.
type RangeScaler struct {
	min  []float64
	span []float64
}

// NewRangeScaler learns per-attribute minima and ranges from ds.
// NaN coordinates are ignored when scanning.
//
// Complexity: O(n·d).
func NewRangeScaler(ds *Dataset) *RangeScaler {
	var (
		d  = ds.Dim()
		s  = &RangeScaler{min: make([]float64, d), span: make([]float64, d)}
		hi = make([]float64, d)
	)
	for j := 0; j < d; j++ {
		s.min[j] = math.Inf(1)
		hi[j] = math.Inf(-1)
	}
	for i := 0; i < ds.Len(); i++ {
		p := ds.Point(i)
		for j, v := range p {
			if math.IsNaN(v) {
				continue
			}
			if v < s.min[j] {
				s.min[j] = v
			}
			if v > hi[j] {
				hi[j] = v
			}
		}
	}
	for j := 0; j < d; j++ {
		if math.IsInf(s.min[j], 1) {
			// attribute never observed
			s.min[j] = 0
			continue
		}
		s.span[j] = hi[j] - s.min[j]
	}
	return s
}

// Normalize returns a scaled copy of p. Coordinates beyond the learned
// dimension are passed through unscaled.
//
// Complexity: O(d).
func (s *RangeScaler) Normalize(p []float64) []float64 {
	out := make([]float64, len(p))
	for j, v := range p {
		switch {
		case j >= len(s.min) || math.IsNaN(v):
			out[j] = v
		case s.span[j] == 0:
			out[j] = 0
		default:
			out[j] = (v - s.min[j]) / s.span[j]
		}
	}
	return out
}

// Wrap adapts fn to compare range-normalized vectors.
func (s *RangeScaler) Wrap(fn DistanceFunc) DistanceFunc {
	return func(a, b []float64) float64 {
		return fn(s.Normalize(a), s.Normalize(b))
	}
}
