// Package directwalk defines options and defaults for the direct-walk engine.
package directwalk

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/core"
)

// similarityScale stretches the clamped mean similarity into the 0..10
// range the thresholds are calibrated against.
const similarityScale = 10.0

// clusterNone marks a placeholder not yet assigned to any cluster. It is
// distinct from core.Noise: a noise mark is a final verdict, clusterNone
// means "still up for grabs".
const clusterNone = -2

// Options configures one direct-walk run. Consumed once at initialization;
// the engine never mutates it during simulation.
//
// Fields:
//   - Alpha            — cohesion constant dividing neighbor distances in the
//     similarity score. Must be > 0. Smaller alpha makes the score drop
//     faster with distance.
//   - NeighborhoodSize — discovery radius; neighbors are points within this
//     distance. 0 yields empty neighborhoods everywhere.
//   - AlignDistances   — normalize candidate distances by the largest one
//     found during a discovery round before the radius test, making
//     NeighborhoodSize a relative cutoff.
//   - RaiseTolerance   — merge allowance: two adjacent clusters unify only
//     while the lower representative's similarity stays within this margin
//     of the joining point's own. 0 disables merging. Must be >= 0.
//   - NoiseDetection   — enable the noise verdict for low-similarity points.
//   - NoiseThreshold   — similarity at or below which a point is marked
//     noise. Must be >= 0 when NoiseDetection is set.
//   - Ants             — population size, >= 1.
//   - CallsPerCycle    — ant calls per cycle, >= 1.
//   - MaxCycles        — cycle budget, >= 1.
//   - IdleShutdown     — consecutive do-nothing calls after which an ant
//     shuts down, >= 1.
//   - MaxClusters      — reduce the result to the k largest clusters;
//     0 keeps every cluster.
//   - Distance         — distance oracle; nil defaults to
//     core.EuclideanDistance. Must be symmetric (see package docs).
//   - NormalizeAttributes — rescale every attribute to [0,1] over the
//     training set before measuring distances. Alpha and NeighborhoodSize
//     defaults are calibrated against this scale; turn off only when the
//     raw feature scale is meaningful.
//   - Seed             — master seed for the single run-scoped random
//     stream; 0 selects the fixed default seed.
//   - Logger           — structured run logging; nil defaults to zap.NewNop().
type Options struct {
	Alpha               float64
	NeighborhoodSize    float64
	AlignDistances      bool
	RaiseTolerance      float64
	NoiseDetection      bool
	NoiseThreshold      float64
	Ants                int
	CallsPerCycle       int
	MaxCycles           int
	IdleShutdown        int
	MaxClusters         int
	Distance            core.DistanceFunc
	NormalizeAttributes bool
	Seed                int64
	Logger              *zap.Logger
}

// DefaultOptions returns the calibrated direct-walk defaults: Alpha 0.37,
// NeighborhoodSize 0.25, RaiseTolerance 0.012, noise detection off, 10
// ants, 10000 calls per cycle, 50 cycles, idle shutdown after 1000 calls,
// unbounded cluster count, Euclidean distance over range-normalized
// attributes.
func DefaultOptions() Options {
	return Options{
		Alpha:               0.37,
		NeighborhoodSize:    0.25,
		RaiseTolerance:      0.012,
		Ants:                10,
		CallsPerCycle:       10000,
		MaxCycles:           50,
		IdleShutdown:        1000,
		Distance:            core.EuclideanDistance,
		NormalizeAttributes: true,
	}
}

// Validate rejects inconsistent option combinations. Every fault wraps
// core.ErrConfiguration.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Alpha <= 0 {
		return ErrNonPositiveAlpha
	}
	if o.NeighborhoodSize < 0 {
		return ErrNegativeRadius
	}
	if o.RaiseTolerance < 0 {
		return ErrNegativeTolerance
	}
	if o.NoiseDetection && o.NoiseThreshold < 0 {
		return ErrNegativeNoiseThreshold
	}
	if o.Ants < 1 {
		return ErrNoAnts
	}
	if o.CallsPerCycle < 1 || o.MaxCycles < 1 {
		return ErrBadBudget
	}
	if o.IdleShutdown < 1 {
		return ErrBadIdleShutdown
	}
	if o.MaxClusters < 0 {
		return ErrBadMaxClusters
	}
	return nil
}
