// Package core - shared types and sentinel errors for all antclust engines.
package core

import "errors"

// Noise is the reserved sentinel cluster id meaning "not clustered /
// regarded as outlier". It survives result compaction untouched and is
// returned by ClusterOf for unseen points.
const Noise = -1

// Sentinel errors shared by all engines. Engine packages wrap these with
// package-local context via fmt.Errorf("...: %w", ...), so callers can
// branch on the taxonomy with errors.Is.
var (
	// ErrConfiguration indicates an invalid parameter detected before a
	// simulation starts. Fatal, never retried.
	ErrConfiguration = errors.New("core: invalid configuration")
	// ErrSimulationInvariant indicates a broken internal invariant during a
	// run (e.g. an ant acquiring while already carrying). A logic fault,
	// surfaced immediately, never recovered.
	ErrSimulationInvariant = errors.New("core: simulation invariant violated")
	// ErrEmptyDataset indicates a dataset with zero points.
	ErrEmptyDataset = errors.New("core: dataset must contain at least one point")
	// ErrDimensionMismatch indicates rows of differing feature counts or a
	// query vector of the wrong length.
	ErrDimensionMismatch = errors.New("core: feature vector dimension mismatch")
)

// Clusterer is the host contract every antclust engine satisfies.
//
// Build trains the model in place on ds and produces the per-point
// assignment array. ClusterOf matches features by exact equality against
// the training set; a miss yields Noise (not an error). NumClusters is
// max assigned id + 1. Assignments returns a copy of the per-point
// assignment array, indexed like the training dataset.
type Clusterer interface {
	Build(ds *Dataset) error
	ClusterOf(features []float64) int
	NumClusters() int
	Assignments() []int
}
