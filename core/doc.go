// Package core provides the shared primitives consumed by every antclust
// engine: immutable datasets, pluggable distance functions, deterministic
// random streams and the host Clusterer contract.
//
// What:
//
//   - Dataset wraps a [][]float64 point matrix with immutable, index-based access.
//   - DistanceFunc is the opaque distance oracle (assumed symmetric, non-negative);
//     EuclideanDistance and ManhattanDistance are provided, SkipMissing adapts any
//     DistanceFunc to tolerate NaN coordinates.
//   - NewRand / DeriveSeed / DeriveRand centralize deterministic random generation:
//     one stream per colony run, passed explicitly through every stochastic call site.
//   - Clusterer is the host contract every engine satisfies: Build, ClusterOf,
//     NumClusters, Assignments.
//   - GaussianBlobs generates synthetic Gaussian point clouds for tests and demos.
//
// Why:
//
//   - Reproducibility: identical seed + configuration + dataset must produce an
//     identical assignment array; hidden global RNG state would break that.
//   - Engine independence: directwalk, antgrid and gridextract share exactly this
//     surface and nothing else.
//
// Errors:
//
//   - ErrConfiguration: invalid parameter, fatal before a run starts.
//   - ErrSimulationInvariant: logic fault inside a run, surfaced immediately.
//   - ErrEmptyDataset, ErrDimensionMismatch: dataset construction faults.
//
// Concurrency:
//
//   - math/rand.Rand is NOT goroutine-safe; a run owns its stream exclusively.
//   - Dataset is immutable after construction and safe for concurrent reads.
package core
