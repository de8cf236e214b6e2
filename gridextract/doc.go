// Package gridextract recovers clusters from final point placement on a
// 2D lattice: connected-component extraction, singleton reattachment and
// centroid-driven merging down to a requested cluster count.
//
// What:
//
//   - Lattice wraps a W×H occupancy surface (point index per cell, Empty
//     for free cells) with row-major index helpers.
//   - Extract identifies connected occupied regions via worklist BFS
//     (Conn4 by default, Conn8 optional), folds 1-member clusters into an
//     unambiguous neighboring cluster, and merges the closest-centroid
//     pair repeatedly until at most MaxClusters remain.
//   - The Result carries contiguous cluster ids 0..k-1 and a per-point
//     assignment array aligned with the dataset.
//
// Why:
//
//   - The antgrid engine ends a run with points physically sorted on the
//     lattice; spatial adjacency there IS the clustering. This package
//     turns geometry back into labels.
//   - Extraction is deterministic and side-effect free: re-running on an
//     unchanged lattice yields the same partition.
//
// Complexity:
//
//   - Extract (flood fill):      O(W·H·d), d = 4 or 8. Memory: O(W·H).
//   - Singleton reattachment:    O(s·w²) for s singletons, window width w.
//   - Merge to k clusters:       O((c−k)·c²·dim) for c initial clusters.
//
// Errors:
//
//   - ErrNilLattice, ErrBadLattice: malformed occupancy surface.
//   - ErrNilDataset: centroid math needs the feature vectors.
//   - ErrBadWindow, ErrBadMaxClusters: invalid options.
//
// All configuration faults wrap core.ErrConfiguration.
package gridextract
