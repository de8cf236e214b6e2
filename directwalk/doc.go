// Package directwalk implements the direct-walk ant clustering engine:
// stochastic agents range over point placeholders linked by a dynamically
// built symmetric neighborhood graph, score local density, and grow and
// merge clusters by following density gradients.
//
// What:
//
//   - Placeholders live in an integer-indexed arena; neighbor relations are
//     (id, distance) pairs kept sorted ascending by distance.
//   - Neighborhood discovery is lazy: an ant landing on an unexplored point
//     computes distances to all not-yet-complete peers, keeps those within
//     NeighborhoodSize, and pushes the reciprocal relation to each of them.
//   - By default every attribute is range-normalized to [0,1] over the
//     training set before distances are measured; the Alpha and
//     NeighborhoodSize defaults assume this scale.
//   - Local similarity (foi) of a point is
//     10 · max(0, mean(1 − d/Alpha)) over its neighbors, 0 without neighbors.
//   - Each ant call performs exactly one action: explore, mark noise, pick
//     up, mint a cluster, or join-and-merge; then one walk step.
//   - A colony run draws one active ant per call from a single seeded random
//     stream; a fixed number of calls forms a cycle, and the run stops on
//     cycle-budget exhaustion or total population shutdown.
//   - MaxClusters > 0 reduces the result to the k largest clusters and
//     compacts ids; the noise sentinel survives untouched.
//
// Why:
//
//   - Density-based clustering without a fixed cluster count: clusters
//     emerge where similarity gradients concentrate ants.
//   - Noise detection falls out of the similarity score: points whose foi
//     never rises above NoiseThreshold are set aside as outliers.
//
// Determinism:
//
//   - Identical Seed + Options + dataset reproduce the identical assignment
//     array. All stochastic decisions draw from one run-scoped stream.
//
// Distance symmetry:
//
//   - Discovery reuses reciprocal relations pushed by earlier explorations,
//     which halves the pairwise work but ASSUMES the distance function is
//     symmetric. A non-symmetric Distance silently corrupts neighbor sets;
//     there is no runtime guard. Supply symmetric metrics only.
//
// Errors:
//
//   - Configuration faults (ErrNonPositiveAlpha, ErrNoAnts, ...) wrap
//     core.ErrConfiguration and are raised before the run starts.
//   - ErrNoiseClusterMerge and ErrDoubleCarry wrap
//     core.ErrSimulationInvariant and indicate engine defects, never data
//     conditions.
//
// Complexity:
//
//   - Neighborhood discovery: O(n) distance calls per point, O(n²) total.
//   - One ant call: O(deg) for the merge scan, O(1) otherwise.
//   - A full run: O(MaxCycles·CallsPerCycle·deg) worst case.
package directwalk
