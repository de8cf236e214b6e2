// Package antgrid implements the spatial-grid ant clustering engine:
// stochastic agents roam a bounded 2-D lattice and physically relocate
// point placeholders, so that similar points pile up into spatial heaps
// which a subsequent extraction pass reads back as clusters.
//
// What:
//
//   - The lattice is a row-major occupancy surface; each cell holds at
//     most one point index. The dataset is scattered uniformly at run
//     start and must leave at least 20% of the cells free.
//   - An ant judges the cell under it through a square view window: the
//     window similarity (foi) averages 1 − distance/divisor over the
//     occupants, where the divisor grows with the ant's speed class.
//   - Pick-up fires with probability (Kp/(Kp+foi))², drop-down with the
//     piecewise original rule or its symmetric variant; both draw from
//     the single run-scoped random stream.
//   - Optional drop memory remembers recent drop locations and, once
//     full, pulls the ant carrying a similar point toward the best
//     remembered cell. Optional destructive mode forces pick-ups after a
//     stretch of cycles without one, breaking frozen surfaces.
//   - Movement is cardinal, up to speed cells per call, never across the
//     border and never away from an active drop destination.
//   - After the cycle budget a drain pass makes every carrying ant
//     deposit its point, so the surface accounts for the whole dataset.
//   - Build hands the settled lattice to gridextract, which recovers the
//     cluster partition from spatial adjacency.
//
// Why:
//
//   - The lattice gives the colony a shared, purely local medium: no ant
//     ever sees the global state, yet heaps of similar points emerge.
//   - Heterogeneous speeds layer coarse and fine sorting in one run; the
//     drop memory and destructive mode counter the two classic failure
//     modes, scattering and freezing.
//
// Determinism:
//
//   - Identical Seed + Options + dataset reproduce the identical surface
//     and assignment array. All stochastic decisions draw from one
//     run-scoped stream.
//
// Errors:
//
//   - Configuration faults wrap core.ErrConfiguration and surface before
//     the first ant call; simulation invariant violations wrap
//     core.ErrSimulationInvariant and abort the run immediately.
package antgrid
