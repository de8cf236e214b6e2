// File: directwalk/neighborhood_test.go
package directwalk

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antclust/core"
)

// fixture builds an engine over rows with the given radius; no run is
// performed, tests drive discovery by hand. Attribute normalization is
// off so the pinned distances stay in raw units.
func fixture(t *testing.T, rows [][]float64, radius float64) *engine {
	t.Helper()
	ds, err := core.NewDataset(rows)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.NeighborhoodSize = radius
	opts.NormalizeAttributes = false
	require.NoError(t, opts.Validate())
	return newEngine(ds, opts)
}

// TestExplore_Symmetry checks the core relation invariant: when B lands in
// A's final list, A is in B's with the identical distance, regardless of
// exploration order.
func TestExplore_Symmetry(t *testing.T) {
	e := fixture(t, [][]float64{
		{0, 0}, {0.1, 0}, {0.2, 0}, {5, 5}, {5.05, 5},
	}, 0.25)

	// Deliberately interleave the order so reciprocal reuse kicks in.
	for _, p := range []int{2, 4, 0, 3, 1} {
		e.explore(p)
	}

	for a := range e.ph {
		for _, nr := range e.ph[a].neighbors {
			found := false
			for _, back := range e.ph[nr.id].neighbors {
				if back.id == a {
					require.Equal(t, nr.dist, back.dist,
						"reciprocal of %d<->%d must carry the same distance", a, nr.id)
					found = true
				}
			}
			require.True(t, found, "%d in %d's list but not vice versa", nr.id, a)
		}
	}
}

// TestExplore_AscendingOrder: neighbor lists stay sorted by distance.
func TestExplore_AscendingOrder(t *testing.T) {
	e := fixture(t, [][]float64{
		{0, 0}, {0.2, 0}, {0.05, 0}, {0.15, 0},
	}, 0.25)
	for p := range e.ph {
		e.explore(p)
	}

	for p := range e.ph {
		ns := e.ph[p].neighbors
		sorted := sort.SliceIsSorted(ns, func(i, j int) bool { return ns[i].dist < ns[j].dist })
		require.True(t, sorted, "point %d neighbor list out of order", p)
	}
}

// TestSimilarity_Properties: foi is never negative and is exactly zero for
// an isolated point.
func TestSimilarity_Properties(t *testing.T) {
	e := fixture(t, [][]float64{
		{0, 0}, {0.1, 0}, {100, 100},
	}, 0.25)
	for p := range e.ph {
		e.explore(p)
	}

	require.Zero(t, e.ph[2].foi, "isolated point must score zero")
	for p := range e.ph {
		require.GreaterOrEqual(t, e.ph[p].foi, 0.0)
	}

	// foi of the tight pair: one neighbor at distance 0.1, alpha 0.37.
	want := similarityScale * (1 - 0.1/e.opts.Alpha)
	require.InDelta(t, want, e.ph[0].foi, 1e-9)
	require.InDelta(t, want, e.ph[1].foi, 1e-9)
}

// TestExplore_ZeroRadius: NeighborhoodSize=0 leaves every neighborhood
// empty and every similarity zero.
func TestExplore_ZeroRadius(t *testing.T) {
	e := fixture(t, [][]float64{
		{0, 0}, {0, 0.001}, {0.002, 0},
	}, 0)
	for p := range e.ph {
		e.explore(p)
	}
	for p := range e.ph {
		require.Empty(t, e.ph[p].neighbors)
		require.Zero(t, e.ph[p].foi)
	}
}

// TestExplore_AlignDistances: with alignment on, the radius acts relative
// to the largest candidate distance of the discovery round.
func TestExplore_AlignDistances(t *testing.T) {
	rows := [][]float64{{0}, {1}, {4}}

	// Absolute radius 0.5 finds nothing from point 0.
	plain := fixture(t, rows, 0.5)
	plain.explore(0)
	require.Empty(t, plain.ph[0].neighbors)

	// Aligned, distances 1 and 4 normalize to 0.25 and 1.0; the close
	// point falls inside the relative radius.
	ds, err := core.NewDataset(rows)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.NeighborhoodSize = 0.5
	opts.AlignDistances = true
	opts.NormalizeAttributes = false
	aligned := newEngine(ds, opts)
	aligned.explore(0)
	require.Len(t, aligned.ph[0].neighbors, 1)
	require.Equal(t, 1, aligned.ph[0].neighbors[0].id)
	require.InDelta(t, 0.25, aligned.ph[0].neighbors[0].dist, 1e-12)
}
