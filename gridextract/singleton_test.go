// File: gridextract/singleton_test.go
package gridextract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReattach_UnambiguousNeighbor absorbs a lone point whose occupied
// window belongs entirely to one multi-member cluster.
//
// Lattice:
//
//	0 1 . .
//	2 . 3 .
//	. . . .
//
// Point 3 sits diagonally adjacent to the {0,1,2} block; under Conn4 it is
// a singleton, and its 3×3 window sees only that block.
func TestReattach_UnambiguousNeighbor(t *testing.T) {
	lat, ds := latticeFrom(t, [][]int{
		{0, 1, Empty, Empty},
		{2, Empty, 3, Empty},
		{Empty, Empty, Empty, Empty},
	})

	res, err := Extract(lat, ds, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, res.NumClusters())
	require.ElementsMatch(t, []int{0, 1, 2, 3}, res.Clusters[0])
}

// TestReattach_AmbiguousWindow leaves a singleton alone when its window
// touches two different clusters.
//
//	0 1 . 4 5
//	2 . 3 . 6
func TestReattach_AmbiguousWindow(t *testing.T) {
	lat, ds := latticeFrom(t, [][]int{
		{0, 1, Empty, 4, 5},
		{2, Empty, 3, Empty, 6},
	})

	res, err := Extract(lat, ds, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, res.NumClusters())
	// The singleton {3} stays its own cluster.
	found := false
	for _, c := range res.Clusters {
		if len(c) == 1 && c[0] == 3 {
			found = true
		}
	}
	require.True(t, found, "ambiguous singleton must not be absorbed")
}

// TestReattach_NeighboringSingletonBlocks: a singleton inside the window
// blocks absorption, because a 1-member cluster is never a valid target
// and its presence makes the neighborhood ambiguous.
//
//	0 1 . .
//	2 . 3 .
//	. . . 4
func TestReattach_NeighboringSingletonBlocks(t *testing.T) {
	lat, ds := latticeFrom(t, [][]int{
		{0, 1, Empty, Empty},
		{2, Empty, 3, Empty},
		{Empty, Empty, Empty, 4},
	})

	res, err := Extract(lat, ds, DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, res.NumClusters())
	require.ElementsMatch(t, []int{0, 1, 2}, res.Clusters[0])
	require.ElementsMatch(t, []int{3}, res.Clusters[1])
	require.ElementsMatch(t, []int{4}, res.Clusters[2])
}

// TestReattach_Disabled keeps every singleton with SingletonWindow=0.
func TestReattach_Disabled(t *testing.T) {
	lat, ds := latticeFrom(t, [][]int{
		{0, 1, Empty},
		{2, Empty, 3},
	})

	opts := DefaultOptions()
	opts.SingletonWindow = 0
	res, err := Extract(lat, ds, opts)
	require.NoError(t, err)
	require.Equal(t, 2, res.NumClusters())
}
