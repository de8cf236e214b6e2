// File: gridextract/example_test.go
package gridextract_test

import (
	"fmt"

	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/gridextract"
)

// ExampleExtract demonstrates recovering clusters from a final lattice
// occupancy. Scenario:
//
//   - Two occupied regions separated by free cells.
//   - Conn4 adjacency, no singleton rescue needed.
//
// Complexity: O(W·H·4), Memory: O(W·H)
func ExampleExtract() {
	// Point features; here simply 1-D values.
	ds, _ := core.NewDataset([][]float64{{0}, {1}, {2}, {10}, {11}})

	// 4×3 lattice, -1 = free cell. Points 0..2 cluster top-left,
	// points 3..4 bottom-right.
	cells := []int{
		0, 1, -1, -1,
		2, -1, -1, -1,
		-1, -1, 3, 4,
	}
	lat := gridextract.NewLattice(4, 3, cells)

	res, _ := gridextract.Extract(lat, ds, gridextract.DefaultOptions())
	fmt.Println("clusters:", res.NumClusters())
	fmt.Println("assignments:", res.Assignments)

	// Output:
	// clusters: 2
	// assignments: [0 0 0 1 1]
}

// ExampleExtract_maxClusters shows centroid-driven merging down to a
// requested cluster count: three separated cells, capped at two clusters,
// fold the closest pair together.
func ExampleExtract_maxClusters() {
	ds, _ := core.NewDataset([][]float64{{0, 0}, {1, 0}, {9, 0}})

	cells := []int{
		0, -1, 1, -1, -1, -1, -1, -1, 2,
	}
	lat := gridextract.NewLattice(9, 1, cells)

	opts := gridextract.DefaultOptions()
	opts.SingletonWindow = 0
	opts.MaxClusters = 2
	res, _ := gridextract.Extract(lat, ds, opts)
	fmt.Println("clusters:", res.NumClusters())
	fmt.Println("assignments:", res.Assignments)

	// Output:
	// clusters: 2
	// assignments: [0 0 1]
}
