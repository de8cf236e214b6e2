// File: antgrid/example_test.go
package antgrid_test

import (
	"fmt"

	"github.com/katalvlaran/antclust/antgrid"
	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/gridextract"
)

// ExampleClusterer runs the spatial-grid pipeline on two small feature
// groups and inspects the guarantees every run gives: each training point
// is assigned, the extraction honors its cluster cap, and the settled
// lattice accounts for the whole dataset.
func ExampleClusterer() {
	ds, _ := core.NewDataset([][]float64{
		{0}, {0.1}, {0.2}, {0.1}, {0}, {0.2},
		{50}, {50.1}, {50.2}, {50.1}, {50}, {50.2},
	})

	opts := antgrid.DefaultOptions()
	opts.Width = 8
	opts.Height = 8
	opts.Ants = 4
	opts.CallsPerCycle = 500
	opts.MaxCycles = 10
	opts.Extract.MaxClusters = 2
	opts.Seed = 42

	c, _ := antgrid.New(opts)
	_ = c.Build(ds)

	assigned := true
	for _, id := range c.Assignments() {
		if id < 0 {
			assigned = false
		}
	}
	var resting int
	for _, cell := range c.Lattice().Cells {
		if cell != gridextract.Empty {
			resting++
		}
	}

	fmt.Println("points:", ds.Len())
	fmt.Println("every point assigned:", assigned)
	fmt.Println("clusters within cap:", c.NumClusters() >= 1 && c.NumClusters() <= 2)
	fmt.Println("points resting on the lattice:", resting)

	// Output:
	// points: 12
	// every point assigned: true
	// clusters within cap: true
	// points resting on the lattice: 12
}
