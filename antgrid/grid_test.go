// File: antgrid/grid_test.go
package antgrid

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/gridextract"
)

func TestGrid_PickUpDrop(t *testing.T) {
	g := newGrid(4, 3, 2)
	cell := g.index(1, 2)

	require.False(t, g.occupied(cell))
	_, ok := g.pickUp(cell)
	require.False(t, ok, "picking a free cell must fail")

	require.True(t, g.drop(0, cell))
	require.True(t, g.occupied(cell))
	require.Equal(t, 0, g.at(cell))
	require.Equal(t, cell, g.where[0])

	require.False(t, g.drop(1, cell), "occupied cells reject drops")

	point, ok := g.pickUp(cell)
	require.True(t, ok)
	require.Equal(t, 0, point)
	require.False(t, g.occupied(cell))
	require.Equal(t, -1, g.where[0])
}

func TestGrid_Coordinates(t *testing.T) {
	g := newGrid(5, 3, 0)
	for cell := 0; cell < g.cells(); cell++ {
		x, y := g.coordinate(cell)
		require.True(t, g.inBounds(x, y))
		require.Equal(t, cell, g.index(x, y))
	}
	require.False(t, g.inBounds(-1, 0))
	require.False(t, g.inBounds(5, 0))
	require.False(t, g.inBounds(0, 3))
}

func TestGrid_RandomFreeCell(t *testing.T) {
	g := newGrid(3, 3, 8)
	// Occupy everything except the center.
	var p int
	for cell := 0; cell < g.cells(); cell++ {
		if cell == g.index(1, 1) {
			continue
		}
		require.True(t, g.drop(p, cell))
		p++
	}
	rng := core.NewRand(5)
	for i := 0; i < 10; i++ {
		require.Equal(t, g.index(1, 1), g.randomFreeCell(rng))
	}
}

func TestGrid_LatticeHandOff(t *testing.T) {
	g := newGrid(4, 4, 3)
	require.True(t, g.drop(0, g.index(0, 0)))
	require.True(t, g.drop(1, g.index(3, 3)))
	require.Equal(t, 2, g.placed())

	lat := g.lattice()
	require.Equal(t, 4, lat.Width)
	require.Equal(t, 4, lat.Height)
	require.Equal(t, 0, lat.Cells[lat.Index(0, 0)])
	require.Equal(t, 1, lat.Cells[lat.Index(3, 3)])
	require.Equal(t, gridextract.Empty, lat.Cells[lat.Index(1, 1)])
}
