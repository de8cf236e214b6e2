package antgrid

import (
	"math/rand"

	"github.com/katalvlaran/antclust/gridextract"
)

// grid is the bounded occupancy surface ants rearrange points on.
// surface[cell] holds a point index or gridextract.Empty; where[point]
// holds the point's cell, or -1 while an ant carries it. The two arrays
// are kept mutually consistent by pickUp and drop, the only mutators.
type grid struct {
	width, height int
	surface       []int
	where         []int
}

// newGrid returns an empty width×height surface with capacity for n points.
func newGrid(width, height, n int) *grid {
	g := &grid{
		width:   width,
		height:  height,
		surface: make([]int, width*height),
		where:   make([]int, n),
	}
	for i := range g.surface {
		g.surface[i] = gridextract.Empty
	}
	for i := range g.where {
		g.where[i] = -1
	}
	return g
}

// cells reports the total cell count.
func (g *grid) cells() int { return len(g.surface) }

// index converts (x,y) to a row-major cell index.
func (g *grid) index(x, y int) int { return y*g.width + x }

// coordinate converts a row-major cell index back to (x,y).
func (g *grid) coordinate(cell int) (x, y int) { return cell % g.width, cell / g.width }

// inBounds reports whether (x,y) lies on the lattice.
func (g *grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// occupied reports whether cell holds a point.
func (g *grid) occupied(cell int) bool { return g.surface[cell] != gridextract.Empty }

// at returns the point index at cell without removing it, or
// gridextract.Empty for a free cell.
func (g *grid) at(cell int) int { return g.surface[cell] }

// pickUp removes and returns the point at cell; ok is false for a free
// cell and the surface is left untouched.
func (g *grid) pickUp(cell int) (point int, ok bool) {
	point = g.surface[cell]
	if point == gridextract.Empty {
		return gridextract.Empty, false
	}
	g.surface[cell] = gridextract.Empty
	g.where[point] = -1
	return point, true
}

// drop places point at cell; false when the cell is already occupied.
func (g *grid) drop(point, cell int) bool {
	if g.surface[cell] != gridextract.Empty {
		return false
	}
	g.surface[cell] = point
	g.where[point] = cell
	return true
}

// randomFreeCell draws free cells by rejection sampling. The free-share
// margin enforced at run start keeps the expected draw count small.
func (g *grid) randomFreeCell(rng *rand.Rand) int {
	cell := g.index(rng.Intn(g.width), rng.Intn(g.height))
	for g.occupied(cell) {
		cell = g.index(rng.Intn(g.width), rng.Intn(g.height))
	}
	return cell
}

// placed counts the points currently resting on the surface.
func (g *grid) placed() int {
	var n int
	for _, cell := range g.where {
		if cell >= 0 {
			n++
		}
	}
	return n
}

// lattice exposes the surface in the gridextract hand-off format. The
// cell slice is shared, not copied; callers must not mutate the grid
// afterwards.
func (g *grid) lattice() *gridextract.Lattice {
	return gridextract.NewLattice(g.width, g.height, g.surface)
}
