package antgrid

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/core"
)

// engine bundles the mutable state of one spatial-grid run: the occupancy
// surface, the ant population, and the single run-scoped random stream.
type engine struct {
	opts Options
	ds   *core.Dataset
	dist core.DistanceFunc
	rng  *rand.Rand
	log  *zap.Logger
	grid *grid
	ants []gridAnt
}

// newEngine wires an engine for ds. Options must have been validated.
func newEngine(ds *core.Dataset, opts Options) *engine {
	dist := opts.Distance
	if dist == nil {
		dist = core.EuclideanDistance
	}
	if opts.NormalizeAttributes {
		dist = core.NewRangeScaler(ds).Wrap(dist)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &engine{
		opts: opts,
		ds:   ds,
		dist: dist,
		rng:  core.NewRand(opts.Seed),
		log:  log,
		grid: newGrid(opts.Width, opts.Height, ds.Len()),
	}
}
