package directwalk

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/core"
)

// neighborRel is one directed distance edge of the neighborhood graph.
// Symmetry is maintained by pushing the reciprocal relation on discovery.
type neighborRel struct {
	id   int
	dist float64
}

// placeholder is the simulation state for one dataset point. Placeholders
// live in a flat arena indexed by point id; cluster membership is a plain
// id back-reference, never a live pointer.
type placeholder struct {
	neighbors []neighborRel // ascending by distance
	foi       float64
	cluster   int // clusterNone, core.Noise, or a registry id
	complete  bool
}

// engine owns one direct-walk run: the placeholder arena, the cluster
// registry, the population and the single random stream.
type engine struct {
	opts Options
	ds   *core.Dataset
	dist core.DistanceFunc
	rng  *rand.Rand
	log  *zap.Logger
	ph   []placeholder
	reg  *registry
	ants []ant
}

// newEngine builds the arena and population. opts must be validated.
//
// Complexity: O(n + ants).
func newEngine(ds *core.Dataset, opts Options) *engine {
	var (
		dist = opts.Distance
		log  = opts.Logger
	)
	if dist == nil {
		dist = core.EuclideanDistance
	}
	if opts.NormalizeAttributes {
		dist = core.NewRangeScaler(ds).Wrap(dist)
	}
	if log == nil {
		log = zap.NewNop()
	}

	e := &engine{
		opts: opts,
		ds:   ds,
		dist: dist,
		rng:  core.NewRand(opts.Seed),
		log:  log,
		ph:   make([]placeholder, ds.Len()),
		reg:  &registry{},
		ants: make([]ant, opts.Ants),
	}
	var i int
	for i = range e.ph {
		e.ph[i].cluster = clusterNone
	}
	for i = range e.ants {
		e.ants[i] = ant{pos: e.rng.Intn(ds.Len()), carrying: carryNone, active: true}
	}
	return e
}

// assignments resolves the final per-point labels: cluster ids stay,
// unassigned placeholders and noise verdicts become the noise sentinel.
// Applies the leading-cluster reduction when MaxClusters > 0, then
// compacts ids to a contiguous range.
//
// Complexity: O(n·k) with reduction, O(n) without.
func (e *engine) assignments() []int {
	assign := make([]int, len(e.ph))
	var i int
	for i = range e.ph {
		if e.ph[i].cluster < 0 {
			assign[i] = core.Noise
			continue
		}
		assign[i] = e.ph[i].cluster
	}
	if e.opts.MaxClusters > 0 {
		e.reduceTo(e.opts.MaxClusters, assign)
	}
	core.CompactAssignments(assign)
	return assign
}
