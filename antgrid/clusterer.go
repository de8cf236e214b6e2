package antgrid

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/gridextract"
)

// Clusterer is the spatial-grid engine behind the core.Clusterer host
// contract. Create one with New, train it once with Build, then query
// assignments; the final lattice occupancy is retained for the model
// lifetime and can be inspected through Lattice.
type Clusterer struct {
	opts   Options
	log    *zap.Logger
	ds     *core.Dataset
	lat    *gridextract.Lattice
	assign []int
	num    int
}

// interface guard
var _ core.Clusterer = (*Clusterer)(nil)

// New validates opts and returns an untrained Clusterer.
//
// Errors: the Validate sentinels, all wrapping core.ErrConfiguration.
func New(opts Options) (*Clusterer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Clusterer{opts: opts, log: log}, nil
}

// Build trains the model in place: one full colony run over ds, then
// spatial extraction of the settled surface into clusters. Rebuilding on
// a new dataset replaces the previous model.
//
// Errors: core.ErrEmptyDataset, ErrGridFull, simulation invariant
// violations from the run, and extraction faults.
//
// Complexity: O(MaxCycles·CallsPerCycle·ViewRange²·dim) for the run plus
// the extraction cost.
func (c *Clusterer) Build(ds *core.Dataset) error {
	if ds == nil || ds.Len() == 0 {
		return core.ErrEmptyDataset
	}

	eng := newEngine(ds, c.opts)
	eng.log = c.log
	if err := eng.run(); err != nil {
		return fmt.Errorf("antgrid: run failed: %w", err)
	}

	lat := eng.grid.lattice()
	res, err := gridextract.Extract(lat, ds, c.opts.Extract)
	if err != nil {
		return fmt.Errorf("antgrid: extraction failed: %w", err)
	}

	c.ds = ds
	c.lat = lat
	c.assign = res.Assignments
	c.num = res.NumClusters()
	c.log.Info("spatial-grid build complete",
		zap.Int("points", ds.Len()),
		zap.Int("clusters", c.num),
		zap.Int64("seed", c.opts.Seed))
	return nil
}

// ClusterOf resolves features against the training set by exact feature
// equality. A miss is not an error: the point is regarded as noise.
//
// Complexity: O(n·dim).
func (c *Clusterer) ClusterOf(features []float64) int {
	if c.ds == nil {
		return core.Noise
	}
	idx := c.ds.IndexOf(features)
	if idx == core.Noise {
		c.log.Warn("unseen point, mapping to noise", zap.Int("dim", len(features)))
		return core.Noise
	}
	return c.assign[idx]
}

// NumClusters reports the cluster count of the extraction; 0 before Build.
func (c *Clusterer) NumClusters() int { return c.num }

// Assignments returns a copy of the per-point assignment array, indexed
// like the training dataset; nil before Build.
func (c *Clusterer) Assignments() []int {
	if c.assign == nil {
		return nil
	}
	out := make([]int, len(c.assign))
	copy(out, c.assign)
	return out
}

// Lattice returns the settled occupancy surface of the last Build, or nil
// before Build. The returned lattice is the model's own; treat it as
// read-only.
func (c *Clusterer) Lattice() *gridextract.Lattice { return c.lat }
