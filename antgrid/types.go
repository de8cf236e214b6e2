// Package antgrid defines options and defaults for the spatial-grid engine.
package antgrid

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/antclust/core"
	"github.com/katalvlaran/antclust/gridextract"
)

// gridMinSide is the smallest permitted lattice side, in cells.
const gridMinSide = 3

// minFreeShare is the required share of free lattice cells after the
// dataset is scattered. Below it ants cannot shuffle points around.
const minFreeShare = 0.20

// shutdownAttempts bounds the regular probabilistic drop attempts granted
// to a carrying ant during the end-of-run drain before its drop is forced.
const shutdownAttempts = 10

// DropFn selects the drop-down probability function.
type DropFn int

const (
	// DropOriginal uses the piecewise Lumer/Faieta rule: 2·foi below Kd,
	// certain drop at or above it.
	DropOriginal DropFn = iota
	// DropSymmetric uses the Deneubourg rule (foi/(Kd+foi))², the mirror
	// image of the pick-up probability.
	DropSymmetric
)

// Options configures one spatial-grid run. Consumed once at
// initialization; the engine never mutates it during simulation.
//
// Fields:
//   - Alpha              — cohesion constant dividing neighbor distances in
//     the window similarity. Must be > 0.
//   - Kp                 — pick-up threshold constant, > 0. Pick-up
//     probability is (Kp/(Kp+foi))².
//   - Kd                 — drop-down threshold constant, > 0.
//   - Drop               — drop probability selector, DropOriginal or
//     DropSymmetric.
//   - Width, Height      — lattice dimensions in cells, each >= 3. The
//     dataset must leave at least 20% of the cells free.
//   - Ants               — population size, >= 1.
//   - CallsPerCycle      — ant calls per cycle, >= 1.
//   - MaxCycles          — cycle budget, >= 1.
//   - ViewRange          — half-width of the square similarity window, >= 0.
//   - MaxSpeed           — number of walking-speed classes; the population
//     is split evenly across speeds 1..MaxSpeed, the remainder drawing
//     random nonzero speeds. Must be >= 1 and <= Ants.
//   - DropRange          — half-width of the square drop window; 0 restricts
//     drops to the ant's own cell.
//   - MemorySize         — capacity of the circular drop-location memory;
//     0 disables it. Lookups start only once the memory has filled up.
//   - DestructiveCycles  — cycles without a pick-up after which an ant turns
//     destructive; 0 disables destructive behavior.
//   - DestructivePickups — forced unconditional pick-ups per destructive
//     episode, >= 1 when DestructiveCycles > 0.
//   - Distance           — distance oracle; nil defaults to
//     core.EuclideanDistance.
//   - NormalizeAttributes — rescale every attribute to [0,1] over the
//     training set before measuring distances. Off by default: the Alpha
//     default assumes raw feature scale, where dissimilar points score
//     negative and repel.
//   - Seed               — master seed for the single run-scoped random
//     stream; 0 selects the fixed default seed.
//   - Extract            — extraction and merge options handed to
//     gridextract once the run settles.
//   - Logger             — structured run logging; nil defaults to
//     zap.NewNop().
type Options struct {
	Alpha               float64
	Kp                  float64
	Kd                  float64
	Drop                DropFn
	Width               int
	Height              int
	Ants                int
	CallsPerCycle       int
	MaxCycles           int
	ViewRange           int
	MaxSpeed            int
	DropRange           int
	MemorySize          int
	DestructiveCycles   int
	DestructivePickups  int
	Distance            core.DistanceFunc
	NormalizeAttributes bool
	Seed                int64
	Extract             gridextract.Options
	Logger              *zap.Logger
}

// DefaultOptions returns the calibrated spatial-grid defaults: Alpha 5.0,
// Kp 0.02, Kd 0.5, the original piecewise drop rule, a 52×52 lattice, 40
// ants, 10000 calls per cycle, 50 cycles, view range 1, one speed class,
// drop range 1, memory and destructive behavior off, Euclidean distance.
func DefaultOptions() Options {
	return Options{
		Alpha:              5.0,
		Kp:                 0.02,
		Kd:                 0.5,
		Drop:               DropOriginal,
		Width:              52,
		Height:             52,
		Ants:               40,
		CallsPerCycle:      10000,
		MaxCycles:          50,
		ViewRange:          1,
		MaxSpeed:           1,
		DropRange:          1,
		DestructivePickups: 3,
		Distance:           core.EuclideanDistance,
		Extract:            gridextract.DefaultOptions(),
	}
}

// Validate rejects inconsistent option combinations. Every fault wraps
// core.ErrConfiguration. The free-cell share depends on the dataset and is
// checked at run start instead.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Alpha <= 0 {
		return ErrNonPositiveAlpha
	}
	if o.Kp <= 0 {
		return ErrNonPositiveKp
	}
	if o.Kd <= 0 {
		return ErrNonPositiveKd
	}
	if o.Drop != DropOriginal && o.Drop != DropSymmetric {
		return ErrBadDropFn
	}
	if o.Width < gridMinSide || o.Height < gridMinSide {
		return ErrGridTooSmall
	}
	if o.Ants < 1 {
		return ErrNoAnts
	}
	if o.CallsPerCycle < 1 || o.MaxCycles < 1 {
		return ErrBadBudget
	}
	if o.ViewRange < 0 {
		return ErrBadViewRange
	}
	if o.MaxSpeed < 1 || o.MaxSpeed > o.Ants {
		return ErrBadSpeedLimit
	}
	if o.DropRange < 0 {
		return ErrBadDropRange
	}
	if o.MemorySize < 0 {
		return ErrBadMemorySize
	}
	if o.DestructiveCycles < 0 || (o.DestructiveCycles > 0 && o.DestructivePickups < 1) {
		return ErrBadDestructive
	}
	return nil
}
