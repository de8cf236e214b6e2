// Package antgrid - sentinel errors.
package antgrid

import (
	"fmt"

	"github.com/katalvlaran/antclust/core"
)

// Configuration faults, raised by Validate or at run start before any ant
// moves.
var (
	// ErrNonPositiveAlpha indicates Alpha <= 0; the cohesion constant divides
	// distances and must stay positive.
	ErrNonPositiveAlpha = fmt.Errorf("antgrid: alpha must be > 0: %w", core.ErrConfiguration)
	// ErrNonPositiveKp indicates Kp <= 0.
	ErrNonPositiveKp = fmt.Errorf("antgrid: pick-up threshold constant must be > 0: %w", core.ErrConfiguration)
	// ErrNonPositiveKd indicates Kd <= 0.
	ErrNonPositiveKd = fmt.Errorf("antgrid: drop-down threshold constant must be > 0: %w", core.ErrConfiguration)
	// ErrBadDropFn indicates an unknown drop probability selector.
	ErrBadDropFn = fmt.Errorf("antgrid: unknown drop-down function: %w", core.ErrConfiguration)
	// ErrGridTooSmall indicates a lattice side below the minimum of 3 cells.
	ErrGridTooSmall = fmt.Errorf("antgrid: grid sides must be >= 3 cells: %w", core.ErrConfiguration)
	// ErrGridFull indicates the dataset leaves less than the required free
	// share of lattice cells.
	ErrGridFull = fmt.Errorf("antgrid: at least 20%% of the grid must stay free: %w", core.ErrConfiguration)
	// ErrNoAnts indicates a population below one agent.
	ErrNoAnts = fmt.Errorf("antgrid: ant population must be >= 1: %w", core.ErrConfiguration)
	// ErrBadBudget indicates CallsPerCycle or MaxCycles below one.
	ErrBadBudget = fmt.Errorf("antgrid: calls per cycle and max cycles must be >= 1: %w", core.ErrConfiguration)
	// ErrBadViewRange indicates ViewRange < 0.
	ErrBadViewRange = fmt.Errorf("antgrid: view range must be >= 0: %w", core.ErrConfiguration)
	// ErrBadSpeedLimit indicates MaxSpeed < 1 or a speed class without any
	// ant to fill it.
	ErrBadSpeedLimit = fmt.Errorf("antgrid: max speed must be >= 1 and <= the ant count: %w", core.ErrConfiguration)
	// ErrBadDropRange indicates DropRange < 0.
	ErrBadDropRange = fmt.Errorf("antgrid: drop range must be >= 0: %w", core.ErrConfiguration)
	// ErrBadMemorySize indicates MemorySize < 0.
	ErrBadMemorySize = fmt.Errorf("antgrid: drop memory size must be >= 0: %w", core.ErrConfiguration)
	// ErrBadDestructive indicates an inconsistent destructive-mode setup.
	ErrBadDestructive = fmt.Errorf("antgrid: destructive cycles must be >= 0 and pickups >= 1 when enabled: %w", core.ErrConfiguration)
)

// Simulation invariants. Hitting one means an engine defect, not a data
// condition; the run aborts immediately.
var (
	// ErrDoublePickup indicates a pick-up attempt by an ant that already
	// carries a point.
	ErrDoublePickup = fmt.Errorf("antgrid: pick-up while already carrying: %w", core.ErrSimulationInvariant)
	// ErrSurfaceMismatch indicates the final lattice occupancy does not
	// account for every dataset point.
	ErrSurfaceMismatch = fmt.Errorf("antgrid: lattice occupancy does not match the dataset: %w", core.ErrSimulationInvariant)
)
