// Package directwalk - sentinel errors.
package directwalk

import (
	"fmt"

	"github.com/katalvlaran/antclust/core"
)

// Configuration faults, raised by Validate before a run starts.
var (
	// ErrNonPositiveAlpha indicates Alpha <= 0; the cohesion constant divides
	// distances and must stay positive.
	ErrNonPositiveAlpha = fmt.Errorf("directwalk: alpha must be > 0: %w", core.ErrConfiguration)
	// ErrNegativeRadius indicates NeighborhoodSize < 0.
	ErrNegativeRadius = fmt.Errorf("directwalk: neighborhood size must be >= 0: %w", core.ErrConfiguration)
	// ErrNegativeTolerance indicates RaiseTolerance < 0.
	ErrNegativeTolerance = fmt.Errorf("directwalk: raise tolerance must be >= 0: %w", core.ErrConfiguration)
	// ErrNegativeNoiseThreshold indicates noise detection enabled with a
	// negative threshold.
	ErrNegativeNoiseThreshold = fmt.Errorf("directwalk: noise threshold must be >= 0 when detection is enabled: %w", core.ErrConfiguration)
	// ErrNoAnts indicates a population below one agent.
	ErrNoAnts = fmt.Errorf("directwalk: ant population must be >= 1: %w", core.ErrConfiguration)
	// ErrBadBudget indicates CallsPerCycle or MaxCycles below one.
	ErrBadBudget = fmt.Errorf("directwalk: calls per cycle and max cycles must be >= 1: %w", core.ErrConfiguration)
	// ErrBadIdleShutdown indicates IdleShutdown below one.
	ErrBadIdleShutdown = fmt.Errorf("directwalk: idle shutdown threshold must be >= 1: %w", core.ErrConfiguration)
	// ErrBadMaxClusters indicates MaxClusters < 0.
	ErrBadMaxClusters = fmt.Errorf("directwalk: max clusters must be >= 0: %w", core.ErrConfiguration)
)

// Simulation invariants. Hitting one means an engine defect, not a data
// condition; the run aborts immediately.
var (
	// ErrNoiseClusterMerge indicates a merge attempt from or into the noise
	// cluster.
	ErrNoiseClusterMerge = fmt.Errorf("directwalk: merge involving the noise cluster: %w", core.ErrSimulationInvariant)
	// ErrDoubleCarry indicates an ant acquiring a placeholder while already
	// carrying one.
	ErrDoubleCarry = fmt.Errorf("directwalk: ant acquired while already carrying: %w", core.ErrSimulationInvariant)
	// ErrDeadCluster indicates membership mutation on a dissolved cluster.
	ErrDeadCluster = fmt.Errorf("directwalk: mutation of a dissolved cluster: %w", core.ErrSimulationInvariant)
)
