package antgrid

import "go.uber.org/zap"

// run executes one full simulation: scatter the dataset, spawn the
// population, iterate the cooperative schedule, then drain every carrying
// ant so the surface accounts for all points.
//
// Errors: ErrGridFull before the first call; simulation invariant
// violations bubble up verbatim and abort the run.
//
// Complexity: O(MaxCycles·CallsPerCycle·ViewRange²·dim).
func (e *engine) run() error {
	n := e.ds.Len()
	cells := e.grid.cells()
	if float64(cells-n) < minFreeShare*float64(cells) {
		return ErrGridFull
	}

	for p := 0; p < n; p++ {
		e.grid.drop(p, e.grid.randomFreeCell(e.rng))
	}
	e.spawnAnts()

	var (
		cycle int
		call  int
	)
	for cycle = 1; cycle <= e.opts.MaxCycles; cycle++ {
		for call = 0; call < e.opts.CallsPerCycle; call++ {
			a := &e.ants[e.rng.Intn(len(e.ants))]
			if err := e.work(a, cycle); err != nil {
				return err
			}
			e.walk(a)
		}
		e.log.Debug("cycle complete",
			zap.Int("cycle", cycle),
			zap.Int("resting", e.grid.placed()))
	}

	if err := e.drain(); err != nil {
		return err
	}
	if e.grid.placed() != n {
		return ErrSurfaceMismatch
	}
	return nil
}

// spawnAnts creates the population at random cells. Speeds split the
// population evenly across the classes 1..MaxSpeed; the remainder too
// small to raise every class draws random nonzero speeds.
func (e *engine) spawnAnts() {
	e.ants = make([]gridAnt, e.opts.Ants)
	var (
		group = e.opts.Ants / e.opts.MaxSpeed
		speed = 1
		next  = 1
	)
	for i := range e.ants {
		e.ants[i] = gridAnt{
			pos:      e.grid.index(e.rng.Intn(e.grid.width), e.rng.Intn(e.grid.height)),
			speed:    next,
			carrying: carryNone,
			dest:     destNone,
			mem:      newDropMemory(e.opts.MemorySize),
		}
		if (i+1)%group == 0 {
			speed++
			next = speed
		}
		if speed > e.opts.MaxSpeed && e.opts.MaxSpeed > 1 {
			for next = e.rng.Intn(e.opts.MaxSpeed); next == 0; next = e.rng.Intn(e.opts.MaxSpeed) {
			}
		}
	}
}

// drain makes every carrying ant deposit its point after the cycle budget
// ends. Each ant first relocates to its best remembered cell, then gets a
// bounded number of regular probabilistic attempts, walking between them;
// past the bound the drop is forced onto any free cell it reaches.
func (e *engine) drain() error {
	for i := range e.ants {
		a := &e.ants[i]
		if a.carrying == carryNone {
			continue
		}
		a.dest = destNone
		if a.mem != nil {
			if cell, remembered := a.mem.bestMatch(a.carrying, e.ds, e.dist); remembered {
				a.pos = cell
			}
		}
		var attempts int
		for a.carrying != carryNone {
			if attempts <= shutdownAttempts {
				if err := e.work(a, e.opts.MaxCycles); err != nil {
					return err
				}
				attempts++
			} else {
				e.dropCarried(a, e.opts.MaxCycles)
			}
			e.walk(a)
		}
	}
	return nil
}
