package directwalk

import "go.uber.org/zap"

// run executes the cooperative single-threaded schedule: each call draws
// one ant uniformly at random, with replacement, from the active
// population and runs its work and walk synchronously. CallsPerCycle calls
// form one cycle; the run ends on cycle-budget exhaustion or once the
// whole population has shut down.
//
// Errors: simulation invariant violations bubble up verbatim and abort
// the run; they indicate engine defects.
//
// Complexity: O(MaxCycles·CallsPerCycle·deg) worst case.
func (e *engine) run() error {
	active := make([]int, len(e.ants))
	for i := range active {
		active[i] = i
	}

	var (
		cycle int
		call  int
	)
	for cycle = 0; cycle < e.opts.MaxCycles; cycle++ {
		for call = 0; call < e.opts.CallsPerCycle; call++ {
			if len(active) == 0 {
				e.log.Debug("population shut down",
					zap.Int("cycle", cycle),
					zap.Int("call", call),
					zap.Int("clusters", len(e.reg.recs)))
				return nil
			}

			k := e.rng.Intn(len(active))
			a := &e.ants[active[k]]

			acted, err := e.work(a)
			if err != nil {
				return err
			}
			if acted {
				a.idleCalls = 0
			} else {
				a.idleCalls++
				if a.idleCalls > e.opts.IdleShutdown {
					a.active = false
					// Index-based removal keeps draw order deterministic.
					active = append(active[:k], active[k+1:]...)
					continue
				}
			}
			e.walkStep(a)
		}
		e.log.Debug("cycle complete",
			zap.Int("cycle", cycle),
			zap.Int("active", len(active)),
			zap.Int("clusters", len(e.reg.recs)))
	}
	return nil
}
