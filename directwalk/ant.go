package directwalk

import "github.com/katalvlaran/antclust/core"

// carryNone marks the idle half of the two-state carry machine. The other
// half is "carrying point X"; acquire and release are the only legal
// transitions, so the at-most-one-carried invariant holds by construction.
const carryNone = -1

// ant is one agent: a position in the placeholder arena, the carry slot,
// and its idle bookkeeping.
type ant struct {
	pos       int
	carrying  int // carryNone or a point id
	idleCalls int
	active    bool
}

// acquire transitions Idle -> Carrying.
//
// Errors: ErrDoubleCarry when the ant already carries a point.
func (a *ant) acquire(p int) error {
	if a.carrying != carryNone {
		return ErrDoubleCarry
	}
	a.carrying = p
	return nil
}

// release transitions Carrying -> Idle.
func (a *ant) release() { a.carrying = carryNone }

// work performs exactly one action for a, in strict priority order:
//
//  1. explore the current point, or the first not-yet-explored neighbor;
//  2. mark the current point noise when detection is on and its similarity
//     sits at or below the threshold;
//  3. when idle, pick up the current point if it is unclustered;
//  4. when carrying over unassigned ground, mint a new cluster seeded at
//     the carried point;
//  5. when carrying over clustered ground, join the carried point to that
//     cluster, then scan its neighbors for at most one merge.
//
// Returns whether the call achieved anything; a false return is an idle
// landing and feeds the shutdown counter.
//
// Complexity: O(n·dim) when a discovery fires, O(deg) otherwise.
func (e *engine) work(a *ant) (bool, error) {
	p := a.pos

	// (1) Discovery has priority over all clustering moves.
	if !e.ph[p].complete {
		e.explore(p)
		return true, nil
	}
	for _, nr := range e.ph[p].neighbors {
		if !e.ph[nr.id].complete {
			e.explore(nr.id)
			return true, nil
		}
	}

	// (2) Noise verdict. The carried point is exempt while in transit.
	if e.opts.NoiseDetection && a.carrying != p &&
		e.ph[p].cluster == clusterNone && e.ph[p].foi <= e.opts.NoiseThreshold {
		e.ph[p].cluster = core.Noise
		return true, nil
	}

	if a.carrying == carryNone {
		// (3) Only unclustered points are worth picking up.
		if e.ph[p].cluster == clusterNone {
			if err := a.acquire(p); err != nil {
				return false, err
			}
			return true, nil
		}
		return false, nil
	}

	// Carrying.
	x := a.carrying
	switch c := e.ph[p].cluster; {
	case c == core.Noise:
		// Settled outlier ground; nothing to anchor to.
		return false, nil
	case c == clusterNone:
		// (4) Unassigned ground: the carried point seeds a fresh cluster.
		// The cell the ant stands on anchors it too, so the next point
		// climbing this gradient finds settled ground to join. Minting
		// bare singletons instead would leave a plateau of equal hints
		// with no ground to build on.
		id := e.reg.create(x, e.ph)
		if p != x {
			if err := e.reg.join(id, p, e.ph); err != nil {
				return false, err
			}
		}
		a.release()
		return true, nil
	default:
		// (5) Join, then at most one merge.
		if err := e.reg.join(c, x, e.ph); err != nil {
			return false, err
		}
		if err := e.mergeScan(x, c); err != nil {
			return false, err
		}
		a.release()
		return true, nil
	}
}

// mergeScan walks x's neighbors ascending by distance looking for one
// merge opportunity for cluster c. The scan stops at the first unclustered
// neighbor whose similarity drops below x's own (similarity is taken as
// non-increasing with distance inside a cluster, so nothing beyond it can
// belong). The first differently-clustered, non-noise neighbor ends the
// scan either way; the side whose representative has the lower similarity
// merges into the other, provided that lower similarity does not exceed
// x's own by more than RaiseTolerance. A zero tolerance disables merging
// altogether.
//
// Complexity: O(deg + |smaller cluster|) on a merge.
func (e *engine) mergeScan(x, c int) error {
	if e.opts.RaiseTolerance <= 0 {
		return nil
	}
	fx := e.ph[x].foi
	for _, nr := range e.ph[x].neighbors {
		nc := e.ph[nr.id].cluster
		if nc == clusterNone {
			if e.ph[nr.id].foi < fx {
				return nil
			}
			continue
		}
		if nc == core.Noise || nc == c {
			continue
		}

		fa := e.ph[e.reg.recs[nc].start].foi
		fb := e.ph[e.reg.recs[c].start].foi
		switch {
		case fa > fb && fb <= fx+e.opts.RaiseTolerance:
			return e.reg.merge(nc, c, e.ph)
		case fa <= fb && fa <= fx+e.opts.RaiseTolerance:
			return e.reg.merge(c, nc, e.ph)
		}
		return nil
	}
	return nil
}

// walkStep moves a after its work action. An unexplored neighbor pulls
// the ant toward discovery. A carrying ant climbs the strictly ascending
// similarity gradient until it stands on settled non-noise ground or on a
// local maximum; it never teleports, which keeps every deposit reachable
// from the pickup through the neighbor graph. An idle ant teleports off
// settled ground and otherwise stays put.
//
// Complexity: O(path length · deg) while carrying, O(deg) otherwise.
func (e *engine) walkStep(a *ant) {
	p := a.pos

	if !e.ph[p].complete {
		return
	}
	for _, nr := range e.ph[p].neighbors {
		if !e.ph[nr.id].complete {
			a.pos = nr.id
			return
		}
	}

	if a.carrying != carryNone {
		for {
			if e.ph[a.pos].cluster >= 0 {
				return
			}
			moved := false
			for _, nr := range e.ph[a.pos].neighbors {
				if e.ph[nr.id].foi > e.ph[a.pos].foi {
					a.pos = nr.id
					moved = true
					break
				}
			}
			if !moved {
				return
			}
		}
	}

	if e.ph[p].cluster != clusterNone {
		a.pos = e.rng.Intn(len(e.ph))
	}
}
