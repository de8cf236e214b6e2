package antgrid

import "github.com/katalvlaran/antclust/gridextract"

// carryNone marks the idle half of the two-state carry machine; the other
// half holds the index of the carried point.
const carryNone = -1

// destNone marks an ant without an active drop destination.
const destNone = -1

// gridAnt is one agent: a cell position, a speed class, the carry slot,
// an optional drop destination and drop memory, and the destructive-mode
// bookkeeping.
type gridAnt struct {
	pos         int
	speed       int
	carrying    int // carryNone or a point id
	dest        int // destNone or a cell index
	mem         *dropMemory
	destructive int // remaining forced pick-ups
	lastActed   int // cycle of the last pick-up or drop
}

// work performs the ant's action for one call. Destructive mode arms when
// the ant has not manipulated a point for DestructiveCycles cycles and
// forces unconditional pick-ups until its budget runs out; otherwise the
// applicable probabilistic pick-up or drop test runs. Many calls do
// nothing, which is normal.
//
// Errors: ErrDoublePickup on a pick-up attempt while carrying.
//
// Complexity: O(ViewRange²·dim) when a probability draw fires.
func (e *engine) work(a *gridAnt, cycle int) error {
	if e.opts.DestructiveCycles > 0 && cycle-a.lastActed > e.opts.DestructiveCycles {
		a.destructive = e.opts.DestructivePickups
	}
	switch {
	case a.destructive > 0 && a.carrying == carryNone && e.grid.occupied(a.pos):
		return e.pickUp(a, cycle)
	case a.carrying == carryNone && e.grid.occupied(a.pos):
		if e.wantsPickUp(e.grid.at(a.pos), a) {
			return e.pickUp(a, cycle)
		}
	case a.carrying != carryNone && !e.grid.occupied(a.pos):
		if e.wantsDrop(a) {
			e.dropCarried(a, cycle)
		}
	}
	return nil
}

// pickUp lifts the point at the ant's cell into the carry slot and, with
// a full drop memory, sets the remembered best-matching cell as the walk
// destination. The destination is chosen once here: re-choosing later
// would pin the ant to a single remembered cell.
func (e *engine) pickUp(a *gridAnt, cycle int) error {
	if a.carrying != carryNone {
		return ErrDoublePickup
	}
	point, ok := e.grid.pickUp(a.pos)
	if !ok {
		return nil
	}
	a.carrying = point
	if a.destructive > 0 {
		a.destructive--
	}
	if a.mem != nil {
		if cell, remembered := a.mem.bestMatch(point, e.ds, e.dist); remembered {
			a.dest = cell
		}
	}
	a.lastActed = cycle
	return nil
}

// dropCarried deposits the carried point: with DropRange > 0 on a
// uniformly chosen free cell of the drop window, otherwise on the ant's
// own cell. Returns false, still carrying, when no eligible cell exists.
func (e *engine) dropCarried(a *gridAnt, cycle int) bool {
	target := a.pos
	if e.opts.DropRange > 0 {
		free := e.freeCellsAround(a.pos, e.opts.DropRange)
		if len(free) == 0 {
			return false
		}
		target = free[e.rng.Intn(len(free))]
	} else if e.grid.occupied(target) {
		return false
	}
	if !e.grid.drop(a.carrying, target) {
		return false
	}
	if a.mem != nil {
		a.mem.memorize(a.carrying, target)
	}
	a.dest = destNone
	a.carrying = carryNone
	a.lastActed = cycle
	return true
}

// freeCellsAround lists the free cells of the square window of half-width
// r centered on cell, clipped to the lattice.
func (e *engine) freeCellsAround(cell, r int) []int {
	cx, cy := e.grid.coordinate(cell)
	free := make([]int, 0, (2*r+1)*(2*r+1))
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if !e.grid.inBounds(x, y) {
				continue
			}
			if idx := e.grid.index(x, y); e.grid.at(idx) == gridextract.Empty {
				free = append(free, idx)
			}
		}
	}
	return free
}

// directions are the four cardinal unit steps.
var directions = [4][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}

// walk moves the ant up to speed cells in one random cardinal direction.
// Directions that cross the border are redrawn; with an active drop
// destination only directions strictly toward it qualify, steps never
// overshoot it, and arrival clears the destination and stops the walk so
// the ant gets a work call there first.
//
// Complexity: O(speed).
func (e *engine) walk(a *gridAnt) {
	var (
		x, y    = e.grid.coordinate(a.pos)
		hasDest = a.carrying != carryNone && a.dest != destNone
		dx, dy  int
	)
	if hasDest {
		if a.pos == a.dest {
			a.dest = destNone
			return
		}
		dx, dy = e.grid.coordinate(a.dest)
	}

	var sx, sy int
	for {
		d := directions[e.rng.Intn(4)]
		sx, sy = d[0], d[1]
		if !e.grid.inBounds(x+sx, y+sy) {
			continue
		}
		if hasDest {
			if sx != 0 && (dx-x)*sx <= 0 {
				continue
			}
			if sy != 0 && (dy-y)*sy <= 0 {
				continue
			}
		}
		break
	}

	for i := 0; i < a.speed; i++ {
		nx, ny := x+sx, y+sy
		if !e.grid.inBounds(nx, ny) {
			break
		}
		if hasDest {
			if sx != 0 && (nx-dx)*sx > 0 {
				break
			}
			if sy != 0 && (ny-dy)*sy > 0 {
				break
			}
		}
		x, y = nx, ny
		a.pos = e.grid.index(x, y)
		if hasDest && a.pos == a.dest {
			a.dest = destNone
			break
		}
	}
}
