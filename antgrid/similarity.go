package antgrid

import "github.com/katalvlaran/antclust/gridextract"

// foi scores the local similarity of point inside the ant's view window:
// the mean over occupied window cells of 1 − distance/divisor, normalized
// by the full window cell count and floored at 0. The divisor grows with
// the ant's speed, alpha·(1 + (speed−1)/MaxSpeed), so fast ants judge
// neighborhoods more leniently and settle points coarsely while slow ants
// refine them. When the ant is not carrying, point itself sits on the
// surface inside the window and is excluded from its own score.
//
// Complexity: O(ViewRange²·dim).
func (e *engine) foi(point int, a *gridAnt, carrying bool) float64 {
	var (
		px, py = e.grid.coordinate(a.pos)
		vr     = e.opts.ViewRange
		div    = e.opts.Alpha + e.opts.Alpha*float64(a.speed-1)/float64(e.opts.MaxSpeed)
		sum    float64
		found  bool
	)
	for y := py - vr; y <= py+vr; y++ {
		for x := px - vr; x <= px+vr; x++ {
			if !e.grid.inBounds(x, y) {
				continue
			}
			occ := e.grid.at(e.grid.index(x, y))
			if occ == gridextract.Empty {
				continue
			}
			found = true
			if !carrying && occ == point {
				continue
			}
			sum += 1 - e.dist(e.ds.Point(point), e.ds.Point(occ))/div
		}
	}
	if !found {
		return 0
	}
	side := float64(2*vr + 1)
	f := sum / (side * side)
	if f < 0 {
		return 0
	}
	return f
}

// wantsPickUp draws the pick-up decision for the point resting at the
// ant's cell: probability (Kp/(Kp+foi))², so well-embedded points stick.
func (e *engine) wantsPickUp(point int, a *gridAnt) bool {
	pre := e.opts.Kp / (e.opts.Kp + e.foi(point, a, false))
	return e.rng.Float64() <= pre*pre
}

// wantsDrop draws the drop decision for the carried point at the ant's
// current cell, under the configured probability rule.
func (e *engine) wantsDrop(a *gridAnt) bool {
	f := e.foi(a.carrying, a, true)
	var p float64
	if e.opts.Drop == DropSymmetric {
		pre := f / (e.opts.Kd + f)
		p = pre * pre
	} else {
		if f < e.opts.Kd {
			p = 2 * f
		} else {
			p = 1.0
		}
	}
	return e.rng.Float64() <= p
}
