package directwalk

import "sort"

// reduceTo relabels assign so that at most k non-noise clusters remain:
// the k largest clusters by member count are "leading", every other
// point migrates by priority:
//
//	already leading      -> keep;
//	a neighbor leads     -> adopt the neighbor's cluster
//	                        (nearest such neighbor wins);
//	otherwise            -> nearest leading cluster by distance between
//	                        representatives.
//
// Ties among equally sized clusters break toward the older (smaller) id.
// Noise entries are never touched. assign is mutated in place; the
// placeholder arena keeps its pre-reduction memberships, which is exactly
// what the neighbor lookup needs.
//
// Complexity: O(c·log c + n·(deg + k)).
func (e *engine) reduceTo(k int, assign []int) {
	var order []int
	for id := range e.reg.recs {
		if e.reg.recs[id].alive {
			order = append(order, id)
		}
	}
	if len(order) <= k {
		return
	}
	sort.Slice(order, func(i, j int) bool {
		if e.reg.size(order[i]) != e.reg.size(order[j]) {
			return e.reg.size(order[i]) > e.reg.size(order[j])
		}
		return order[i] < order[j]
	})

	leading := order[:k]
	lead := make(map[int]bool, k)
	for _, id := range leading {
		lead[id] = true
	}

	var p int
	for p = range assign {
		c := assign[p]
		if c < 0 || lead[c] {
			continue
		}

		adopted := false
		for _, nr := range e.ph[p].neighbors {
			if nc := e.ph[nr.id].cluster; nc >= 0 && lead[nc] {
				assign[p] = nc
				adopted = true
				break
			}
		}
		if adopted {
			continue
		}

		var (
			rep   = e.reg.recs[c].start
			best  = -1
			bestD float64
		)
		for _, lid := range leading {
			d := e.dist(e.ds.Point(rep), e.ds.Point(e.reg.recs[lid].start))
			if best == -1 || d < bestD {
				best, bestD = lid, d
			}
		}
		assign[p] = best
	}
}
