package directwalk

import "sort"

// explore runs neighborhood discovery for point p and refreshes its
// similarity. Discovery only measures distances to not-yet-complete peers:
// complete peers already pushed their reciprocal relation into p's list
// when they explored, so re-measuring them would be wasted work. This
// shortcut assumes the distance function is symmetric; see package docs.
//
// With AlignDistances, candidate distances are normalized by the largest
// distance found in this round before the radius test, so
// NeighborhoodSize acts as a fraction of the local scale.
//
// After filtering, p's relations are sorted ascending by distance and the
// reciprocal relation is pushed to every freshly found neighbor.
//
// Complexity: O(n·dim + deg·log deg).
func (e *engine) explore(p int) {
	if e.ph[p].complete {
		return
	}

	var (
		cand []neighborRel
		q    int
		maxD float64
	)
	for q = 0; q < len(e.ph); q++ {
		if q == p || e.ph[q].complete {
			continue
		}
		d := e.dist(e.ds.Point(p), e.ds.Point(q))
		if d > maxD {
			maxD = d
		}
		cand = append(cand, neighborRel{id: q, dist: d})
	}
	if e.opts.AlignDistances && maxD > 0 {
		for i := range cand {
			cand[i].dist /= maxD
		}
	}

	for _, nr := range cand {
		if nr.dist > e.opts.NeighborhoodSize {
			continue
		}
		e.ph[p].neighbors = append(e.ph[p].neighbors, nr)
		// Reciprocal push keeps the relation symmetric without the peer
		// ever re-measuring it.
		e.ph[nr.id].neighbors = append(e.ph[nr.id].neighbors, neighborRel{id: p, dist: nr.dist})
		sortNeighbors(e.ph[nr.id].neighbors)
		e.ph[nr.id].foi = e.similarity(nr.id)
	}

	sortNeighbors(e.ph[p].neighbors)
	e.ph[p].complete = true
	e.ph[p].foi = e.similarity(p)
}

// sortNeighbors orders relations ascending by distance, ties by id, so
// every scan over a neighbor list is deterministic.
func sortNeighbors(ns []neighborRel) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].dist != ns[j].dist {
			return ns[i].dist < ns[j].dist
		}
		return ns[i].id < ns[j].id
	})
}

// similarity computes the local density score of point p:
// 0 without neighbors, else 10 · max(0, mean(1 − d/Alpha)).
//
// Complexity: O(deg).
func (e *engine) similarity(p int) float64 {
	ns := e.ph[p].neighbors
	if len(ns) == 0 {
		return 0
	}
	var sum float64
	for i := range ns {
		sum += 1 - ns[i].dist/e.opts.Alpha
	}
	mean := sum / float64(len(ns))
	if mean < 0 {
		return 0
	}
	return similarityScale * mean
}
