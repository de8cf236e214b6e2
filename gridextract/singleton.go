package gridextract

// reattachSingletons folds 1-member clusters into a neighboring cluster.
// A singleton is absorbed only when every occupied cell in the square
// window of half-width w around it (the singleton's own cell aside)
// belongs to one same multi-member cluster; any ambiguity leaves the
// singleton alone. Returns the partition with emptied entries compacted
// away, preserving encounter order.
//
// Complexity: O(W·H + s·w²) for s singletons.
func reattachSingletons(lat *Lattice, clusters [][]int, w int) [][]int {
	// Point id -> owning cluster index, and point id -> cell index.
	var (
		owner = make(map[int]int)
		cell  = make(map[int]int)
		ci    int
		mi    int
	)
	for ci = range clusters {
		for mi = range clusters[ci] {
			owner[clusters[ci][mi]] = ci
		}
	}
	for idx, p := range lat.Cells {
		if p != Empty {
			cell[p] = idx
		}
	}

	// Snapshot the candidate list first: absorption changes cluster sizes,
	// and a singleton must be judged against the pre-pass partition.
	var singles []int
	for ci = range clusters {
		if len(clusters[ci]) == 1 {
			singles = append(singles, ci)
		}
	}

	for _, si := range singles {
		p := clusters[si][0]
		cx, cy := lat.Coordinate(cell[p])

		target := -1
		ambiguous := false
		for dy := -w; dy <= w && !ambiguous; dy++ {
			for dx := -w; dx <= w; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if !lat.InBounds(nx, ny) {
					continue
				}
				q := lat.Cells[lat.Index(nx, ny)]
				if q == Empty {
					continue
				}
				oc := owner[q]
				if oc == si {
					continue
				}
				if len(clusters[oc]) < 2 {
					// A neighboring singleton blocks absorption.
					ambiguous = true
					break
				}
				if target == -1 {
					target = oc
				} else if target != oc {
					ambiguous = true
					break
				}
			}
		}
		if ambiguous || target == -1 {
			continue
		}
		clusters[target] = append(clusters[target], p)
		clusters[si] = nil
		owner[p] = target
	}

	// Compact emptied entries, reusing the backing array.
	out := clusters[:0]
	for ci = range clusters {
		if clusters[ci] != nil {
			out = append(out, clusters[ci])
		}
	}
	return out
}
