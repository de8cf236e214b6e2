package gridextract

import "github.com/katalvlaran/antclust/core"

// Extract recovers clusters from final point placement on the lattice.
//
// Pipeline:
//  1. Worklist BFS over occupied cells groups them into provisional
//     clusters according to opts.Conn.
//  2. Every 1-member cluster whose occupied window neighborhood belongs
//     entirely to one other multi-member cluster is absorbed into it.
//  3. While more than opts.MaxClusters clusters remain (when > 0), the
//     pair with the smallest centroid distance is merged, smaller into
//     larger, ties by encounter order.
//
// The scan order is row-major and the merge rule deterministic, so an
// unchanged lattice always yields the same partition.
//
// Errors: ErrNilLattice, ErrNilDataset, ErrBadLattice, ErrBadWindow,
// ErrBadMaxClusters.
//
// Complexity: O(W·H·d + s·w² + (c−k)·c²·dim).
func Extract(lat *Lattice, ds *core.Dataset, opts Options) (*Result, error) {
	if err := validate(lat, ds, opts); err != nil {
		return nil, err
	}
	if opts.Distance == nil {
		opts.Distance = core.EuclideanDistance
	}

	clusters := floodFill(lat, opts.Conn)
	if opts.SingletonWindow > 0 {
		clusters = reattachSingletons(lat, clusters, opts.SingletonWindow)
	}
	if opts.MaxClusters > 0 {
		clusters = mergeToCount(clusters, ds, opts.MaxClusters, opts.Distance)
	}

	// Contiguous ids follow cluster encounter order.
	assign := make([]int, ds.Len())
	for i := range assign {
		assign[i] = core.Noise
	}
	var (
		ci int
		mi int
	)
	for ci = range clusters {
		for mi = range clusters[ci] {
			assign[clusters[ci][mi]] = ci
		}
	}
	return &Result{Assignments: assign, Clusters: clusters}, nil
}

// validate rejects malformed lattices and options before any work starts.
//
// Complexity: O(W·H).
func validate(lat *Lattice, ds *core.Dataset, opts Options) error {
	if lat == nil {
		return ErrNilLattice
	}
	if ds == nil {
		return ErrNilDataset
	}
	if lat.Width <= 0 || lat.Height <= 0 || len(lat.Cells) != lat.Width*lat.Height {
		return ErrBadLattice
	}
	if opts.SingletonWindow < 0 {
		return ErrBadWindow
	}
	if opts.MaxClusters < 0 {
		return ErrBadMaxClusters
	}

	seen := make([]bool, ds.Len())
	for _, p := range lat.Cells {
		if p == Empty {
			continue
		}
		if p < 0 || p >= ds.Len() || seen[p] {
			return ErrBadLattice
		}
		seen[p] = true
	}
	return nil
}

// floodFill groups occupied cells into clusters of point ids using an
// explicit queue (no recursion; memory stays bounded on large lattices).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and the worklist.
func floodFill(lat *Lattice, conn Connectivity) [][]int {
	var (
		total    = lat.Width * lat.Height
		seen     = make([]bool, total)
		offsets  = conn.offsets()
		clusters [][]int
	)

	for y := 0; y < lat.Height; y++ {
		for x := 0; x < lat.Width; x++ {
			i0 := lat.Index(x, y)
			if lat.Cells[i0] == Empty || seen[i0] {
				continue
			}
			// BFS to collect one component of occupied cells.
			queue := []int{i0}
			seen[i0] = true
			var members []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				members = append(members, lat.Cells[u])
				ux, uy := lat.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !lat.InBounds(vx, vy) {
						continue
					}
					vi := lat.Index(vx, vy)
					if lat.Cells[vi] == Empty || seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			clusters = append(clusters, members)
		}
	}
	return clusters
}
