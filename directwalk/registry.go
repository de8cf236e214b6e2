package directwalk

// clusterRec is one cluster arena slot. Ids are monotonically allocated
// registry indices and never reused within a run; dissolved clusters stay
// in place with alive=false so historical ids keep resolving.
type clusterRec struct {
	members []int
	start   int // representative: the point the cluster was seeded at
	alive   bool
}

// registry owns cluster creation, membership and merging for one run.
type registry struct {
	recs []clusterRec
}

// create mints a new cluster seeded at point p and assigns p to it.
//
// Complexity: O(1) amortized.
func (r *registry) create(p int, ph []placeholder) int {
	id := len(r.recs)
	r.recs = append(r.recs, clusterRec{members: []int{p}, start: p, alive: true})
	ph[p].cluster = id
	return id
}

// join adds point p to cluster id.
//
// Errors: ErrNoiseClusterMerge for id < 0, ErrDeadCluster for a dissolved id.
//
// Complexity: O(1) amortized.
func (r *registry) join(id, p int, ph []placeholder) error {
	if id < 0 {
		return ErrNoiseClusterMerge
	}
	if !r.recs[id].alive {
		return ErrDeadCluster
	}
	r.recs[id].members = append(r.recs[id].members, p)
	ph[p].cluster = id
	return nil
}

// merge migrates every member of src into dst and dissolves src. The
// member list is walked by index over a snapshot length, so concurrent
// structural growth of dst never disturbs the iteration.
//
// Errors: ErrNoiseClusterMerge when either side is negative (the noise
// cluster or an unassigned marker), ErrDeadCluster when either side is
// already dissolved.
//
// Complexity: O(|src|).
func (r *registry) merge(dst, src int, ph []placeholder) error {
	if dst < 0 || src < 0 {
		return ErrNoiseClusterMerge
	}
	if !r.recs[dst].alive || !r.recs[src].alive {
		return ErrDeadCluster
	}
	if dst == src {
		return nil
	}

	var (
		moved = r.recs[src].members
		n     = len(moved)
		i     int
	)
	for i = 0; i < n; i++ {
		ph[moved[i]].cluster = dst
	}
	r.recs[dst].members = append(r.recs[dst].members, moved...)
	r.recs[src].members = nil
	r.recs[src].alive = false
	return nil
}

// size reports the member count of cluster id, 0 for dissolved clusters.
func (r *registry) size(id int) int { return len(r.recs[id].members) }
