package gridextract

import "github.com/katalvlaran/antclust/core"

// centroidCache keeps per-cluster centroids, recomputed lazily after a
// membership change invalidates them.
type centroidCache struct {
	ds    *core.Dataset
	vals  [][]float64
	dirty []bool
}

func newCentroidCache(ds *core.Dataset, n int) *centroidCache {
	c := &centroidCache{
		ds:    ds,
		vals:  make([][]float64, n),
		dirty: make([]bool, n),
	}
	for i := range c.dirty {
		c.dirty[i] = true
	}
	return c
}

// centroid returns the per-attribute mean over the members of cluster ci.
//
// Complexity: O(m·dim) on a dirty entry, O(1) otherwise.
func (c *centroidCache) centroid(ci int, members []int) []float64 {
	if !c.dirty[ci] {
		return c.vals[ci]
	}
	var (
		dim = c.ds.Dim()
		sum = make([]float64, dim)
		mi  int
		di  int
	)
	for mi = range members {
		p := c.ds.Point(members[mi])
		for di = 0; di < dim; di++ {
			sum[di] += p[di]
		}
	}
	for di = 0; di < dim; di++ {
		sum[di] /= float64(len(members))
	}
	c.vals[ci] = sum
	c.dirty[ci] = false
	return sum
}

// invalidate marks cluster ci for recomputation.
func (c *centroidCache) invalidate(ci int) { c.dirty[ci] = true }

// mergeToCount reduces the partition to at most k clusters by repeatedly
// merging the pair with the smallest centroid distance. The smaller member
// list is folded into the larger; on equal sizes and on equal distances the
// earlier-encountered cluster survives. Total member count is conserved.
//
// Complexity: O((c−k)·c²·dim) for c initial clusters.
func mergeToCount(clusters [][]int, ds *core.Dataset, k int, dist core.DistanceFunc) [][]int {
	cache := newCentroidCache(ds, len(clusters))

	alive := len(clusters)
	for alive > k {
		var (
			bestA = -1
			bestB = -1
			bestD float64
		)
		for a := 0; a < len(clusters); a++ {
			if clusters[a] == nil {
				continue
			}
			ca := cache.centroid(a, clusters[a])
			for b := a + 1; b < len(clusters); b++ {
				if clusters[b] == nil {
					continue
				}
				d := dist(ca, cache.centroid(b, clusters[b]))
				if bestA == -1 || d < bestD {
					bestA, bestB, bestD = a, b, d
				}
			}
		}

		// Fold the smaller cluster into the larger; bestA encountered first.
		dst, src := bestA, bestB
		if len(clusters[src]) > len(clusters[dst]) {
			dst, src = src, dst
		}
		clusters[dst] = append(clusters[dst], clusters[src]...)
		clusters[src] = nil
		cache.invalidate(dst)
		alive--
	}

	out := clusters[:0]
	for i := range clusters {
		if clusters[i] != nil {
			out = append(out, clusters[i])
		}
	}
	return out
}
