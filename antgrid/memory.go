package antgrid

import "github.com/katalvlaran/antclust/core"

// dropRecord remembers one successful drop: which point went where.
type dropRecord struct {
	point int
	cell  int
}

// dropMemory is a bounded circular buffer of recent drop locations. It
// stays silent until every slot has been written once: early on the
// memory holds a single location and would drag every ant to it,
// collapsing the whole surface into one heap.
type dropMemory struct {
	recs   []dropRecord
	next   int
	filled bool
}

// newDropMemory returns a memory of the given capacity, or nil for
// size <= 0 (memory disabled).
func newDropMemory(size int) *dropMemory {
	if size <= 0 {
		return nil
	}
	return &dropMemory{recs: make([]dropRecord, size)}
}

// memorize records a drop, overwriting the oldest slot once full.
func (m *dropMemory) memorize(point, cell int) {
	m.recs[m.next] = dropRecord{point: point, cell: cell}
	m.next++
	if m.next >= len(m.recs) {
		m.next = 0
		m.filled = true
	}
}

// bestMatch returns the remembered cell whose dropped point is nearest to
// point by feature distance. ok is false until the memory has filled up.
//
// Complexity: O(size·dim).
func (m *dropMemory) bestMatch(point int, ds *core.Dataset, dist core.DistanceFunc) (cell int, ok bool) {
	if !m.filled {
		return -1, false
	}
	var (
		best     = -1
		bestDist float64
	)
	for _, rec := range m.recs {
		d := dist(ds.Point(point), ds.Point(rec.point))
		if best < 0 || d < bestDist {
			best = rec.cell
			bestDist = d
		}
	}
	return best, true
}
