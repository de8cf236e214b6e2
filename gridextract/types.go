// Package gridextract defines core types, options, and sentinel errors
// for the gridextract subpackage of github.com/katalvlaran/antclust.
package gridextract

import (
	"fmt"

	"github.com/katalvlaran/antclust/core"
)

// Sentinel errors for gridextract operations. All wrap core.ErrConfiguration
// so callers can branch on the shared taxonomy.
var (
	// ErrNilLattice indicates a nil lattice was passed to Extract.
	ErrNilLattice = fmt.Errorf("gridextract: lattice must not be nil: %w", core.ErrConfiguration)
	// ErrNilDataset indicates a nil dataset was passed to Extract.
	ErrNilDataset = fmt.Errorf("gridextract: dataset must not be nil: %w", core.ErrConfiguration)
	// ErrBadLattice indicates dimensions and cell slice length disagree, or a
	// cell references a point index outside the dataset, or twice.
	ErrBadLattice = fmt.Errorf("gridextract: malformed occupancy surface: %w", core.ErrConfiguration)
	// ErrBadWindow indicates a negative singleton-reattachment window.
	ErrBadWindow = fmt.Errorf("gridextract: singleton window must be >= 0: %w", core.ErrConfiguration)
	// ErrBadMaxClusters indicates a negative target cluster count.
	ErrBadMaxClusters = fmt.Errorf("gridextract: max clusters must be >= 0: %w", core.ErrConfiguration)
)

// Empty marks a free lattice cell.
const Empty = -1

// Connectivity selects neighbor connectivity for the component scan:
// orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// offsets returns the neighbor displacement set for the connectivity.
func (c Connectivity) offsets() [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}
	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Lattice is a read-only occupancy surface: Cells[y*Width+x] holds the
// point index placed at (x,y), or Empty. It is the hand-off format between
// the antgrid engine and this package.
type Lattice struct {
	Width, Height int
	Cells         []int
}

// NewLattice wraps cells (row-major, length width*height) without copying.
//
// Complexity: O(1).
func NewLattice(width, height int, cells []int) *Lattice {
	return &Lattice{Width: width, Height: height, Cells: cells}
}

// Index converts (x,y) to a row-major cell index.
func (l *Lattice) Index(x, y int) int { return y*l.Width + x }

// Coordinate converts a row-major cell index back to (x,y).
func (l *Lattice) Coordinate(idx int) (x, y int) { return idx % l.Width, idx / l.Width }

// InBounds reports whether (x,y) lies on the lattice.
func (l *Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Options tunes extraction and merging.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity for the component scan.
	Conn Connectivity
	// SingletonWindow is the half-width of the square window inspected when
	// reattaching 1-member clusters; 0 disables reattachment.
	SingletonWindow int
	// MaxClusters caps the cluster count via closest-centroid merging;
	// 0 means no merging.
	MaxClusters int
	// Distance measures centroid separation during merging.
	// Nil defaults to core.EuclideanDistance.
	Distance core.DistanceFunc
}

// DefaultOptions returns the extraction defaults: Conn4, singleton window
// of half-width 1 (a 3×3 neighborhood), unbounded cluster count,
// Euclidean centroid distance.
func DefaultOptions() Options {
	return Options{
		Conn:            Conn4,
		SingletonWindow: 1,
		MaxClusters:     0,
		Distance:        core.EuclideanDistance,
	}
}

// Result is the outcome of Extract.
type Result struct {
	// Assignments maps every dataset point to its cluster id, core.Noise
	// for points absent from the lattice.
	Assignments []int
	// Clusters lists member point ids per cluster; ids are contiguous and
	// index this slice.
	Clusters [][]int
}

// NumClusters reports the number of recovered clusters.
func (r *Result) NumClusters() int { return len(r.Clusters) }
