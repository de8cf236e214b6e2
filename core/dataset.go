package core

// Dataset is an immutable, index-addressed point store. Rows are copied on
// construction; callers cannot mutate stored features afterwards.
type Dataset struct {
	points [][]float64
	dim    int
}

// NewDataset copies rows into an immutable Dataset.
// All rows must share one feature dimension.
//
// Errors: ErrEmptyDataset, ErrDimensionMismatch.
//
// Complexity: O(n·d) time and space.
func NewDataset(rows [][]float64) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyDataset
	}
	var (
		dim    = len(rows[0])
		points = make([][]float64, len(rows))
		i      int
	)
	for i = range rows {
		if len(rows[i]) != dim {
			return nil, ErrDimensionMismatch
		}
		points[i] = make([]float64, dim)
		copy(points[i], rows[i])
	}
	return &Dataset{points: points, dim: dim}, nil
}

// Len reports the number of stored points.
func (ds *Dataset) Len() int { return len(ds.points) }

// Dim reports the feature dimension shared by all points.
func (ds *Dataset) Dim() int { return ds.dim }

// Point returns the feature vector of point i. The slice is owned by the
// Dataset; callers must not modify it.
//
// Complexity: O(1).
func (ds *Dataset) Point(i int) []float64 { return ds.points[i] }

// IndexOf locates the first stored point whose features equal q exactly
// (bitwise float equality, the lookup rule of the host contract).
// Returns Noise when no stored point matches or q has the wrong dimension.
//
// Complexity: O(n·d).
func (ds *Dataset) IndexOf(q []float64) int {
	if len(q) != ds.dim {
		return Noise
	}
	var (
		i int
		j int
	)
	for i = range ds.points {
		match := true
		for j = 0; j < ds.dim; j++ {
			if ds.points[i][j] != q[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return Noise
}
