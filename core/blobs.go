package core

import (
	"math"
	"math/rand"
)

// Blob describes one Gaussian point cloud for GaussianBlobs.
type Blob struct {
	// Center is the blob mean, one value per feature dimension.
	Center []float64
	// Sigma is the standard deviation applied to every dimension.
	Sigma float64
	// Count is the number of points to draw.
	Count int
}

// GaussianBlobs draws len(blobs) Gaussian point clouds and returns them as
// one Dataset plus the source-blob label of every point. Labels follow blob
// order, so points 0..blobs[0].Count-1 carry label 0, and so on. Sampling
// uses Box–Muller transforms driven entirely by rng, keeping generated
// datasets reproducible per seed. rng==nil falls back to the seed==0 policy.
//
// Errors: ErrEmptyDataset when no blob contributes a point,
// ErrDimensionMismatch when blob centers disagree on dimension.
//
// Complexity: O(total·d) time and space.
func GaussianBlobs(blobs []Blob, rng *rand.Rand) (*Dataset, []int, error) {
	var r = rng
	if r == nil {
		r = NewRand(0)
	}

	var (
		rows   [][]float64
		labels []int
		bi     int
		pi     int
		di     int
	)
	for bi = range blobs {
		for pi = 0; pi < blobs[bi].Count; pi++ {
			row := make([]float64, len(blobs[bi].Center))
			for di = range blobs[bi].Center {
				row[di] = blobs[bi].Center[di] + blobs[bi].Sigma*gaussian(r)
			}
			rows = append(rows, row)
			labels = append(labels, bi)
		}
	}
	if len(rows) == 0 {
		return nil, nil, ErrEmptyDataset
	}

	ds, err := NewDataset(rows)
	if err != nil {
		return nil, nil, err
	}
	return ds, labels, nil
}

// gaussian draws one standard normal variate via the Box–Muller transform.
// rand.NormFloat64 would do as well; an explicit transform keeps the draw
// count per point fixed at two, which pins generated datasets across Go
// releases.
func gaussian(r *rand.Rand) float64 {
	var u1 = r.Float64()
	for u1 == 0 {
		u1 = r.Float64()
	}
	u2 := r.Float64()
	return math.Sqrt(-2*math.Log(u1)) * math.Sin(2*math.Pi*u2)
}
