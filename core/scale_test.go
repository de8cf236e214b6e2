package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func scalerFixture(t *testing.T) *RangeScaler {
	t.Helper()
	ds, err := NewDataset([][]float64{
		{0, 10, 7},
		{50, 30, 7},
		{25, 20, 7},
	})
	require.NoError(t, err)
	return NewRangeScaler(ds)
}

func TestRangeScaler_Normalize(t *testing.T) {
	s := scalerFixture(t)

	require.Equal(t, []float64{0, 0, 0}, s.Normalize([]float64{0, 10, 7}))
	require.Equal(t, []float64{1, 1, 0}, s.Normalize([]float64{50, 30, 7}))
	require.Equal(t, []float64{0.5, 0.5, 0}, s.Normalize([]float64{25, 20, 7}))
}

func TestRangeScaler_ConstantAttributeContributesNothing(t *testing.T) {
	s := scalerFixture(t)

	// the third attribute is constant over the training set, so it must
	// not separate otherwise identical points
	d := s.Wrap(EuclideanDistance)
	require.Equal(t, 0.0, d([]float64{0, 10, 7}, []float64{0, 10, 99}))
}

func TestRangeScaler_WrapScalesDistances(t *testing.T) {
	s := scalerFixture(t)

	// raw distance 50 on the first attribute becomes exactly 1
	d := s.Wrap(EuclideanDistance)
	require.InDelta(t, 1.0, d([]float64{0, 10, 7}, []float64{50, 10, 7}), 1e-12)
}

func TestRangeScaler_NaNPassesThrough(t *testing.T) {
	s := scalerFixture(t)

	p := s.Normalize([]float64{math.NaN(), 20, 7})
	require.True(t, math.IsNaN(p[0]))
	require.Equal(t, 0.5, p[1])

	// composes with the missing-value wrapper: NaN dropped pairwise
	d := s.Wrap(SkipMissing(EuclideanDistance))
	got := d([]float64{math.NaN(), 10, 7}, []float64{50, 30, 7})
	require.InDelta(t, 1.5, got, 1e-12)
}

func TestRangeScaler_SkipsNaNWhenLearning(t *testing.T) {
	ds, err := NewDataset([][]float64{
		{math.NaN(), 0},
		{10, 4},
		{20, 2},
	})
	require.NoError(t, err)
	s := NewRangeScaler(ds)

	// the NaN row must not poison the first attribute's range
	require.Equal(t, []float64{0.5, 0.5}, s.Normalize([]float64{15, 2}))
}
