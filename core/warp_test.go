package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWarpingDistance_IdenticalSequences(t *testing.T) {
	d := WarpingDistance(0, 0)
	require.Equal(t, 0.0, d([]float64{0, 1, 2}, []float64{0, 1, 2}))
}

func TestWarpingDistance_AbsorbsTimeShift(t *testing.T) {
	// the repeated leading zero aligns against one element at no cost,
	// where Euclidean on padded vectors would not
	d := WarpingDistance(0, 0)
	require.Equal(t, 0.0, d([]float64{0, 0, 1}, []float64{0, 1}))
}

func TestWarpingDistance_SlopePenaltyChargesStretch(t *testing.T) {
	// one insertion step is unavoidable, so the distance is the penalty
	d := WarpingDistance(0, 0.5)
	require.Equal(t, 0.5, d([]float64{0, 0}, []float64{0}))
}

func TestWarpingDistance_BandConstrainsAlignment(t *testing.T) {
	a := []float64{0, 0, 0, 10}
	b := []float64{10, 0, 0, 0}

	// within a +-1 band both misplaced spikes must be paid for
	banded := WarpingDistance(1, 0)
	require.Equal(t, 20.0, banded(a, b))
}

func TestWarpingDistance_BandNarrowerThanLengthGap(t *testing.T) {
	d := WarpingDistance(1, 0)
	require.True(t, math.IsInf(d([]float64{1, 1, 1, 1, 1}, []float64{1}), 1))
}

func TestWarpingDistance_EmptySideIsZero(t *testing.T) {
	d := WarpingDistance(0, 0)
	require.Equal(t, 0.0, d(nil, []float64{1, 2}))
}
