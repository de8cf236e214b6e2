package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompactAssignments(t *testing.T) {
	cases := []struct {
		name  string
		in    []int
		want  []int
		wantK int
	}{
		{"already compact", []int{0, 1, 0, 1}, []int{0, 1, 0, 1}, 2},
		{"gaps closed in id order", []int{7, 3, 7, 12}, []int{1, 0, 1, 2}, 3},
		{"noise untouched", []int{Noise, 5, Noise, 5}, []int{Noise, 0, Noise, 0}, 1},
		{"all noise", []int{Noise, Noise}, []int{Noise, Noise}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := make([]int, len(tc.in))
			copy(got, tc.in)
			k := CompactAssignments(got)
			require.Equal(t, tc.want, got)
			require.Equal(t, tc.wantK, k)
		})
	}
}

func TestMaxAssigned(t *testing.T) {
	require.Equal(t, 3, MaxAssigned([]int{0, 2, Noise, 1}))
	require.Equal(t, 0, MaxAssigned([]int{Noise, Noise}))
}

// TestGaussianBlobs checks label layout, determinism per seed and the
// empty-blob edge.
func TestGaussianBlobs(t *testing.T) {
	blobs := []Blob{
		{Center: []float64{0, 0}, Sigma: 1, Count: 3},
		{Center: []float64{10, 10}, Sigma: 1, Count: 2},
	}

	ds, labels, err := GaussianBlobs(blobs, NewRand(7))
	require.NoError(t, err)
	require.Equal(t, 5, ds.Len())
	require.Equal(t, []int{0, 0, 0, 1, 1}, labels)

	ds2, _, err := GaussianBlobs(blobs, NewRand(7))
	require.NoError(t, err)
	for i := 0; i < ds.Len(); i++ {
		require.Equal(t, ds.Point(i), ds2.Point(i), "same seed must give identical points")
	}

	_, _, err = GaussianBlobs(nil, nil)
	require.ErrorIs(t, err, ErrEmptyDataset)
}
