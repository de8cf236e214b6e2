package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewDataset_CopiesRows verifies that mutating the input rows after
// construction does not leak into the stored points.
func TestNewDataset_CopiesRows(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	ds, err := NewDataset(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	require.Equal(t, 1.0, ds.Point(0)[0], "dataset must own its rows")
	require.Equal(t, 2, ds.Len())
	require.Equal(t, 2, ds.Dim())
}

func TestNewDataset_Empty(t *testing.T) {
	_, err := NewDataset(nil)
	require.ErrorIs(t, err, ErrEmptyDataset)
}

func TestNewDataset_RaggedRows(t *testing.T) {
	_, err := NewDataset([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}

// TestDataset_IndexOf exercises the exact-equality lookup rule of the host
// contract: training points resolve to their index, anything else to Noise.
func TestDataset_IndexOf(t *testing.T) {
	ds, err := NewDataset([][]float64{{0, 0}, {1.5, -2}, {1.5, -2}})
	require.NoError(t, err)

	require.Equal(t, 0, ds.IndexOf([]float64{0, 0}))
	// Duplicates resolve to the first occurrence.
	require.Equal(t, 1, ds.IndexOf([]float64{1.5, -2}))
	// Near match is still a miss: the rule is exact equality.
	require.Equal(t, Noise, ds.IndexOf([]float64{1.5, -2.0000001}))
	// Wrong dimension is a miss, not an error.
	require.Equal(t, Noise, ds.IndexOf([]float64{0}))
}
