package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// TestSplitAt tests partitioning into train and validation segments.
func TestSplitAt(t *testing.T) {
	series := schema.Series{
		Time:   []float64{0, 1, 2, 3, 4},
		Values: []float64{10, 11, 12, 13, 14},
	}

	split, err := SplitAt(series, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, split.SplitTime)
	assert.Equal(t, []float64{10, 11, 12}, split.Train.Values)
	assert.Equal(t, []float64{13, 14}, split.Valid.Values)
	assert.Equal(t, []float64{0, 1, 2}, split.Train.Time)
	assert.Equal(t, []float64{3, 4}, split.Valid.Time)
}

// TestSplitAtBounds tests that the split must be strictly inside the series.
func TestSplitAtBounds(t *testing.T) {
	series := schema.Series{
		Time:   []float64{0, 1, 2},
		Values: []float64{1, 2, 3},
	}

	for _, split := range []int{0, -1, 3, 4} {
		_, err := SplitAt(series, split)
		assert.ErrorIs(t, err, ErrSplitOutOfRange, "split=%d", split)
	}
}
