package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearSeries returns the series 0, 1, ..., n-1.
func linearSeries(n int) []float64 {
	return TimeAxis(n)
}

// TestNaiveForecast tests the previous-value predictor.
func TestNaiveForecast(t *testing.T) {
	series := []float64{10, 20, 30, 40, 50}

	out, err := NaiveForecast(series, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 40}, out)

	// First prediction is the last training value
	assert.Equal(t, series[2], out[0])

	for _, split := range []int{0, 5, 6} {
		_, err := NaiveForecast(series, split)
		assert.ErrorIs(t, err, ErrSplitOutOfRange, "split=%d", split)
	}
}

// TestMovingAverageForecast tests rolling means over full windows.
func TestMovingAverageForecast(t *testing.T) {
	tests := []struct {
		name     string
		series   []float64
		window   int
		expected []float64
	}{
		{
			name:     "window of three",
			series:   linearSeries(10),
			window:   3,
			expected: []float64{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:     "window of one is identity",
			series:   []float64{4, 7, 1},
			window:   1,
			expected: []float64{4, 7},
		},
		{
			name:     "window covering the whole series",
			series:   []float64{1, 2, 3},
			window:   3,
			expected: []float64{},
		},
		{
			name:     "window longer than series",
			series:   []float64{1, 2},
			window:   5,
			expected: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := MovingAverageForecast(tt.series, tt.window)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}

	_, err := MovingAverageForecast(linearSeries(10), 0)
	assert.ErrorIs(t, err, ErrNonPositiveWindow)
}

// TestMovingAverageAligned tests validation-segment alignment.
func TestMovingAverageAligned(t *testing.T) {
	series := linearSeries(20)

	out, err := MovingAverageAligned(series, 15, 4)
	require.NoError(t, err)
	require.Len(t, out, 5)

	// For a linear series the mean of the window ending at t-1 is t-(w+1)/2
	for i, v := range out {
		assert.InDelta(t, float64(15+i)-2.5, v, 1e-12)
	}

	// Window of one reduces to the naive forecast
	naive, err := NaiveForecast(series, 15)
	require.NoError(t, err)
	one, err := MovingAverageAligned(series, 15, 1)
	require.NoError(t, err)
	assert.Equal(t, naive, one)

	_, err = MovingAverageAligned(series, 3, 10)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

// TestDifference tests the period-lag differencing round trip.
func TestDifference(t *testing.T) {
	series := []float64{1, 4, 9, 16, 25, 36}

	diff, err := Difference(series, 2)
	require.NoError(t, err)
	require.Len(t, diff, 4)

	// diff[i] + series[i] restores series[i+period] exactly
	for i, d := range diff {
		assert.Equal(t, series[i+2], series[i]+d)
	}

	empty, err := Difference([]float64{1, 2}, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Difference(series, 0)
	assert.ErrorIs(t, err, ErrNonPositivePeriod)
}

// TestDiffMovingAverageForecast tests exact recovery on a trend-only series.
func TestDiffMovingAverageForecast(t *testing.T) {
	// For a pure linear trend the differenced series is constant, so the
	// averaged difference restores the future values exactly.
	series := linearSeries(60)

	out, err := DiffMovingAverageForecast(series, 40, 12, 4)
	require.NoError(t, err)
	require.Len(t, out, 20)

	for i, v := range out {
		assert.InDelta(t, series[40+i], v, 1e-12, "tick %d", 40+i)
	}

	_, err = DiffMovingAverageForecast(series, 10, 12, 4)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

// TestDiffSmoothedForecast tests alignment of the smoothed variant.
func TestDiffSmoothedForecast(t *testing.T) {
	series := linearSeries(60)

	out, err := DiffSmoothedForecast(series, 40, 12, 4, 4)
	require.NoError(t, err)
	require.Len(t, out, 20)

	// On a noiseless trend the centered smoothing only shifts the lagged
	// values by half a tick, so the forecast stays within that margin.
	for i, v := range out {
		assert.InDelta(t, series[40+i], v, 0.5+1e-12, "tick %d", 40+i)
	}

	_, err = DiffSmoothedForecast(series, 40, 12, 4, 0)
	assert.ErrorIs(t, err, ErrNonPositiveWindow)
	_, err = DiffSmoothedForecast(series, 13, 12, 1, 4)
	assert.ErrorIs(t, err, ErrInsufficientHistory)
}

// TestBaselineLengthsOnReferenceSeries tests that every baseline emits one
// prediction per validation tick on a realistic seasonal series.
func TestBaselineLengthsOnReferenceSeries(t *testing.T) {
	series, err := GenerateSeries(referenceSpec())
	require.NoError(t, err)
	split := 1000
	want := series.Len() - split

	naive, err := NaiveForecast(series.Values, split)
	require.NoError(t, err)
	assert.Len(t, naive, want)

	ma, err := MovingAverageAligned(series.Values, split, 30)
	require.NoError(t, err)
	assert.Len(t, ma, want)

	diff, err := DiffMovingAverageForecast(series.Values, split, 365, 50)
	require.NoError(t, err)
	assert.Len(t, diff, want)

	smooth, err := DiffSmoothedForecast(series.Values, split, 365, 50, 10)
	require.NoError(t, err)
	assert.Len(t, smooth, want)
}
