package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// TestRunDiagnostics tests indicator summaries over a generated series.
func TestRunDiagnostics(t *testing.T) {
	spec := schema.SeriesSpec{
		Length:     120,
		Baseline:   5,
		Slope:      0.1,
		Period:     12,
		Amplitude:  3,
		NoiseLevel: 0.5,
		Seed:       42,
	}
	series, err := GenerateSeries(spec)
	require.NoError(t, err)

	result, err := RunDiagnostics(spec, series, DiagConfig{SMAPeriod: 14, EMAPeriod: 14, RSIPeriod: 14})
	require.NoError(t, err)

	assert.Equal(t, spec, result.Spec)
	require.Len(t, result.Indicators, 3)

	names := []string{"sma", "ema", "rsi"}
	for i, ind := range result.Indicators {
		assert.Equal(t, names[i], ind.Name)
		assert.Equal(t, 14, ind.Period)
		assert.Positive(t, ind.Count)
		assert.GreaterOrEqual(t, ind.Max, ind.Min)
		assert.GreaterOrEqual(t, ind.Mean, ind.Min)
		assert.LessOrEqual(t, ind.Mean, ind.Max)
	}

	// The series trends upward, so its smoothed tail exceeds its head
	sma := result.Indicators[0]
	assert.Greater(t, sma.Last, sma.First)

	// RSI lives on a bounded oscillator scale
	rsi := result.Indicators[2]
	assert.GreaterOrEqual(t, rsi.Min, 0.0)
	assert.LessOrEqual(t, rsi.Max, 100.0)
}

// TestRunDiagnosticsErrors tests indicator period validation.
func TestRunDiagnosticsErrors(t *testing.T) {
	series := schema.Series{Time: TimeAxis(10), Values: linearSeries(10)}

	_, err := RunDiagnostics(schema.SeriesSpec{}, series, DiagConfig{SMAPeriod: 0, EMAPeriod: 14, RSIPeriod: 14})
	assert.ErrorIs(t, err, ErrNonPositiveWindow)
}
