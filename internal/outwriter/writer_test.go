package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// sampleRun returns a small two-method run for writer tests.
func sampleRun() schema.RunResult {
	return schema.RunResult{
		Spec: schema.SeriesSpec{
			Length:     120,
			Baseline:   5,
			Period:     12,
			NoiseLevel: 0.5,
			Seed:       42,
		},
		SplitTime: 80,
		Evaluations: []schema.Evaluation{
			{Method: schema.NaiveMethod, MAE: 2.5, MSE: 9.1, Count: 40},
			{Method: schema.ModelMethod, MAE: 1.25, MSE: 3.5, Count: 40, Skill: 0.5},
		},
	}
}

// TestWriteCSVResultsForRun tests the per-method CSV rows.
func TestWriteCSVResultsForRun(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(2)

	require.NoError(t, writeCSVResultsForRun(w, sampleRun(), fmtFloat))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "method,mae,mse,points,skill,label,split,seed,cached", lines[0])
	assert.Equal(t, "naive,2.50,9.10,40,0.00,Poor,80,42,false", lines[1])
	assert.Equal(t, "model,1.25,3.50,40,0.50,Excellent,80,42,false", lines[2])
}

// TestWriteJSONResultsForRun tests the JSON round trip.
func TestWriteJSONResultsForRun(t *testing.T) {
	var buf bytes.Buffer
	run := sampleRun()

	require.NoError(t, writeJSONResultsForRun(&buf, run))

	var decoded schema.RunResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, run.SplitTime, decoded.SplitTime)
	assert.True(t, schema.EvaluationsEqual(run.Evaluations, decoded.Evaluations))
}

// TestWriteCSVResultsForSeries tests one row per tick.
func TestWriteCSVResultsForSeries(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(3)

	series := schema.Series{
		Time:   []float64{0, 1, 2},
		Values: []float64{1.5, 2.25, 3},
	}
	require.NoError(t, writeCSVResultsForSeries(w, series, fmtFloat))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "tick,value", lines[0])
	assert.Equal(t, "0,1.500", lines[1])
	assert.Equal(t, "2,3.000", lines[3])
}

// TestWriteCSVResultsForHistory tests the per-epoch rows.
func TestWriteCSVResultsForHistory(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat, _ := createFormatters(3)

	history := &schema.TrainHistory{
		Loss: []float64{4.5, 2.25},
		MAE:  []float64{2.5, 1.5},
		LR:   []float64{1e-5, 1e-5},
	}
	require.NoError(t, writeCSVResultsForHistory(w, history, fmtFloat))
	w.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "epoch,learning_rate,loss,mae", lines[0])
	assert.Equal(t, "0,1.000000e-05,4.500,2.500", lines[1])
	assert.Equal(t, "1,1.000000e-05,2.250,1.500", lines[2])
}

// TestCreateFormatters tests precision handling.
func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)
	assert.Equal(t, "3.14", fmtFloat(3.14159))
	assert.Equal(t, "%d", intFmt)

	fmtFloat, _ = createFormatters(5)
	assert.Equal(t, "3.14159", fmtFloat(3.14159))
}

// TestWriteJSON tests indented encoding of arbitrary payloads.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string]int{"epochs": 10}))
	assert.Contains(t, buf.String(), "\"epochs\": 10")
}
