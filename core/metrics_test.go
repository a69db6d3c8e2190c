package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// TestMAE tests the mean absolute error.
func TestMAE(t *testing.T) {
	tests := []struct {
		name      string
		actual    []float64
		predicted []float64
		expected  float64
	}{
		{
			name:      "perfect prediction",
			actual:    []float64{1, 2, 3},
			predicted: []float64{1, 2, 3},
			expected:  0,
		},
		{
			name:      "constant offset",
			actual:    []float64{1, 2, 3},
			predicted: []float64{2, 3, 4},
			expected:  1,
		},
		{
			name:      "mixed signs",
			actual:    []float64{0, 0},
			predicted: []float64{-3, 1},
			expected:  2,
		},
		{
			name:      "empty input",
			actual:    []float64{},
			predicted: []float64{},
			expected:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MAE(tt.actual, tt.predicted)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}

	_, err := MAE([]float64{1}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

// TestMSE tests the mean squared error.
func TestMSE(t *testing.T) {
	got, err := MSE([]float64{0, 0, 0}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 14.0/3, got, 1e-12)

	zero, err := MSE([]float64{}, []float64{})
	require.NoError(t, err)
	assert.Zero(t, zero)

	_, err = MSE([]float64{1}, []float64{})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

// TestHuber tests both regions of the Huber loss.
func TestHuber(t *testing.T) {
	// Residual 0.5 is inside the quadratic region: 0.5 * 0.25
	small, err := Huber([]float64{0}, []float64{0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.125, small, 1e-12)

	// Residual 3 is in the linear region: 1 * (3 - 0.5)
	large, err := Huber([]float64{0}, []float64{3})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, large, 1e-12)

	_, err = Huber([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrMismatchedLengths)
}

// TestEvaluate tests the metric bundle for one method.
func TestEvaluate(t *testing.T) {
	eval, err := Evaluate(schema.NaiveMethod, []float64{1, 2, 3}, []float64{2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, schema.NaiveMethod, eval.Method)
	assert.InDelta(t, 1.0, eval.MAE, 1e-12)
	assert.InDelta(t, 1.0, eval.MSE, 1e-12)
	assert.Equal(t, 3, eval.Count)
	assert.Zero(t, eval.Skill, "skill is assigned later against the naive reference")
}

// TestApplySkill tests skill assignment relative to the naive baseline.
func TestApplySkill(t *testing.T) {
	evals := []schema.Evaluation{
		{Method: schema.NaiveMethod, MAE: 4},
		{Method: schema.MovingAverageMethod, MAE: 2},
		{Method: schema.ModelMethod, MAE: 6},
	}

	ApplySkill(evals)

	assert.Zero(t, evals[0].Skill)
	assert.InDelta(t, 0.5, evals[1].Skill, 1e-12)
	assert.InDelta(t, -0.5, evals[2].Skill, 1e-12)
}

// TestApplySkillZeroReference tests the degenerate perfect-naive case.
func TestApplySkillZeroReference(t *testing.T) {
	evals := []schema.Evaluation{
		{Method: schema.NaiveMethod, MAE: 0},
		{Method: schema.ModelMethod, MAE: 3},
	}

	ApplySkill(evals)

	for _, e := range evals {
		assert.Zero(t, e.Skill)
	}
}
