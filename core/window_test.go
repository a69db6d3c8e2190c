package core

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWindowIterator tests pair construction and exhaustion.
func TestWindowIterator(t *testing.T) {
	series := []float64{0, 1, 2, 3, 4}

	it, err := NewWindowIterator(series, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, it.Count())

	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, first.Input)
	assert.Equal(t, []float64{1, 2}, first.Target)

	second, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2}, second.Input)
	assert.Equal(t, []float64{2, 3}, second.Target)

	third, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []float64{2, 3}, third.Input)
	assert.Equal(t, []float64{3, 4}, third.Target)

	_, ok = it.Next()
	assert.False(t, ok, "iterator must be exhausted after Count pairs")
}

// TestWindowIteratorShiftByOne tests the one-step supervised alignment.
func TestWindowIteratorShiftByOne(t *testing.T) {
	series := []float64{5, 8, 13, 21, 34, 55}

	it, err := NewWindowIterator(series, 3)
	require.NoError(t, err)
	for {
		pair, ok := it.Next()
		if !ok {
			break
		}
		require.Len(t, pair.Input, 3)
		require.Len(t, pair.Target, 3)
		// Target is the input shifted left by one tick
		assert.Equal(t, pair.Input[1:], pair.Target[:2])
	}
}

// TestWindowIteratorEdges tests short series and invalid windows.
func TestWindowIteratorEdges(t *testing.T) {
	it, err := NewWindowIterator([]float64{1, 2}, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, it.Count())
	_, ok := it.Next()
	assert.False(t, ok)

	_, err = NewWindowIterator([]float64{1, 2, 3}, 0)
	assert.ErrorIs(t, err, ErrNonPositiveWindow)
}

// TestWindowIteratorReset tests that Reset replays the sequence.
func TestWindowIteratorReset(t *testing.T) {
	series := []float64{1, 2, 3, 4}
	it, err := NewWindowIterator(series, 2)
	require.NoError(t, err)

	first, ok := it.Next()
	require.True(t, ok)
	it.Reset()
	again, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, first, again)
}

// collectTargets drains an iterator and returns the last target values.
func collectTargets(t *testing.T, next func() (WindowPair, bool)) []float64 {
	t.Helper()
	var out []float64
	for {
		pair, ok := next()
		if !ok {
			return out
		}
		out = append(out, pair.Target[len(pair.Target)-1])
	}
}

// TestShuffledIterator tests that shuffling permutes without loss.
func TestShuffledIterator(t *testing.T) {
	series := TimeAxis(40)
	inner, err := NewWindowIterator(series, 4)
	require.NoError(t, err)

	it, err := NewShuffledIterator(inner, 8, 42)
	require.NoError(t, err)
	assert.Equal(t, inner.Count(), it.Count())

	shuffled := collectTargets(t, it.Next)
	require.Len(t, shuffled, 36)

	// Every window appears exactly once
	sorted := append([]float64(nil), shuffled...)
	sort.Float64s(sorted)
	assert.Equal(t, series[4:], sorted)

	// A bounded buffer still reorders a sequential input
	assert.NotEqual(t, series[4:], shuffled)
}

// TestShuffledIteratorReset tests that Reset replays the identical order.
func TestShuffledIteratorReset(t *testing.T) {
	series := TimeAxis(30)
	inner, err := NewWindowIterator(series, 3)
	require.NoError(t, err)
	it, err := NewShuffledIterator(inner, 10, 7)
	require.NoError(t, err)

	first := collectTargets(t, it.Next)
	it.Reset()
	second := collectTargets(t, it.Next)
	assert.Equal(t, first, second)
}

// TestShuffledIteratorUnitBuffer tests the degenerate single-slot buffer.
func TestShuffledIteratorUnitBuffer(t *testing.T) {
	series := TimeAxis(10)
	inner, err := NewWindowIterator(series, 2)
	require.NoError(t, err)
	it, err := NewShuffledIterator(inner, 1, 1)
	require.NoError(t, err)

	// A one-slot buffer cannot reorder anything
	assert.Equal(t, series[2:], collectTargets(t, it.Next))

	_, err = NewShuffledIterator(inner, 0, 1)
	assert.Error(t, err)
}
