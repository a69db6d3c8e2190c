package core

import (
	"fmt"
	"math/rand/v2"
)

// WindowPair is one supervised training example: Input is the first
// windowSize elements of a sliding windowSize+1 slice and Target is the
// same slice shifted by one step.
type WindowPair struct {
	Input  []float64
	Target []float64
}

// WindowIterator is a lazy, finite, restartable sequence of WindowPairs
// carved from a series with stride 1. Only full-length slices are
// emitted; a series shorter than windowSize+1 yields zero pairs.
type WindowIterator struct {
	series     []float64
	windowSize int
	pos        int
}

// NewWindowIterator builds an iterator over supervised window pairs.
func NewWindowIterator(series []float64, windowSize int) (*WindowIterator, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveWindow, windowSize)
	}
	return &WindowIterator{series: series, windowSize: windowSize}, nil
}

// Count returns the total number of pairs the iterator will emit.
func (it *WindowIterator) Count() int {
	n := len(it.series) - it.windowSize
	if n < 0 {
		return 0
	}
	return n
}

// Next returns the next pair in series order. The returned slices alias
// the underlying series and must not be mutated.
func (it *WindowIterator) Next() (WindowPair, bool) {
	if it.pos+it.windowSize >= len(it.series) {
		return WindowPair{}, false
	}

	slice := it.series[it.pos : it.pos+it.windowSize+1]
	it.pos++
	return WindowPair{
		Input:  slice[:it.windowSize],
		Target: slice[1:],
	}, true
}

// Reset rewinds the iterator to the first window.
func (it *WindowIterator) Reset() {
	it.pos = 0
}

// ShuffledIterator permutes windows (never individual samples) using a
// bounded buffer, mirroring streaming-dataset shuffle semantics: the
// buffer fills with the first bufferSize windows, then each emission
// picks a uniform random buffer slot and refills it from the source.
// A buffer at least as large as the window count degenerates to an exact
// uniform permutation. The permutation is driven by an explicit seed so
// epochs are reproducible; Reset restarts the same permutation.
type ShuffledIterator struct {
	inner      *WindowIterator
	bufferSize int
	seed       uint64

	rng    *rand.Rand
	buffer []WindowPair
	primed bool
}

// NewShuffledIterator wraps a window iterator with bounded-buffer
// shuffling. bufferSize must be positive.
func NewShuffledIterator(inner *WindowIterator, bufferSize int, seed uint64) (*ShuffledIterator, error) {
	if bufferSize <= 0 {
		return nil, fmt.Errorf("shuffle buffer size must be positive: got %d", bufferSize)
	}
	return &ShuffledIterator{
		inner:      inner,
		bufferSize: bufferSize,
		seed:       seed,
		rng:        rand.New(rand.NewPCG(seed, seed)),
	}, nil
}

// Count returns the total number of pairs the iterator will emit.
func (it *ShuffledIterator) Count() int {
	return it.inner.Count()
}

// Next returns the next pair in shuffled order.
func (it *ShuffledIterator) Next() (WindowPair, bool) {
	if !it.primed {
		it.fill()
		it.primed = true
	}

	if len(it.buffer) == 0 {
		return WindowPair{}, false
	}

	i := it.rng.IntN(len(it.buffer))
	pair := it.buffer[i]

	// Refill the vacated slot from the source, shrinking once drained.
	if next, ok := it.inner.Next(); ok {
		it.buffer[i] = next
	} else {
		it.buffer[i] = it.buffer[len(it.buffer)-1]
		it.buffer = it.buffer[:len(it.buffer)-1]
	}
	return pair, true
}

// Reset restarts the iterator, replaying the identical shuffled order.
func (it *ShuffledIterator) Reset() {
	it.inner.Reset()
	it.rng = rand.New(rand.NewPCG(it.seed, it.seed))
	it.buffer = nil
	it.primed = false
}

func (it *ShuffledIterator) fill() {
	it.buffer = make([]WindowPair, 0, it.bufferSize)
	for len(it.buffer) < it.bufferSize {
		pair, ok := it.inner.Next()
		if !ok {
			break
		}
		it.buffer = append(it.buffer, pair)
	}
}
