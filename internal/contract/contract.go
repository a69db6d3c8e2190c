// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/synthcast/synthcast/schema"
)

// CacheManager defines the interface for managing run stores.
// This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for cached run storage.
// This allows mocking the store for testing.
type RunStore interface {
	// Get returns the stored payload, payload version, and creation
	// timestamp for a run key.
	Get(key string) ([]byte, int, int64, error)

	// Set stores a payload under a run key.
	Set(key string, value []byte, version int, timestamp int64) error

	// GetAll returns every stored run entry, used by the export command.
	GetAll() ([]schema.StoredRun, error)

	// GetStatus returns status information about the run store.
	GetStatus() (schema.RunStoreStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// Trainer defines the model collaborator used by the compare and train
// flows. The shipped implementation is the in-process window model, but
// the orchestration only depends on this contract.
type Trainer interface {
	// Train fits a model to the training segment and returns its
	// per-epoch history.
	Train(train []float64) (*schema.TrainHistory, error)

	// Forecast predicts every validation tick of the series, one value
	// per tick from splitTime to the end.
	Forecast(series []float64, splitTime int) ([]float64, error)
}
