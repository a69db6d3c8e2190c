package schema

import "time"

// RunStoreStatus reports connection and size information for the run store.
type RunStoreStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int64     `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// StoredRun is one raw run store entry: the payload bytes plus the
// metadata columns they were stored with.
type StoredRun struct {
	Key       string `json:"key"`
	Value     []byte `json:"value"`
	Version   int    `json:"version"`
	Timestamp int64  `json:"timestamp"`
}

// RunRecord is a flattened view of a stored run, one row per evaluated
// method. Used for the export command and Parquet conversion.
type RunRecord struct {
	RunKey     string         `json:"run_key"`
	CreatedAt  time.Time      `json:"created_at"`
	Method     ForecastMethod `json:"method"`
	MAE        float64        `json:"mae"`
	MSE        float64        `json:"mse"`
	Skill      float64        `json:"skill"`
	SplitTime  int            `json:"split_time"`
	Seed       uint64         `json:"seed"`
	NoiseLevel float64        `json:"noise_level"`
}

// FlattenRun converts a RunResult into one RunRecord per evaluation.
func FlattenRun(key string, createdAt time.Time, run RunResult) []RunRecord {
	records := make([]RunRecord, len(run.Evaluations))
	for i, ev := range run.Evaluations {
		records[i] = RunRecord{
			RunKey:     key,
			CreatedAt:  createdAt,
			Method:     ev.Method,
			MAE:        ev.MAE,
			MSE:        ev.MSE,
			Skill:      ev.Skill,
			SplitTime:  run.SplitTime,
			Seed:       run.Spec.Seed,
			NoiseLevel: run.Spec.NoiseLevel,
		}
	}
	return records
}
