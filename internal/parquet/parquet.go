// Package parquet provides data structures and functions for exporting
// series and run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/synthcast/synthcast/schema"
)

// SeriesPoint represents a single tick of a generated series.
type SeriesPoint struct {
	// Tick is the position on the discrete time axis
	Tick int64 `parquet:"tick,snappy"`

	// Value is the series value at this tick
	Value float64 `parquet:"value,snappy"`
}

// RunMetric represents the evaluation of one forecast method in a run.
type RunMetric struct {
	// Method is the forecast method name
	Method string `parquet:"method,snappy"`

	// MAE is the mean absolute error over the validation segment
	MAE float64 `parquet:"mae,snappy"`

	// MSE is the mean squared error over the validation segment
	MSE float64 `parquet:"mse,snappy"`

	// Points is the number of compared validation points
	Points int32 `parquet:"points,snappy"`

	// Skill is the improvement over the naive baseline
	Skill float64 `parquet:"skill,snappy"`

	// SplitTime is the train/validation boundary tick
	SplitTime int32 `parquet:"split_time,snappy"`

	// Seed is the generator seed of the run
	Seed int64 `parquet:"seed,snappy"`

	// Cached reports whether the run was served from the run store
	Cached bool `parquet:"cached,snappy"`
}

// RunRecord represents one flattened stored-run row for bulk export.
type RunRecord struct {
	// RunKey is the configuration hash identifying the run
	RunKey string `parquet:"run_key,snappy"`

	// CreatedAt is when the run was stored (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	// Method is the forecast method name
	Method string `parquet:"method,snappy"`

	// MAE is the mean absolute error over the validation segment
	MAE float64 `parquet:"mae,snappy"`

	// MSE is the mean squared error over the validation segment
	MSE float64 `parquet:"mse,snappy"`

	// Skill is the improvement over the naive baseline
	Skill float64 `parquet:"skill,snappy"`

	// SplitTime is the train/validation boundary tick
	SplitTime int32 `parquet:"split_time,snappy"`

	// Seed is the generator seed of the run
	Seed int64 `parquet:"seed,snappy"`

	// NoiseLevel is the generator noise level of the run
	NoiseLevel float64 `parquet:"noise_level,snappy"`
}

// writeParquet writes a slice of records to a Parquet file using struct
// schema inference from the record type's tags.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteSeriesPointsParquet writes a slice of SeriesPoint structs to a Parquet file.
func WriteSeriesPointsParquet(data []SeriesPoint, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRunMetricsParquet writes a slice of RunMetric structs to a Parquet file.
func WriteRunMetricsParquet(data []RunMetric, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteRunRecordsParquet writes a slice of RunRecord structs to a Parquet file.
func WriteRunRecordsParquet(data []RunRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertSeriesPoints converts a schema.Series to SeriesPoint records for Parquet export.
func ConvertSeriesPoints(series schema.Series) []SeriesPoint {
	result := make([]SeriesPoint, series.Len())
	for i, v := range series.Values {
		result[i] = SeriesPoint{
			Tick:  int64(series.Time[i]),
			Value: v,
		}
	}
	return result
}

// ConvertRunMetrics converts a schema.RunResult to RunMetric records for Parquet export.
func ConvertRunMetrics(run schema.RunResult) []RunMetric {
	result := make([]RunMetric, len(run.Evaluations))
	for i, e := range run.Evaluations {
		result[i] = RunMetric{
			Method:    string(e.Method),
			MAE:       e.MAE,
			MSE:       e.MSE,
			Points:    int32(e.Count),
			Skill:     e.Skill,
			SplitTime: int32(run.SplitTime),
			Seed:      int64(run.Spec.Seed),
			Cached:    run.Cached,
		}
	}
	return result
}

// ConvertRunRecords converts schema.RunRecord rows to RunRecord for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []RunRecord {
	result := make([]RunRecord, len(records))
	for i, r := range records {
		result[i] = RunRecord{
			RunKey:     r.RunKey,
			CreatedAt:  r.CreatedAt,
			Method:     string(r.Method),
			MAE:        r.MAE,
			MSE:        r.MSE,
			Skill:      r.Skill,
			SplitTime:  int32(r.SplitTime),
			Seed:       int64(r.Seed),
			NoiseLevel: r.NoiseLevel,
		}
	}
	return result
}
