package iocache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/synthcast/synthcast/internal/parquet"
	"github.com/synthcast/synthcast/schema"
)

// ExecuteRunExport exports all stored run records to a Parquet file.
// Each stored run is flattened into one record per evaluated method.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run storage is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run store status: %w", err)
	}

	if status.TotalEntries == 0 {
		return errors.New("no stored runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total stored runs: %d\n", status.TotalEntries)

	// Retrieve all stored runs
	entries, err := store.GetAll()
	if err != nil {
		return fmt.Errorf("failed to retrieve stored runs: %w", err)
	}

	// Flatten payloads into per-method records, skipping undecodable entries
	var records []schema.RunRecord
	for _, entry := range entries {
		var run schema.RunResult
		if err := json.Unmarshal(entry.Value, &run); err != nil {
			fmt.Printf("Skipping undecodable run %s: %v\n", entry.Key, err)
			continue
		}
		records = append(records, schema.FlattenRun(entry.Key, time.Unix(entry.Timestamp, 0), run)...)
	}

	if len(records) == 0 {
		return errors.New("no decodable run records found to export")
	}

	// Convert and write to Parquet
	parquetRecords := parquet.ConvertRunRecords(records)
	if err := parquet.WriteRunRecordsParquet(parquetRecords, outputFile); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	fmt.Printf("Exported %d run records to: %s\n", len(parquetRecords), outputFile)

	return nil
}
