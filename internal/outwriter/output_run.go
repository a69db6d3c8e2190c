package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/internal/parquet"
	"github.com/synthcast/synthcast/schema"
)

// WriteRun outputs a forecast run's evaluations, dispatching based on the output format configured.
func WriteRun(cfg *contract.Config, run schema.RunResult) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForRun(run, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForRun(run, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForRun(run, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printRunTable(run, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing run table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForRun handles opening the file and calling the JSON writer.
func printJSONResultsForRun(run schema.RunResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForRun(w, run)
	}, "Wrote JSON run results")
}

// printCSVResultsForRun handles opening the file and calling the CSV writer.
func printCSVResultsForRun(run schema.RunResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForRun(csvWriter, run, fmtFloat)
	}, "Wrote CSV run results")
}

// printParquetResultsForRun exports per-method metrics as Parquet records.
func printParquetResultsForRun(run schema.RunResult, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	records := parquet.ConvertRunMetrics(run)
	if err := parquet.WriteRunMetricsParquet(records, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d metric records to %s\n", len(records), cfg.OutputFile)
	return nil
}

// printRunTable prints the per-method evaluations in a table.
func printRunTable(run schema.RunResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	// Use os.Stdout, consistent with existing table printing
	table := tablewriter.NewWriter(os.Stdout)

	// --- 1. Define Headers ---
	headers := []string{"Method", "MAE", "MSE", "Points", "Skill", "Label"}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var data [][]string
	for _, e := range run.Evaluations {
		label := contract.GetPlainLabel(e.Skill)
		if cfg.UseColors {
			label = contract.GetColorLabel(e.Skill)
		}
		row := []string{
			schema.MethodDisplayName(e.Method),
			fmtFloat(e.MAE),
			fmtFloat(e.MSE),
			fmt.Sprintf("%d", e.Count),
			fmtFloat(e.Skill),
			label,
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	source := "computed"
	if run.Cached {
		source = "cached"
	}
	fmt.Printf("Forecast run over %d validation points (split=%d, seed=%d, %s). Store backend: %s\n",
		run.Spec.Length-run.SplitTime, run.SplitTime, run.Spec.Seed, source, cfg.StoreBackend)
	return nil
}
