package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

// WriteDiagnostics outputs indicator diagnostics, dispatching based on the output format configured.
func WriteDiagnostics(cfg *contract.Config, result schema.DiagnosticsResult) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForDiag(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut, schema.ParquetOut:
		// A few summary rows do not warrant a Parquet file.
		if err := printCSVResultsForDiag(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printDiagTable(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing diagnostics table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForDiag handles opening the file and calling the JSON writer.
func printJSONResultsForDiag(result schema.DiagnosticsResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "Wrote JSON diagnostics")
}

// printCSVResultsForDiag handles opening the file and calling the CSV writer.
func printCSVResultsForDiag(result schema.DiagnosticsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForDiag(csvWriter, result, fmtFloat)
	}, "Wrote CSV diagnostics")
}

// printDiagTable prints the indicator summaries in a table.
func printDiagTable(result schema.DiagnosticsResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Indicator", "Period", "Points", "First", "Last", "Min", "Max", "Mean"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, ind := range result.Indicators {
		row := []string{
			ind.Name,
			fmt.Sprintf("%d", ind.Period),
			fmt.Sprintf("%d", ind.Count),
			fmtFloat(ind.First),
			fmtFloat(ind.Last),
			fmtFloat(ind.Min),
			fmtFloat(ind.Max),
			fmtFloat(ind.Mean),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Diagnostics for series of %d ticks (seed=%d)\n", result.Spec.Length, result.Spec.Seed)
	return nil
}

// writeCSVResultsForDiag writes the indicator summaries to a CSV writer.
func writeCSVResultsForDiag(w *csv.Writer, result schema.DiagnosticsResult, fmtFloat func(float64) string) error {
	header := []string{
		"indicator",
		"period",
		"points",
		"first",
		"last",
		"min",
		"max",
		"mean",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, ind := range result.Indicators {
		row := []string{
			ind.Name,
			fmt.Sprintf("%d", ind.Period),
			fmt.Sprintf("%d", ind.Count),
			fmtFloat(ind.First),
			fmtFloat(ind.Last),
			fmtFloat(ind.Min),
			fmtFloat(ind.Max),
			fmtFloat(ind.Mean),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
