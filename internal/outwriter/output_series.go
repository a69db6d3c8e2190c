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
	"gonum.org/v1/gonum/floats"
)

// previewEdge is how many leading and trailing ticks the text preview shows.
const previewEdge = 5

// WriteSeries outputs a generated series, dispatching based on the output format configured.
func WriteSeries(cfg *contract.Config, series schema.Series) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForSeries(series, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVResultsForSeries(series, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := printParquetResultsForSeries(series, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		// Default to human-readable preview table
		if err := printSeriesTable(series, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForSeries handles opening the file and calling the JSON writer.
func printJSONResultsForSeries(series schema.Series, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSONResultsForSeries(w, series)
	}, "Wrote JSON series")
}

// printCSVResultsForSeries handles opening the file and calling the CSV writer.
func printCSVResultsForSeries(series schema.Series, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForSeries(csvWriter, series, fmtFloat)
	}, "Wrote CSV series")
}

// printParquetResultsForSeries exports series points as Parquet records.
func printParquetResultsForSeries(series schema.Series, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for parquet output")
	}
	points := parquet.ConvertSeriesPoints(series)
	if err := parquet.WriteSeriesPointsParquet(points, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %d series points to %s\n", len(points), cfg.OutputFile)
	return nil
}

// printSeriesTable prints summary statistics plus a head/tail preview.
// The full series goes to CSV/JSON/Parquet; the table is for eyeballing.
func printSeriesTable(series schema.Series, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Tick", "Value"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	appendRow := func(i int) {
		data = append(data, []string{
			fmt.Sprintf("%.0f", series.Time[i]),
			fmtFloat(series.Values[i]),
		})
	}

	n := series.Len()
	if n <= 2*previewEdge {
		for i := range series.Values {
			appendRow(i)
		}
	} else {
		for i := 0; i < previewEdge; i++ {
			appendRow(i)
		}
		data = append(data, []string{"...", "..."})
		for i := n - previewEdge; i < n; i++ {
			appendRow(i)
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Series of %d ticks: min=%s max=%s mean=%s\n",
		n,
		fmtFloat(floats.Min(series.Values)),
		fmtFloat(floats.Max(series.Values)),
		fmtFloat(floats.Sum(series.Values)/float64(n)))
	return nil
}
