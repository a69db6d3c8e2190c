package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
	"gonum.org/v1/gonum/floats"
)

// WriteHistory outputs per-epoch training history, dispatching based on the output format configured.
// Used by the learning-rate sweep, where the loss-vs-rate curve is the whole point.
func WriteHistory(cfg *contract.Config, history *schema.TrainHistory) error {
	// Create formatters using helper
	fmtFloat, _ := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONResultsForHistory(history, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut, schema.ParquetOut:
		// Parquet adds nothing over CSV for a handful of epochs.
		if err := printCSVResultsForHistory(history, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		if err := printHistoryTable(history, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing history table output: %w", err)
		}
	}
	return nil
}

// printJSONResultsForHistory handles opening the file and calling the JSON writer.
func printJSONResultsForHistory(history *schema.TrainHistory, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, history)
	}, "Wrote JSON training history")
}

// printCSVResultsForHistory handles opening the file and calling the CSV writer.
func printCSVResultsForHistory(history *schema.TrainHistory, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()
		return writeCSVResultsForHistory(csvWriter, history, fmtFloat)
	}, "Wrote CSV training history")
}

// printHistoryTable prints the per-epoch history with an inline loss bar
// scaled to the terminal width.
func printHistoryTable(history *schema.TrainHistory, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Epoch", "LR", "Loss", "MAE", "Curve"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Reserve room for the numeric columns, keep the rest for the bar.
	barWidth := GetTerminalWidth(cfg) - 50
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}

	var maxLoss float64
	if len(history.Loss) > 0 {
		maxLoss = floats.Max(history.Loss)
	}

	var data [][]string
	for i, loss := range history.Loss {
		bar := ""
		if maxLoss > 0 {
			bar = strings.Repeat("#", int(loss/maxLoss*float64(barWidth)))
		}
		row := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.2e", history.LR[i]),
			fmtFloat(loss),
			fmtFloat(history.MAE[i]),
			bar,
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Training history over %d epochs (loss=%s)\n", len(history.Loss), cfg.Loss)
	return nil
}
