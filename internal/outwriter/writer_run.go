package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

// writeJSONResultsForRun marshals the schema.RunResult to JSON and writes it.
func writeJSONResultsForRun(w io.Writer, run schema.RunResult) error {
	return writeJSON(w, run)
}

// writeCSVResultsForRun writes the schema.RunResult evaluations to a CSV writer.
func writeCSVResultsForRun(w *csv.Writer, run schema.RunResult, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"method",
		"mae",
		"mse",
		"points",
		"skill",
		"label",
		"split",
		"seed",
		"cached",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for _, e := range run.Evaluations {
		row := []string{
			string(e.Method),
			fmtFloat(e.MAE),
			fmtFloat(e.MSE),
			fmt.Sprintf("%d", e.Count),
			fmtFloat(e.Skill),
			contract.GetPlainLabel(e.Skill),
			fmt.Sprintf("%d", run.SplitTime),
			fmt.Sprintf("%d", run.Spec.Seed),
			fmt.Sprintf("%t", run.Cached),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
