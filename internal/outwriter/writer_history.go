package outwriter

import (
	"encoding/csv"
	"fmt"

	"github.com/synthcast/synthcast/schema"
)

// writeCSVResultsForHistory writes the per-epoch history to a CSV writer.
func writeCSVResultsForHistory(w *csv.Writer, history *schema.TrainHistory, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"epoch",
		"learning_rate",
		"loss",
		"mae",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, loss := range history.Loss {
		row := []string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%.6e", history.LR[i]),
			fmtFloat(loss),
			fmtFloat(history.MAE[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
