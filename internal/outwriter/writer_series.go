package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/synthcast/synthcast/schema"
)

// writeJSONResultsForSeries marshals the schema.Series to JSON and writes it.
func writeJSONResultsForSeries(w io.Writer, series schema.Series) error {
	return writeJSON(w, series)
}

// writeCSVResultsForSeries writes the full series to a CSV writer, one row per tick.
func writeCSVResultsForSeries(w *csv.Writer, series schema.Series, fmtFloat func(float64) string) error {
	// 1. Write Header Row
	header := []string{
		"tick",
		"value",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	// 2. Write Data Rows
	for i, v := range series.Values {
		row := []string{
			fmt.Sprintf("%.0f", series.Time[i]),
			fmtFloat(v),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
