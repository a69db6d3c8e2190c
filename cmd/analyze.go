package cmd

import (
	"github.com/spf13/cobra"
	"github.com/synthcast/synthcast/core"
	"github.com/synthcast/synthcast/internal/contract"
)

// analyzeCmd summarizes indicator diagnostics over the generated series.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute indicator diagnostics for the generated series",
	Long: `Generate the configured series and summarize standard technical
indicators (SMA, EMA, RSI) over it.

Useful as a quick sanity check that a generated series actually has the
shape you asked for: a strong trend shows up in the moving averages,
seasonality and noise show up in the RSI spread.

Examples:
  # Default 14-tick indicator periods
  synthcast analyze

  # Seasonal-length windows
  synthcast analyze --sma-period 365 --ema-period 365`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAnalyze(cfg); err != nil {
			contract.LogFatal("Cannot analyze series", err)
		}
	},
}
