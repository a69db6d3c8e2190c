package cmd

import (
	"github.com/spf13/cobra"
	"github.com/synthcast/synthcast/core"
	"github.com/synthcast/synthcast/internal/contract"
)

// compareCmd evaluates every requested method in one run.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare forecast methods side by side",
	Long: `Run every forecast method, including the trained model, over the same
generated series and report their validation metrics in one table.

The method list defaults to everything and can be narrowed with
--methods. Skill is always measured against the naive baseline even
when naive itself is excluded from the list.

Examples:
  # Full shoot-out with defaults
  synthcast compare

  # Only the smoothed baseline against the model
  synthcast compare --methods diff-moving-average-smooth,model

  # Same comparison on a noisier series
  synthcast compare --noise 20 --seed 1234`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteForecastRun(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot compare methods", err)
		}
	},
}
