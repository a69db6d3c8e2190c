package cmd

import (
	"github.com/spf13/cobra"
	"github.com/synthcast/synthcast/core"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

// baselinesCmd runs the classical forecasters only.
var baselinesCmd = &cobra.Command{
	Use:   "baselines",
	Short: "Evaluate the classical baseline forecasters",
	Long: `Run the naive, moving average, and differenced moving average
forecasters over the validation segment and report MAE/MSE for each.

Baselines are the yardstick for everything else: a trained model that
cannot beat the naive forecast is not worth shipping. Skill scores in
the report measure exactly that margin.

Examples:
  # Evaluate all baselines with the default windows
  synthcast baselines

  # Wider smoothing windows
  synthcast baselines --ma-window 60 --diff-window 90

  # Machine-readable report
  synthcast baselines --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		cfg.Methods = []schema.ForecastMethod{
			schema.NaiveMethod,
			schema.MovingAverageMethod,
			schema.DiffMethod,
			schema.DiffSmoothMethod,
		}
		if err := core.ExecuteForecastRun(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot run baselines", err)
		}
	},
}
