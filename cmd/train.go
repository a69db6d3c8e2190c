package cmd

import (
	"github.com/spf13/cobra"
	"github.com/synthcast/synthcast/core"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

// trainCmd fits the window model and scores it against the naive baseline.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the autoregressive window model",
	Long: `Train a linear window model with mini-batch SGD and momentum, then
forecast the validation segment one step ahead and report MAE/MSE next
to the naive baseline.

With --lr-sweep the fixed learning rate is replaced by an exponential
schedule and the per-epoch loss curve is reported instead, which helps
pick a stable learning rate before a real fit.

Examples:
  # Fit with the default hyperparameters
  synthcast train

  # Longer fit with an MSE objective
  synthcast train --epochs 50 --loss mse

  # Find a workable learning rate first
  synthcast train --lr-sweep --epochs 100`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.LRSweep {
			if err := core.ExecuteSweep(cfg); err != nil {
				contract.LogFatal("Cannot run learning-rate sweep", err)
			}
			return
		}

		cfg.Methods = []schema.ForecastMethod{
			schema.NaiveMethod,
			schema.ModelMethod,
		}
		if err := core.ExecuteForecastRun(cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot train model", err)
		}
	},
}
