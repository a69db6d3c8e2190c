// Package cmd defines the command-line interface for synthcast.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(baselinesCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(storeCmd)

	// Add the store subcommands to the parent store command
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeStatusCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("length", contract.DefaultLength, "Total number of ticks in the generated series")
	rootCmd.PersistentFlags().Float64("baseline", contract.DefaultBaseline, "Constant offset added to every tick")
	rootCmd.PersistentFlags().Float64("slope", contract.DefaultSlope, "Linear trend slope per tick")
	rootCmd.PersistentFlags().Int("period", contract.DefaultPeriod, "Seasonal cycle length in ticks")
	rootCmd.PersistentFlags().Float64("amplitude", contract.DefaultAmplitude, "Seasonal pattern amplitude")
	rootCmd.PersistentFlags().Float64("phase", 0, "Seasonal phase offset in ticks")
	rootCmd.PersistentFlags().Float64("noise", contract.DefaultNoiseLevel, "Gaussian noise level (standard deviation multiplier)")
	rootCmd.PersistentFlags().Uint64("seed", contract.DefaultSeed, "Seed for the noise generator and shuffling")
	rootCmd.PersistentFlags().Int("split", contract.DefaultSplitTime, "Train/validation boundary tick")
	rootCmd.PersistentFlags().StringP("methods", "m", schema.FormatMethods(schema.AllForecastMethods), "Comma-separated forecast methods for compare")
	rootCmd.PersistentFlags().Int("ma-window", contract.DefaultMAWindow, "Moving average window size")
	rootCmd.PersistentFlags().Int("diff-window", contract.DefaultDiffWindow, "Differenced moving average window size")
	rootCmd.PersistentFlags().Int("smooth-window", contract.DefaultSmoothWindow, "Centered smoothing window for the smoothed baseline")
	rootCmd.PersistentFlags().Int("model-window", contract.DefaultModelWindow, "Model lookback window size")
	rootCmd.PersistentFlags().Int("batch-size", contract.DefaultBatchSize, "Mini-batch size for training")
	rootCmd.PersistentFlags().Int("shuffle-buffer", contract.DefaultShuffleBuffer, "Shuffle buffer size for training windows")
	rootCmd.PersistentFlags().Int("epochs", contract.DefaultEpochs, "Number of training epochs")
	rootCmd.PersistentFlags().Float64("learning-rate", contract.DefaultLearningRate, "SGD learning rate")
	rootCmd.PersistentFlags().Float64("momentum", contract.DefaultMomentum, "SGD momentum in [0, 1)")
	rootCmd.PersistentFlags().String("loss", string(schema.HuberLoss), "Training loss: huber or mse or mae")
	rootCmd.PersistentFlags().Bool("lr-sweep", false, "Run a learning-rate sweep instead of a fixed-rate fit")
	rootCmd.PersistentFlags().Float64("sweep-start", contract.DefaultSweepStartLR, "Initial learning rate for the sweep schedule")
	rootCmd.PersistentFlags().Int("sma-period", contract.DefaultIndicatorPeriod, "Simple moving average period for analyze")
	rootCmd.PersistentFlags().Int("ema-period", contract.DefaultIndicatorPeriod, "Exponential moving average period for analyze")
	rootCmd.PersistentFlags().Int("rsi-period", contract.DefaultIndicatorPeriod, "Relative strength index period for analyze")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().StringP("output", "o", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("store-backend", string(schema.SQLiteBackend), "Run store backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("store-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Recompute the run even when a stored result exists")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of storeMigrateCmd to Viper
	storeMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(storeMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding store migrate flags", err)
	}
}
