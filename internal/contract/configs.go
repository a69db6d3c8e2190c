package contract

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/synthcast/synthcast/schema"
)

// Default values for configuration. The series and trainer defaults
// reproduce the reference scenario: four years of daily ticks split at
// tick 1000.
const (
	DefaultLength     = 4*365 + 1
	DefaultBaseline   = 10.0
	DefaultSlope      = 0.05
	DefaultPeriod     = 365
	DefaultAmplitude  = 40.0
	DefaultNoiseLevel = 5.0
	DefaultSeed       = 42
	DefaultSplitTime  = 1000

	DefaultMAWindow     = 30
	DefaultDiffWindow   = 50
	DefaultSmoothWindow = 10

	DefaultModelWindow   = 20
	DefaultBatchSize     = 128
	DefaultShuffleBuffer = 1000
	DefaultEpochs        = 10
	DefaultLearningRate  = 1e-5
	DefaultMomentum      = 0.9
	DefaultSweepStartLR  = 1e-8

	DefaultIndicatorPeriod = 14

	DefaultPrecision = 3
	MaxPrecision     = 6
)

// RunPayloadVersion is bumped whenever the stored run payload shape
// changes, invalidating older entries.
const RunPayloadVersion = 1

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for a forecasting run.
// This struct remains the "final, validated" config.
type Config struct {
	Spec      schema.SeriesSpec
	SplitTime int

	Methods      []schema.ForecastMethod
	MAWindow     int
	DiffWindow   int
	SmoothWindow int

	ModelWindow   int
	BatchSize     int
	ShuffleBuffer int
	Epochs        int
	LearningRate  float64
	Momentum      float64
	Loss          schema.LossKind
	LRSweep       bool
	SweepStartLR  float64

	SMAPeriod int
	EMAPeriod int
	RSIPeriod int

	Precision  int
	Output     schema.OutputMode
	OutputFile string
	Width      int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext
	NoCache        bool

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Length         int     `mapstructure:"length"`
	Baseline       float64 `mapstructure:"baseline"`
	Slope          float64 `mapstructure:"slope"`
	Period         int     `mapstructure:"period"`
	Amplitude      float64 `mapstructure:"amplitude"`
	Phase          float64 `mapstructure:"phase"`
	Noise          float64 `mapstructure:"noise"`
	Seed           uint64  `mapstructure:"seed"`
	Split          int     `mapstructure:"split"`
	Precision      int     `mapstructure:"precision"`
	Output         string  `mapstructure:"output"`
	OutputFile     string  `mapstructure:"output-file"`
	Width          int     `mapstructure:"width"`
	Color          string  `mapstructure:"color"`
	StoreBackend   string  `mapstructure:"store-backend"`
	StoreDBConnect string  `mapstructure:"store-db-connect"`
	NoCache        bool    `mapstructure:"no-cache"`

	// --- Fields from baselinesCmd / compareCmd flags ---
	Methods      string `mapstructure:"methods"`
	MAWindow     int    `mapstructure:"ma-window"`
	DiffWindow   int    `mapstructure:"diff-window"`
	SmoothWindow int    `mapstructure:"smooth-window"`

	// --- Fields from trainCmd flags ---
	ModelWindow   int     `mapstructure:"model-window"`
	BatchSize     int     `mapstructure:"batch-size"`
	ShuffleBuffer int     `mapstructure:"shuffle-buffer"`
	Epochs        int     `mapstructure:"epochs"`
	LearningRate  float64 `mapstructure:"learning-rate"`
	Momentum      float64 `mapstructure:"momentum"`
	Loss          string  `mapstructure:"loss"`
	LRSweep       bool    `mapstructure:"lr-sweep"`
	SweepStartLR  float64 `mapstructure:"sweep-start"`

	// --- Fields from analyzeCmd flags ---
	SMAPeriod int `mapstructure:"sma-period"`
	EMAPeriod int `mapstructure:"ema-period"`
	RSIPeriod int `mapstructure:"rsi-period"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Methods != nil {
		clone.Methods = make([]schema.ForecastMethod, len(c.Methods))
		copy(clone.Methods, c.Methods)
	}
	return &clone
}

// runHashInput is the canonical subset of Config that determines a run's
// numeric outcome. Output and storage settings are deliberately excluded:
// the same computation rendered differently is still the same run.
type runHashInput struct {
	Spec          schema.SeriesSpec       `json:"spec"`
	SplitTime     int                     `json:"split_time"`
	Methods       []schema.ForecastMethod `json:"methods"`
	MAWindow      int                     `json:"ma_window"`
	DiffWindow    int                     `json:"diff_window"`
	SmoothWindow  int                     `json:"smooth_window"`
	ModelWindow   int                     `json:"model_window"`
	BatchSize     int                     `json:"batch_size"`
	ShuffleBuffer int                     `json:"shuffle_buffer"`
	Epochs        int                     `json:"epochs"`
	LearningRate  float64                 `json:"learning_rate"`
	Momentum      float64                 `json:"momentum"`
	Loss          schema.LossKind         `json:"loss"`
}

// RunHash returns a stable hex digest identifying the run's computation,
// used as the run store key.
func (c *Config) RunHash() string {
	input := runHashInput{
		Spec:          c.Spec,
		SplitTime:     c.SplitTime,
		Methods:       c.Methods,
		MAWindow:      c.MAWindow,
		DiffWindow:    c.DiffWindow,
		SmoothWindow:  c.SmoothWindow,
		ModelWindow:   c.ModelWindow,
		BatchSize:     c.BatchSize,
		ShuffleBuffer: c.ShuffleBuffer,
		Epochs:        c.Epochs,
		LearningRate:  c.LearningRate,
		Momentum:      c.Momentum,
		Loss:          c.Loss,
	}

	// Struct field order is fixed, so the JSON encoding is canonical.
	payload, err := json.Marshal(input)
	if err != nil {
		// Marshaling a flat value struct cannot fail in practice.
		panic(fmt.Sprintf("run hash encoding: %v", err))
	}

	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:])
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSeriesInputs(cfg, input); err != nil {
		return err
	}
	if err := validateForecastInputs(cfg, input); err != nil {
		return err
	}
	if err := validateModelInputs(cfg, input); err != nil {
		return err
	}
	if err := validateDiagInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSeriesInputs processes the generator and split parameters.
func validateSeriesInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Length <= 0 {
		return fmt.Errorf("length must be greater than 0 (received %d)", input.Length)
	}
	if input.Period <= 0 {
		return fmt.Errorf("period must be greater than 0 (received %d)", input.Period)
	}
	if input.Amplitude < 0 {
		return fmt.Errorf("amplitude cannot be negative (received %v)", input.Amplitude)
	}
	if input.Noise < 0 {
		return fmt.Errorf("noise cannot be negative (received %v)", input.Noise)
	}
	if input.Split <= 0 || input.Split >= input.Length {
		return fmt.Errorf("split must be inside (0, length): split=%d, length=%d", input.Split, input.Length)
	}

	cfg.Spec = schema.SeriesSpec{
		Length:     input.Length,
		Baseline:   input.Baseline,
		Slope:      input.Slope,
		Period:     input.Period,
		Amplitude:  input.Amplitude,
		Phase:      input.Phase,
		NoiseLevel: input.Noise,
		Seed:       input.Seed,
	}
	cfg.SplitTime = input.Split
	return nil
}

// validateForecastInputs processes the method list and baseline windows.
func validateForecastInputs(cfg *Config, input *ConfigRawInput) error {
	methods, err := schema.ParseMethods(input.Methods)
	if err != nil {
		return err
	}
	cfg.Methods = methods

	if input.MAWindow <= 0 {
		return fmt.Errorf("ma-window must be greater than 0 (received %d)", input.MAWindow)
	}
	if input.DiffWindow <= 0 {
		return fmt.Errorf("diff-window must be greater than 0 (received %d)", input.DiffWindow)
	}
	if input.SmoothWindow <= 0 {
		return fmt.Errorf("smooth-window must be greater than 0 (received %d)", input.SmoothWindow)
	}
	cfg.MAWindow = input.MAWindow
	cfg.DiffWindow = input.DiffWindow
	cfg.SmoothWindow = input.SmoothWindow
	return nil
}

// validateModelInputs processes the trainer hyperparameters.
func validateModelInputs(cfg *Config, input *ConfigRawInput) error {
	if input.ModelWindow <= 0 {
		return fmt.Errorf("model-window must be greater than 0 (received %d)", input.ModelWindow)
	}
	if input.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0 (received %d)", input.BatchSize)
	}
	if input.ShuffleBuffer <= 0 {
		return fmt.Errorf("shuffle-buffer must be greater than 0 (received %d)", input.ShuffleBuffer)
	}
	if input.Epochs <= 0 {
		return fmt.Errorf("epochs must be greater than 0 (received %d)", input.Epochs)
	}
	if input.LearningRate <= 0 {
		return fmt.Errorf("learning-rate must be greater than 0 (received %v)", input.LearningRate)
	}
	if input.Momentum < 0 || input.Momentum >= 1 {
		return fmt.Errorf("momentum must be in [0, 1) (received %v)", input.Momentum)
	}

	cfg.Loss = schema.LossKind(strings.ToLower(input.Loss))
	if _, ok := schema.ValidLossKinds[cfg.Loss]; !ok {
		return fmt.Errorf("invalid loss '%s'. must be huber, mse, mae", input.Loss)
	}

	cfg.LRSweep = input.LRSweep
	if input.SweepStartLR <= 0 {
		return fmt.Errorf("sweep-start must be greater than 0 (received %v)", input.SweepStartLR)
	}

	cfg.ModelWindow = input.ModelWindow
	cfg.BatchSize = input.BatchSize
	cfg.ShuffleBuffer = input.ShuffleBuffer
	cfg.Epochs = input.Epochs
	cfg.LearningRate = input.LearningRate
	cfg.Momentum = input.Momentum
	cfg.SweepStartLR = input.SweepStartLR
	return nil
}

// validateDiagInputs processes the indicator periods.
func validateDiagInputs(cfg *Config, input *ConfigRawInput) error {
	if input.SMAPeriod <= 0 || input.EMAPeriod <= 0 || input.RSIPeriod <= 0 {
		return fmt.Errorf("indicator periods must be greater than 0 (received sma=%d, ema=%d, rsi=%d)",
			input.SMAPeriod, input.EMAPeriod, input.RSIPeriod)
	}
	cfg.SMAPeriod = input.SMAPeriod
	cfg.EMAPeriod = input.EMAPeriod
	cfg.RSIPeriod = input.RSIPeriod
	return nil
}

// validateOutputInputs processes precision, output mode, and console settings.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	return nil
}

// validateBackendConfigs validates the run store backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}
	cfg.NoCache = input.NoCache
	return nil
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}
