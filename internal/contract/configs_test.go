package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/synthcast/synthcast/schema"
)

// validRawInput returns raw inputs matching the documented defaults.
func validRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		Length:         DefaultLength,
		Baseline:       DefaultBaseline,
		Slope:          DefaultSlope,
		Period:         DefaultPeriod,
		Amplitude:      DefaultAmplitude,
		Noise:          DefaultNoiseLevel,
		Seed:           DefaultSeed,
		Split:          DefaultSplitTime,
		Methods:        schema.FormatMethods(schema.AllForecastMethods),
		MAWindow:       DefaultMAWindow,
		DiffWindow:     DefaultDiffWindow,
		SmoothWindow:   DefaultSmoothWindow,
		ModelWindow:    DefaultModelWindow,
		BatchSize:      DefaultBatchSize,
		ShuffleBuffer:  DefaultShuffleBuffer,
		Epochs:         DefaultEpochs,
		LearningRate:   DefaultLearningRate,
		Momentum:       DefaultMomentum,
		Loss:           string(schema.HuberLoss),
		SweepStartLR:   DefaultSweepStartLR,
		SMAPeriod:      DefaultIndicatorPeriod,
		EMAPeriod:      DefaultIndicatorPeriod,
		RSIPeriod:      DefaultIndicatorPeriod,
		Precision:      DefaultPrecision,
		Output:         string(schema.TextOut),
		Color:          "yes",
		StoreBackend:   string(schema.SQLiteBackend),
		StoreDBConnect: "",
	}
}

// TestProcessAndValidate tests that defaults produce a complete config.
func TestProcessAndValidate(t *testing.T) {
	cfg := &Config{}
	err := ProcessAndValidate(cfg, validRawInput())
	require.NoError(t, err)

	assert.Equal(t, 1461, cfg.Spec.Length)
	assert.Equal(t, uint64(42), cfg.Spec.Seed)
	assert.Equal(t, 1000, cfg.SplitTime)
	assert.Equal(t, schema.AllForecastMethods, cfg.Methods)
	assert.Equal(t, 30, cfg.MAWindow)
	assert.Equal(t, schema.HuberLoss, cfg.Loss)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
	assert.True(t, cfg.UseColors)
	assert.False(t, cfg.NoCache)
}

// TestProcessAndValidateErrors tests rejection of out-of-range inputs.
func TestProcessAndValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{
			name:   "zero length",
			mutate: func(in *ConfigRawInput) { in.Length = 0 },
		},
		{
			name:   "zero period",
			mutate: func(in *ConfigRawInput) { in.Period = 0 },
		},
		{
			name:   "negative amplitude",
			mutate: func(in *ConfigRawInput) { in.Amplitude = -1 },
		},
		{
			name:   "negative noise",
			mutate: func(in *ConfigRawInput) { in.Noise = -1 },
		},
		{
			name:   "split at zero",
			mutate: func(in *ConfigRawInput) { in.Split = 0 },
		},
		{
			name:   "split beyond length",
			mutate: func(in *ConfigRawInput) { in.Split = in.Length },
		},
		{
			name:   "unknown method",
			mutate: func(in *ConfigRawInput) { in.Methods = "naive,prophet" },
		},
		{
			name:   "zero ma window",
			mutate: func(in *ConfigRawInput) { in.MAWindow = 0 },
		},
		{
			name:   "zero diff window",
			mutate: func(in *ConfigRawInput) { in.DiffWindow = 0 },
		},
		{
			name:   "zero model window",
			mutate: func(in *ConfigRawInput) { in.ModelWindow = 0 },
		},
		{
			name:   "zero batch size",
			mutate: func(in *ConfigRawInput) { in.BatchSize = 0 },
		},
		{
			name:   "zero epochs",
			mutate: func(in *ConfigRawInput) { in.Epochs = 0 },
		},
		{
			name:   "non-positive learning rate",
			mutate: func(in *ConfigRawInput) { in.LearningRate = 0 },
		},
		{
			name:   "momentum of one",
			mutate: func(in *ConfigRawInput) { in.Momentum = 1 },
		},
		{
			name:   "unknown loss",
			mutate: func(in *ConfigRawInput) { in.Loss = "hinge" },
		},
		{
			name:   "non-positive sweep start",
			mutate: func(in *ConfigRawInput) { in.SweepStartLR = 0 },
		},
		{
			name:   "zero indicator period",
			mutate: func(in *ConfigRawInput) { in.RSIPeriod = 0 },
		},
		{
			name:   "precision too small",
			mutate: func(in *ConfigRawInput) { in.Precision = 0 },
		},
		{
			name:   "precision too large",
			mutate: func(in *ConfigRawInput) { in.Precision = MaxPrecision + 1 },
		},
		{
			name:   "unknown output mode",
			mutate: func(in *ConfigRawInput) { in.Output = "xml" },
		},
		{
			name:   "bad color flag",
			mutate: func(in *ConfigRawInput) { in.Color = "maybe" },
		},
		{
			name:   "unknown store backend",
			mutate: func(in *ConfigRawInput) { in.StoreBackend = "oracle" },
		},
		{
			name:   "mysql without connection string",
			mutate: func(in *ConfigRawInput) { in.StoreBackend = "mysql" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validRawInput()
			tt.mutate(in)
			err := ProcessAndValidate(&Config{}, in)
			assert.Error(t, err)
		})
	}
}

// TestProcessAndValidateNormalization tests case folding of enum inputs.
func TestProcessAndValidateNormalization(t *testing.T) {
	in := validRawInput()
	in.Loss = "MSE"
	in.Output = "JSON"
	in.StoreBackend = "SQLite"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, in))
	assert.Equal(t, schema.MSELoss, cfg.Loss)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, schema.SQLiteBackend, cfg.StoreBackend)
}

// TestValidateDatabaseConnectionString tests the backend-specific checks.
func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))

	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/runs"))

	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 dbname=runs"))
}

// TestRunHash tests the stability and sensitivity of run keys.
func TestRunHash(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	first := cfg.RunHash()
	assert.Len(t, first, 64)
	assert.Equal(t, first, cfg.RunHash(), "hashing is deterministic")

	// Outcome-relevant fields change the key
	other := cfg.Clone()
	other.Spec.Seed = 7
	assert.NotEqual(t, first, other.RunHash())

	other = cfg.Clone()
	other.Epochs++
	assert.NotEqual(t, first, other.RunHash())

	// Presentation and storage settings do not
	other = cfg.Clone()
	other.Output = schema.JSONOut
	other.OutputFile = "out.json"
	other.Precision = 6
	other.StoreBackend = schema.NoneBackend
	other.NoCache = true
	assert.Equal(t, first, other.RunHash())
}

// TestClone tests deep copying of the method list.
func TestClone(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, validRawInput()))

	clone := cfg.Clone()
	require.Equal(t, cfg.Methods, clone.Methods)

	clone.Methods[0] = schema.ModelMethod
	assert.Equal(t, schema.NaiveMethod, cfg.Methods[0], "clone must not alias the original")
}

// TestProcessProfilingConfig tests profiling flag handling.
func TestProcessProfilingConfig(t *testing.T) {
	profile := &ProfileConfig{}
	require.NoError(t, ProcessProfilingConfig(profile, ""))
	assert.False(t, profile.Enabled)

	require.NoError(t, ProcessProfilingConfig(profile, "perf"))
	assert.True(t, profile.Enabled)
	assert.Equal(t, "perf", profile.Prefix)
}
