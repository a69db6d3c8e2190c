package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ForecastMethod represents a forecasting strategy.
	ForecastMethod string

	// LossKind represents the training loss used by the window model.
	LossKind string

	// DatabaseBackend represents the database backend for the run store.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All forecast methods supported.
const (
	NaiveMethod         ForecastMethod = "naive"
	MovingAverageMethod ForecastMethod = "moving-average"
	DiffMethod          ForecastMethod = "diff-moving-average"
	DiffSmoothMethod    ForecastMethod = "diff-moving-average-smooth"
	ModelMethod         ForecastMethod = "model"
)

// All training losses supported.
const (
	HuberLoss LossKind = "huber" // default
	MSELoss   LossKind = "mse"
	MAELoss   LossKind = "mae"
)

// All run store backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// AllForecastMethods returns the list of methods in report order.
var AllForecastMethods = []ForecastMethod{
	NaiveMethod,
	MovingAverageMethod,
	DiffMethod,
	DiffSmoothMethod,
	ModelMethod,
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidForecastMethods lists all valid forecast methods.
var ValidForecastMethods = map[ForecastMethod]struct{}{
	NaiveMethod:         {},
	MovingAverageMethod: {},
	DiffMethod:          {},
	DiffSmoothMethod:    {},
	ModelMethod:         {},
}

// ValidLossKinds lists all valid training losses.
var ValidLossKinds = map[LossKind]struct{}{
	HuberLoss: {},
	MSELoss:   {},
	MAELoss:   {},
}

// ValidDatabaseBackends lists all valid run store backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
