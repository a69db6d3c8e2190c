// Package schema holds the shared data model for synthcast: series
// specifications, forecasts, evaluations, and run records.
package schema

// SeriesSpec holds the generator parameters for a synthetic series.
// A spec plus the seed fully determines the series, so two runs with
// equal specs produce identical values on every platform.
type SeriesSpec struct {
	Length     int     `json:"length"`      // Total number of ticks T
	Baseline   float64 `json:"baseline"`    // Constant offset added to every value
	Slope      float64 `json:"slope"`       // Linear trend per tick
	Period     int     `json:"period"`      // Seasonality period in ticks
	Amplitude  float64 `json:"amplitude"`   // Seasonal amplitude
	Phase      float64 `json:"phase"`       // Seasonal phase shift in ticks
	NoiseLevel float64 `json:"noise_level"` // Standard deviation multiplier for noise
	Seed       uint64  `json:"seed"`        // PRNG seed for the noise component
}

// Series is an immutable time axis paired with one value per tick.
type Series struct {
	Time   []float64 `json:"time"`
	Values []float64 `json:"values"`
}

// Len returns the number of ticks in the series.
func (s Series) Len() int {
	return len(s.Values)
}

// SplitSeries holds the train prefix and validation suffix of a series.
type SplitSeries struct {
	SplitTime int    `json:"split_time"`
	Train     Series `json:"train"`
	Valid     Series `json:"valid"`
}

// Forecast is an ordered sequence of predicted values aligned with the
// validation segment: Values[i] predicts the series at tick Start+i.
type Forecast struct {
	Method ForecastMethod `json:"method"`
	Start  int            `json:"start"`
	Values []float64      `json:"values"`
}

// Evaluation holds the error metrics for one forecast method.
type Evaluation struct {
	Method ForecastMethod `json:"method"`
	MAE    float64        `json:"mae"`
	MSE    float64        `json:"mse"`
	Count  int            `json:"count"` // Number of compared points
	Skill  float64        `json:"skill"` // 1 - MAE/naiveMAE; 0 for naive itself
}

// TrainHistory records per-epoch training progress of the window model.
type TrainHistory struct {
	Loss []float64 `json:"loss"`
	MAE  []float64 `json:"mae"`
	LR   []float64 `json:"lr"`
}

// RunResult is the full outcome of a forecasting run: the configuration
// that produced it and the evaluation of every requested method.
type RunResult struct {
	Spec        SeriesSpec    `json:"spec"`
	SplitTime   int           `json:"split_time"`
	Evaluations []Evaluation  `json:"evaluations"`
	History     *TrainHistory `json:"history,omitempty"`
	Cached      bool          `json:"cached"`
}
