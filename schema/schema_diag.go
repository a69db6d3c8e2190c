package schema

// IndicatorSummary condenses one technical indicator computed over the
// generated series into a handful of reportable scalars.
type IndicatorSummary struct {
	Name   string  `json:"name"`
	Period int     `json:"period"`
	Count  int     `json:"count"` // Number of indicator values produced
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// DiagnosticsResult holds all indicator summaries for a series.
type DiagnosticsResult struct {
	Spec       SeriesSpec         `json:"spec"`
	Indicators []IndicatorSummary `json:"indicators"`
}
