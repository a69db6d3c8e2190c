package core

import (
	"fmt"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/momentum"
	"github.com/cinar/indicator/v2/trend"
	"github.com/synthcast/synthcast/schema"
	"gonum.org/v1/gonum/floats"
)

// DiagConfig selects the indicator periods for series diagnostics.
type DiagConfig struct {
	SMAPeriod int
	EMAPeriod int
	RSIPeriod int
}

// RunDiagnostics computes technical-indicator summaries over a generated
// series: simple and exponential moving averages to expose trend and
// seasonality, and RSI to expose how mean-reverting the noise is.
func RunDiagnostics(spec schema.SeriesSpec, series schema.Series, cfg DiagConfig) (schema.DiagnosticsResult, error) {
	if cfg.SMAPeriod <= 0 || cfg.EMAPeriod <= 0 || cfg.RSIPeriod <= 0 {
		return schema.DiagnosticsResult{}, fmt.Errorf("%w: sma=%d, ema=%d, rsi=%d",
			ErrNonPositiveWindow, cfg.SMAPeriod, cfg.EMAPeriod, cfg.RSIPeriod)
	}

	sma := trend.NewSmaWithPeriod[float64](cfg.SMAPeriod)
	ema := trend.NewEmaWithPeriod[float64](cfg.EMAPeriod)
	rsi := momentum.NewRsiWithPeriod[float64](cfg.RSIPeriod)

	smaOut := helper.ChanToSlice(sma.Compute(helper.SliceToChan(series.Values)))
	emaOut := helper.ChanToSlice(ema.Compute(helper.SliceToChan(series.Values)))
	rsiOut := helper.ChanToSlice(rsi.Compute(helper.SliceToChan(series.Values)))

	return schema.DiagnosticsResult{
		Spec: spec,
		Indicators: []schema.IndicatorSummary{
			summarize("sma", cfg.SMAPeriod, smaOut),
			summarize("ema", cfg.EMAPeriod, emaOut),
			summarize("rsi", cfg.RSIPeriod, rsiOut),
		},
	}, nil
}

func summarize(name string, period int, values []float64) schema.IndicatorSummary {
	s := schema.IndicatorSummary{Name: name, Period: period, Count: len(values)}
	if len(values) == 0 {
		return s
	}

	s.First = values[0]
	s.Last = values[len(values)-1]
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Mean = floats.Sum(values) / float64(len(values))
	return s
}
