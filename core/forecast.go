package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/synthcast/synthcast/internal/contract"
	"github.com/synthcast/synthcast/internal/outwriter"
	"github.com/synthcast/synthcast/schema"
)

// GetSeriesResult generates the configured synthetic series.
func GetSeriesResult(cfg *contract.Config) (schema.Series, error) {
	return GenerateSeries(cfg.Spec)
}

// trainConfigFrom maps the validated run config onto trainer settings.
// The shuffle seed reuses the generator seed so a run is one seed end to end.
func trainConfigFrom(cfg *contract.Config) TrainConfig {
	return TrainConfig{
		WindowSize:    cfg.ModelWindow,
		BatchSize:     cfg.BatchSize,
		Epochs:        cfg.Epochs,
		LearningRate:  cfg.LearningRate,
		Momentum:      cfg.Momentum,
		ShuffleBuffer: cfg.ShuffleBuffer,
		Loss:          cfg.Loss,
		Seed:          cfg.Spec.Seed,
	}
}

// forecastForMethod produces the validation-segment forecast for one method.
// The model method trains from scratch and returns its history alongside.
func forecastForMethod(cfg *contract.Config, series []float64, method schema.ForecastMethod) ([]float64, *schema.TrainHistory, error) {
	split := cfg.SplitTime
	switch method {
	case schema.NaiveMethod:
		values, err := NaiveForecast(series, split)
		return values, nil, err
	case schema.MovingAverageMethod:
		values, err := MovingAverageAligned(series, split, cfg.MAWindow)
		return values, nil, err
	case schema.DiffMethod:
		values, err := DiffMovingAverageForecast(series, split, cfg.Spec.Period, cfg.DiffWindow)
		return values, nil, err
	case schema.DiffSmoothMethod:
		values, err := DiffSmoothedForecast(series, split, cfg.Spec.Period, cfg.DiffWindow, cfg.SmoothWindow)
		return values, nil, err
	case schema.ModelMethod:
		model, history, err := TrainWindowModel(series[:split], trainConfigFrom(cfg))
		if err != nil {
			return nil, nil, err
		}
		values, err := model.Forecast(series, split)
		return values, history, err
	default:
		return nil, nil, fmt.Errorf("unknown forecast method: %s", method)
	}
}

// GetRunResults executes the configured forecast methods against a fresh
// series and evaluates each one. Skill scores are always computed against
// the naive baseline, whether or not naive itself was requested.
func GetRunResults(cfg *contract.Config) (schema.RunResult, error) {
	series, err := GetSeriesResult(cfg)
	if err != nil {
		return schema.RunResult{}, err
	}
	valid := series.Values[cfg.SplitTime:]

	naive, err := NaiveForecast(series.Values, cfg.SplitTime)
	if err != nil {
		return schema.RunResult{}, err
	}
	naiveMAE, err := MAE(valid, naive)
	if err != nil {
		return schema.RunResult{}, err
	}

	run := schema.RunResult{
		Spec:        cfg.Spec,
		SplitTime:   cfg.SplitTime,
		Evaluations: make([]schema.Evaluation, 0, len(cfg.Methods)),
	}

	for _, method := range cfg.Methods {
		values, history, err := forecastForMethod(cfg, series.Values, method)
		if err != nil {
			return schema.RunResult{}, fmt.Errorf("%s forecast: %w", method, err)
		}

		eval, err := Evaluate(method, valid, values)
		if err != nil {
			return schema.RunResult{}, fmt.Errorf("%s evaluation: %w", method, err)
		}
		if method != schema.NaiveMethod && naiveMAE != 0 {
			eval.Skill = 1 - eval.MAE/naiveMAE
		}

		run.Evaluations = append(run.Evaluations, eval)
		if history != nil {
			run.History = history
		}
	}

	return run, nil
}

// GetCachedRunResults is GetRunResults behind the run store: an identical
// configuration served from storage is returned with Cached set. A nil or
// absent store, or --no-cache, falls back to direct computation.
func GetCachedRunResults(cfg *contract.Config, mgr contract.CacheManager) (schema.RunResult, error) {
	var store contract.RunStore
	if mgr != nil {
		store = mgr.GetRunStore()
	}
	if store == nil || cfg.NoCache {
		return GetRunResults(cfg)
	}

	key := cfg.RunHash()
	if run, ok := checkRunHit(store, key); ok {
		return run, nil
	}

	run, err := GetRunResults(cfg)
	if err != nil {
		return schema.RunResult{}, err
	}

	// Store failures degrade to uncached behavior.
	if data, err := json.Marshal(run); err == nil {
		if err := store.Set(key, data, contract.RunPayloadVersion, time.Now().Unix()); err != nil {
			contract.LogWarn("run store write failed", err)
		}
	}
	return run, nil
}

// checkRunHit attempts to retrieve and decode a stored run.
func checkRunHit(store contract.RunStore, key string) (schema.RunResult, bool) {
	data, version, _, err := store.Get(key)
	if err != nil || version != contract.RunPayloadVersion {
		return schema.RunResult{}, false
	}

	var run schema.RunResult
	if err := json.Unmarshal(data, &run); err != nil {
		return schema.RunResult{}, false
	}
	run.Cached = true
	return run, true
}

// GetSweepResults runs the learning-rate sweep over the training segment.
func GetSweepResults(cfg *contract.Config) (*schema.TrainHistory, error) {
	series, err := GetSeriesResult(cfg)
	if err != nil {
		return nil, err
	}
	return LRSweep(series.Values[:cfg.SplitTime], trainConfigFrom(cfg), cfg.SweepStartLR)
}

// GetDiagnosticsResults generates the series and computes its indicator
// diagnostics.
func GetDiagnosticsResults(cfg *contract.Config) (schema.DiagnosticsResult, error) {
	series, err := GetSeriesResult(cfg)
	if err != nil {
		return schema.DiagnosticsResult{}, err
	}
	return RunDiagnostics(cfg.Spec, series, DiagConfig{
		SMAPeriod: cfg.SMAPeriod,
		EMAPeriod: cfg.EMAPeriod,
		RSIPeriod: cfg.RSIPeriod,
	})
}

// ExecuteGenerate generates the series and writes it out.
func ExecuteGenerate(cfg *contract.Config) error {
	series, err := GetSeriesResult(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteSeries(cfg, series)
}

// ExecuteForecastRun runs the configured methods, consulting the run
// store, and writes the evaluation report. Shared by the baselines,
// train, and compare commands, which differ only in their method lists.
func ExecuteForecastRun(cfg *contract.Config, mgr contract.CacheManager) error {
	run, err := GetCachedRunResults(cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.WriteRun(cfg, run)
}

// ExecuteSweep runs the learning-rate sweep and writes its history.
func ExecuteSweep(cfg *contract.Config) error {
	history, err := GetSweepResults(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteHistory(cfg, history)
}

// ExecuteAnalyze computes indicator diagnostics and writes them out.
func ExecuteAnalyze(cfg *contract.Config) error {
	result, err := GetDiagnosticsResults(cfg)
	if err != nil {
		return err
	}
	return outwriter.WriteDiagnostics(cfg, result)
}
