package core

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrInsufficientHistory means the split point does not leave enough
// lookback for the requested period/window combination.
var ErrInsufficientHistory = errors.New("not enough history before split for requested lookback")

// NaiveForecast predicts the previous observed value: forecast[i] is
// series[split-1+i], one prediction per validation tick.
func NaiveForecast(series []float64, splitTime int) ([]float64, error) {
	if splitTime <= 0 || splitTime >= len(series) {
		return nil, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, len(series))
	}

	out := make([]float64, len(series)-splitTime)
	copy(out, series[splitTime-1:len(series)-1])
	return out, nil
}

// MovingAverageForecast returns the mean of each full windowSize-length
// slice of the series, one value per valid window start. The output has
// exactly len(series)-windowSize values; windowSize >= len(series) yields
// an empty result, not an error. Callers align indices against the
// validation segment themselves (offset by split-windowSize).
func MovingAverageForecast(series []float64, windowSize int) ([]float64, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveWindow, windowSize)
	}
	if windowSize >= len(series) {
		return []float64{}, nil
	}

	out := make([]float64, len(series)-windowSize)
	sum := floats.Sum(series[:windowSize])
	out[0] = sum / float64(windowSize)
	for i := 1; i < len(out); i++ {
		sum += series[i+windowSize-1] - series[i-1]
		out[i] = sum / float64(windowSize)
	}
	return out, nil
}

// MovingAverageAligned is the validation-aligned moving average:
// forecast[i] is the mean of the windowSize ticks ending just before
// validation tick split+i.
func MovingAverageAligned(series []float64, splitTime, windowSize int) ([]float64, error) {
	if splitTime <= 0 || splitTime >= len(series) {
		return nil, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, len(series))
	}
	if windowSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveWindow, windowSize)
	}
	if splitTime < windowSize {
		return nil, fmt.Errorf("%w: split=%d < window=%d", ErrInsufficientHistory, splitTime, windowSize)
	}

	ma, err := MovingAverageForecast(series, windowSize)
	if err != nil {
		return nil, err
	}
	return ma[splitTime-windowSize:], nil
}

// Difference removes trend and seasonality by subtracting the value one
// full period in the past: diff[i] = series[i+period] - series[i], for
// every tick with a full period of history. By construction
// diff[i] + series[i] == series[i+period] exactly.
func Difference(series []float64, period int) ([]float64, error) {
	if period <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositivePeriod, period)
	}
	if period >= len(series) {
		return []float64{}, nil
	}

	out := make([]float64, len(series)-period)
	for i := range out {
		out[i] = series[i+period] - series[i]
	}
	return out, nil
}

// diffMovingAverage computes the validation-aligned moving average of the
// period-differenced series. The returned slice has one value per
// validation tick.
func diffMovingAverage(series []float64, splitTime, period, diffWindow int) ([]float64, error) {
	diff, err := Difference(series, period)
	if err != nil {
		return nil, err
	}

	ma, err := MovingAverageForecast(diff, diffWindow)
	if err != nil {
		return nil, err
	}

	// MA output index i covers diff window starts; the window predicting
	// validation tick split+i starts at split-period-diffWindow+i.
	start := splitTime - period - diffWindow
	if start < 0 || start > len(ma) {
		return nil, fmt.Errorf("%w: split=%d, period=%d, window=%d", ErrInsufficientHistory, splitTime, period, diffWindow)
	}
	return ma[start:], nil
}

// DiffMovingAverageForecast forecasts the validation segment by averaging
// the period-differenced series with diffWindow, then restoring the
// absolute scale by adding back the raw value from one period earlier.
func DiffMovingAverageForecast(series []float64, splitTime, period, diffWindow int) ([]float64, error) {
	if splitTime <= 0 || splitTime >= len(series) {
		return nil, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, len(series))
	}

	diffMA, err := diffMovingAverage(series, splitTime, period, diffWindow)
	if err != nil {
		return nil, err
	}

	// Past values one period behind each validation tick.
	past := series[splitTime-period : len(series)-period]
	if len(past) != len(diffMA) {
		return nil, fmt.Errorf("%w: past=%d, diff=%d", ErrMismatchedLengths, len(past), len(diffMA))
	}

	out := make([]float64, len(diffMA))
	for i := range out {
		out[i] = past[i] + diffMA[i]
	}
	return out, nil
}

// DiffSmoothedForecast is DiffMovingAverageForecast with the added-back
// past smoothed by a short centered moving average of smoothWindow ticks,
// removing noise that would otherwise pass straight into the forecast.
func DiffSmoothedForecast(series []float64, splitTime, period, diffWindow, smoothWindow int) ([]float64, error) {
	if splitTime <= 0 || splitTime >= len(series) {
		return nil, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, len(series))
	}
	if smoothWindow <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNonPositiveWindow, smoothWindow)
	}

	diffMA, err := diffMovingAverage(series, splitTime, period, diffWindow)
	if err != nil {
		return nil, err
	}

	// Centering the smoothing window around each lagged tick keeps the
	// smoothed past aligned with the validation segment: lo..hi spans
	// exactly len(valid)+smoothWindow ticks, so the MA emits one value
	// per validation tick.
	half := smoothWindow / 2
	lo := splitTime - period - half
	hi := len(series) - period + (smoothWindow - half)
	if lo < 0 || hi > len(series) {
		return nil, fmt.Errorf("%w: split=%d, period=%d, smooth=%d", ErrInsufficientHistory, splitTime, period, smoothWindow)
	}

	smoothPast, err := MovingAverageForecast(series[lo:hi], smoothWindow)
	if err != nil {
		return nil, err
	}
	if len(smoothPast) != len(diffMA) {
		return nil, fmt.Errorf("%w: past=%d, diff=%d", ErrMismatchedLengths, len(smoothPast), len(diffMA))
	}

	out := make([]float64, len(diffMA))
	for i := range out {
		out[i] = smoothPast[i] + diffMA[i]
	}
	return out, nil
}
