package core

import (
	"fmt"
	"math"

	"github.com/synthcast/synthcast/schema"
)

// huberDelta is the transition point between the quadratic and linear
// regions of the Huber loss.
const huberDelta = 1.0

// MAE returns the mean absolute error between two equal-length sequences.
func MAE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: actual=%d, predicted=%d", ErrMismatchedLengths, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range actual {
		sum += math.Abs(actual[i] - predicted[i])
	}
	return sum / float64(len(actual)), nil
}

// MSE returns the mean squared error between two equal-length sequences.
func MSE(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: actual=%d, predicted=%d", ErrMismatchedLengths, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range actual {
		d := actual[i] - predicted[i]
		sum += d * d
	}
	return sum / float64(len(actual)), nil
}

// Huber returns the mean Huber loss: quadratic within huberDelta of zero
// error, linear beyond it. Robust to the occasional large residual.
func Huber(actual, predicted []float64) (float64, error) {
	if len(actual) != len(predicted) {
		return 0, fmt.Errorf("%w: actual=%d, predicted=%d", ErrMismatchedLengths, len(actual), len(predicted))
	}
	if len(actual) == 0 {
		return 0, nil
	}

	var sum float64
	for i := range actual {
		d := math.Abs(actual[i] - predicted[i])
		if d <= huberDelta {
			sum += 0.5 * d * d
		} else {
			sum += huberDelta * (d - 0.5*huberDelta)
		}
	}
	return sum / float64(len(actual)), nil
}

// Evaluate scores a forecast against the validation values it targets.
// Skill is left at zero; the caller fills it in once the naive reference
// error is known.
func Evaluate(method schema.ForecastMethod, actual, predicted []float64) (schema.Evaluation, error) {
	mae, err := MAE(actual, predicted)
	if err != nil {
		return schema.Evaluation{}, err
	}
	mse, err := MSE(actual, predicted)
	if err != nil {
		return schema.Evaluation{}, err
	}

	return schema.Evaluation{
		Method: method,
		MAE:    mae,
		MSE:    mse,
		Count:  len(actual),
	}, nil
}

// ApplySkill fills in each evaluation's skill score relative to the naive
// forecast: 1 - MAE/naiveMAE, so positive means better than naive. The
// naive entry itself stays at zero. With a zero naive MAE skill is
// undefined and left at zero for every method.
func ApplySkill(evals []schema.Evaluation) {
	var naiveMAE float64
	for _, e := range evals {
		if e.Method == schema.NaiveMethod {
			naiveMAE = e.MAE
			break
		}
	}
	if naiveMAE == 0 {
		return
	}

	for i := range evals {
		if evals[i].Method == schema.NaiveMethod {
			continue
		}
		evals[i].Skill = 1 - evals[i].MAE/naiveMAE
	}
}
