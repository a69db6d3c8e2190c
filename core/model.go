package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/synthcast/synthcast/schema"
	"gonum.org/v1/gonum/floats"
)

// ErrEmptyTrainingSet means the training segment is too short to carve a
// single supervised window from.
var ErrEmptyTrainingSet = errors.New("training segment yields no windows")

// TrainConfig holds the hyperparameters of the window model trainer.
type TrainConfig struct {
	WindowSize    int
	BatchSize     int
	Epochs        int
	LearningRate  float64
	Momentum      float64
	ShuffleBuffer int
	Loss          schema.LossKind
	Seed          uint64
}

// WindowModel is a linear autoregressive model: the next value is a
// learned affine combination of the previous WindowSize values.
type WindowModel struct {
	Weights []float64
	Bias    float64
}

// WindowSize returns the lookback length the model was trained with.
func (m *WindowModel) WindowSize() int {
	return len(m.Weights)
}

// PredictNext returns the one-step-ahead prediction for a window of the
// model's lookback length.
func (m *WindowModel) PredictNext(window []float64) (float64, error) {
	if len(window) != len(m.Weights) {
		return 0, fmt.Errorf("%w: window=%d, weights=%d", ErrMismatchedLengths, len(window), len(m.Weights))
	}
	return floats.Dot(m.Weights, window) + m.Bias, nil
}

// Forecast predicts each validation tick from the actual window that
// precedes it, the same one-step-ahead regime the model was trained on.
func (m *WindowModel) Forecast(series []float64, splitTime int) ([]float64, error) {
	w := m.WindowSize()
	if splitTime <= 0 || splitTime >= len(series) {
		return nil, fmt.Errorf("%w: split=%d, length=%d", ErrSplitOutOfRange, splitTime, len(series))
	}
	if splitTime < w {
		return nil, fmt.Errorf("%w: split=%d < window=%d", ErrInsufficientHistory, splitTime, w)
	}

	out := make([]float64, len(series)-splitTime)
	for i := range out {
		t := splitTime + i
		pred, err := m.PredictNext(series[t-w : t])
		if err != nil {
			return nil, err
		}
		out[i] = pred
	}
	return out, nil
}

// lossGradient returns dLoss/dPrediction for a single residual
// r = prediction - target under the configured loss.
func lossGradient(kind schema.LossKind, r float64) float64 {
	switch kind {
	case schema.MSELoss:
		return 2 * r
	case schema.MAELoss:
		if r > 0 {
			return 1
		}
		if r < 0 {
			return -1
		}
		return 0
	default: // Huber
		if r > huberDelta {
			return huberDelta
		}
		if r < -huberDelta {
			return -huberDelta
		}
		return r
	}
}

func lossValue(kind schema.LossKind, actual, predicted []float64) (float64, error) {
	switch kind {
	case schema.MSELoss:
		return MSE(actual, predicted)
	case schema.MAELoss:
		return MAE(actual, predicted)
	default:
		return Huber(actual, predicted)
	}
}

// TrainWindowModel fits a WindowModel to the training segment with
// mini-batch SGD plus momentum over seeded shuffled windows. Returns the
// fitted model and its per-epoch history. Training is fully deterministic
// for a given config.
func TrainWindowModel(train []float64, cfg TrainConfig) (*WindowModel, *schema.TrainHistory, error) {
	return trainWithSchedule(train, cfg, nil)
}

// LRSweep trains one model while growing the learning rate each epoch as
// lr(epoch) = start * 10^(epoch/20), a decade every 20 epochs. Plotting
// the per-epoch loss against learning rate locates the largest stable rate.
func LRSweep(train []float64, cfg TrainConfig, start float64) (*schema.TrainHistory, error) {
	schedule := func(epoch int) float64 {
		return start * math.Pow(10, float64(epoch)/20)
	}
	_, history, err := trainWithSchedule(train, cfg, schedule)
	return history, err
}

func trainWithSchedule(train []float64, cfg TrainConfig, schedule func(epoch int) float64) (*WindowModel, *schema.TrainHistory, error) {
	if cfg.WindowSize <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrNonPositiveWindow, cfg.WindowSize)
	}
	if cfg.BatchSize <= 0 {
		return nil, nil, fmt.Errorf("batch size must be positive: got %d", cfg.BatchSize)
	}
	if cfg.Epochs <= 0 {
		return nil, nil, fmt.Errorf("epoch count must be positive: got %d", cfg.Epochs)
	}

	inner, err := NewWindowIterator(train, cfg.WindowSize)
	if err != nil {
		return nil, nil, err
	}
	if inner.Count() == 0 {
		return nil, nil, fmt.Errorf("%w: length=%d, window=%d", ErrEmptyTrainingSet, len(train), cfg.WindowSize)
	}

	buffer := cfg.ShuffleBuffer
	if buffer <= 0 {
		buffer = inner.Count()
	}
	it, err := NewShuffledIterator(inner, buffer, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}

	model := &WindowModel{Weights: make([]float64, cfg.WindowSize)}
	velocity := make([]float64, cfg.WindowSize)
	var velocityBias float64
	gradW := make([]float64, cfg.WindowSize)

	history := &schema.TrainHistory{
		Loss: make([]float64, 0, cfg.Epochs),
		MAE:  make([]float64, 0, cfg.Epochs),
		LR:   make([]float64, 0, cfg.Epochs),
	}

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		lr := cfg.LearningRate
		if schedule != nil {
			lr = schedule(epoch)
		}

		it.Reset()
		for {
			floats.Scale(0, gradW)
			var gradBias float64
			var batch int
			for batch < cfg.BatchSize {
				pair, ok := it.Next()
				if !ok {
					break
				}
				pred := floats.Dot(model.Weights, pair.Input) + model.Bias
				g := lossGradient(cfg.Loss, pred-pair.Target[len(pair.Target)-1])
				floats.AddScaled(gradW, g, pair.Input)
				gradBias += g
				batch++
			}
			if batch == 0 {
				break
			}

			inv := 1 / float64(batch)
			for j := range velocity {
				velocity[j] = cfg.Momentum*velocity[j] - lr*gradW[j]*inv
				model.Weights[j] += velocity[j]
			}
			velocityBias = cfg.Momentum*velocityBias - lr*gradBias*inv
			model.Bias += velocityBias
		}

		epochLoss, epochMAE, err := epochMetrics(model, train, cfg)
		if err != nil {
			return nil, nil, err
		}
		history.Loss = append(history.Loss, epochLoss)
		history.MAE = append(history.MAE, epochMAE)
		history.LR = append(history.LR, lr)
	}

	return model, history, nil
}

// epochMetrics scores the model over the full training segment in series
// order, independent of the shuffle.
func epochMetrics(model *WindowModel, train []float64, cfg TrainConfig) (float64, float64, error) {
	it, err := NewWindowIterator(train, cfg.WindowSize)
	if err != nil {
		return 0, 0, err
	}

	actual := make([]float64, 0, it.Count())
	predicted := make([]float64, 0, it.Count())
	for {
		pair, ok := it.Next()
		if !ok {
			break
		}
		pred, err := model.PredictNext(pair.Input)
		if err != nil {
			return 0, 0, err
		}
		actual = append(actual, pair.Target[len(pair.Target)-1])
		predicted = append(predicted, pred)
	}

	loss, err := lossValue(cfg.Loss, actual, predicted)
	if err != nil {
		return 0, 0, err
	}
	mae, err := MAE(actual, predicted)
	if err != nil {
		return 0, 0, err
	}
	return loss, mae, nil
}
