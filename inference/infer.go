// Package inference implements the read-only prediction stage of the Tsetlin machine
package inference

import "context"
import "errors"
import "fmt"

import "github.com/neurlang/tsetlin/parallel"

// ErrLengthMismatch is returned when predictions and labels differ in length
var ErrLengthMismatch = errors.New("predictions and labels differ in length")

// ErrWidthMismatch is returned when a row does not have NumFeatures features
var ErrWidthMismatch = errors.New("row width does not match the predictor")

// Predictor is a trained model. PredictSingle must not mutate the model,
// Batch calls it from several goroutines at once.
type Predictor interface {
	NumFeatures() int
	PredictSingle(row []bool) (bool, error)
}

// Batch predicts every row, preserving order. threads bounds the number of
// goroutines, 1 or less predicts sequentially on the calling goroutine.
func Batch(p Predictor, rows [][]bool, threads int) (out []bool, err error) {
	for i, row := range rows {
		if len(row) != p.NumFeatures() {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrWidthMismatch, i, len(row), p.NumFeatures())
		}
	}
	out = make([]bool, len(rows))
	err = parallel.ForEach(context.Background(), len(rows), threads, func(_ context.Context, i int) error {
		v, err := p.PredictSingle(rows[i])
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Accuracy is the fraction of predictions equal to their label. An empty
// batch has accuracy 0.
func Accuracy(predictions, labels []bool) (float64, error) {
	if len(predictions) != len(labels) {
		return 0, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(predictions), len(labels))
	}
	if len(labels) == 0 {
		return 0, nil
	}
	var correct int
	for i, v := range predictions {
		if v == labels[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(labels)), nil
}
