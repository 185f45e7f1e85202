package machine

import "fmt"

import "github.com/neurlang/tsetlin/clause"
import "github.com/neurlang/tsetlin/inference"
import "github.com/neurlang/tsetlin/vote"

// Score returns the full vote of the machine on one row
func (m *Machine) Score(row []bool) (vote.Result, error) {
	if len(row) != m.features {
		return vote.Result{}, fmt.Errorf("%w: row has %d features, machine expects %d", ErrShapeMismatch, len(row), m.features)
	}
	var in = clause.NewInput(m.features)
	in.Load(row)
	return vote.Classify(m.bank, in, m.engine.Threshold, nil), nil
}

// PredictSingle classifies one row
func (m *Machine) PredictSingle(row []bool) (bool, error) {
	res, err := m.Score(row)
	if err != nil {
		return false, err
	}
	return res.Label, nil
}

// Predict classifies every row, preserving order
func (m *Machine) Predict(features [][]bool) ([]bool, error) {
	if err := m.checkRows(features); err != nil {
		return nil, err
	}
	return inference.Batch(m, features, m.threads)
}

// Evaluate returns the fraction of rows predicted equal to their label,
// 0 for an empty batch
func (m *Machine) Evaluate(features [][]bool, labels []bool) (float64, error) {
	if err := m.checkShape(features, labels); err != nil {
		return 0, err
	}
	predictions, err := inference.Batch(m, features, m.threads)
	if err != nil {
		return 0, err
	}
	return inference.Accuracy(predictions, labels)
}
