package machine

import "context"
import "fmt"
import "log/slog"
import "time"

import "github.com/neurlang/tsetlin/clause"
import "github.com/neurlang/tsetlin/feedback"
import "github.com/neurlang/tsetlin/vote"

// Fit trains the machine for exactly epochs passes over the samples, in the
// given order. Shapes are validated before anything is touched, so a failed
// Fit leaves the machine unchanged. Zero epochs is a no-op.
func (m *Machine) Fit(features [][]bool, labels []bool, epochs int) error {
	if epochs < 0 {
		return fmt.Errorf("%w: epochs must not be negative, got %d", ErrInvalidConfig, epochs)
	}
	if err := m.checkShape(features, labels); err != nil {
		return err
	}
	if epochs == 0 {
		return nil
	}

	// a single epoch is usually one step of a driver that logs the run itself
	var level = slog.LevelInfo
	if epochs == 1 {
		level = slog.LevelDebug
	}
	m.logger.Log(context.Background(), level, "training started",
		slog.Int("rows", len(features)),
		slog.Int("epochs", epochs),
		slog.Int("clauses", m.clauses),
		slog.Uint64("seed", m.seed))

	var in = clause.NewInput(m.features)
	var outputs = make([]bool, m.clauses)
	var total feedback.Stats
	var start = time.Now()

	for epoch := 1; epoch <= epochs; epoch++ {
		var began = time.Now()
		var st feedback.Stats
		for i, row := range features {
			in.Load(row)
			res := vote.Classify(m.bank, in, m.engine.Threshold, outputs)
			st.Add(m.engine.Apply(m.bank, in, labels[i], res.Margin, outputs))
		}
		total.Add(st)

		var stats = EpochStats{
			Epoch:    epoch,
			Samples:  len(features),
			Feedback: st,
			Included: m.bank.IncludedCount(),
			Duration: time.Since(began),
		}
		m.logger.Debug("epoch finished",
			slog.Int("epoch", epoch),
			slog.Int("type_i", st.TypeI),
			slog.Int("type_ii", st.TypeII),
			slog.Int("included", stats.Included))
		if m.observer != nil {
			m.observer.ObserveEpoch(stats)
		}
	}

	m.logger.Log(context.Background(), level, "training finished",
		slog.Int("epochs", epochs),
		slog.Int("type_i", total.TypeI),
		slog.Int("type_ii", total.TypeII),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}
