// Package feedback implements the Type I and Type II reinforcement of clauses
package feedback

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/clause"

// Source yields uniform draws in [0, 1). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

// Stats counts what one or more Apply calls did
type Stats struct {
	TypeI     int // clauses that received Type I feedback
	TypeII    int // clauses that received Type II feedback
	Rewards   int // rewards that moved an automaton, saturated ones are not counted
	Penalties int // automaton penalties performed
}

// Add accumulates other into s
func (s *Stats) Add(other Stats) {
	s.TypeI += other.TypeI
	s.TypeII += other.TypeII
	s.Rewards += other.Rewards
	s.Penalties += other.Penalties
}

// Engine applies feedback to a bank. Specificity must be > 1 and Threshold > 0,
// the machine validates both before building an engine.
type Engine struct {
	Specificity float64
	Threshold   float64
	Rand        Source
}

// Apply reinforces every clause of the bank for one sample with label and the
// clipped margin its vote produced. outputs holds each clause output for the
// current bank state, as filled by vote.Classify; when nil the clauses are
// evaluated here. Exactly one draw per clause decides whether it is updated.
func (e *Engine) Apply(b *automaton.Bank, in *clause.Input, label bool, margin float64, outputs []bool) (st Stats) {
	var target = -1
	if label {
		target = 1
	}
	var probI = Probability(TypeI, margin, e.Threshold)
	var probII = Probability(TypeII, margin, e.Threshold)
	var rarely = 1 / e.Specificity
	var likely = (e.Specificity - 1) / e.Specificity

	for j := 0; j < b.Clauses(); j++ {
		var kind, prob = TypeII, probII
		if clause.Polarity(j) == target {
			kind, prob = TypeI, probI
		}
		if !(e.Rand.Float64() < prob) {
			continue
		}
		r, _ := b.Row(j)
		var output bool
		if outputs != nil {
			output = outputs[j]
		} else {
			output = clause.Evaluate(r, in)
		}
		if kind == TypeI {
			st.TypeI++
		} else {
			st.TypeII++
			if !output {
				continue
			}
		}
		for k, literal := range in.Literals {
			switch Decide(kind, output, literal, r.Action(k)) {
			case Reward:
				if r.Reward(k) {
					st.Rewards++
				}
			case Penalize:
				r.Penalize(k)
				st.Penalties++
			case RewardLikely:
				if e.Rand.Float64() < likely {
					if r.Reward(k) {
						st.Rewards++
					}
				}
			case PenalizeRarely:
				if e.Rand.Float64() < rarely {
					r.Penalize(k)
					st.Penalties++
				}
			}
		}
	}
	return
}
