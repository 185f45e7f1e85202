// Package vote aggregates signed clause outputs into a classification
package vote

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/clause"

// Result is the outcome of one vote
type Result struct {
	// Label is the predicted class, true when Raw > 0
	Label bool
	// Margin is Raw clipped to [-T, T]
	Margin float64
	// Raw is the sum of polarity over firing clauses
	Raw int
}

// Clip clamps raw into [-threshold, threshold]
func Clip(raw int, threshold float64) float64 {
	var v = float64(raw)
	if v > threshold {
		return threshold
	}
	if v < -threshold {
		return -threshold
	}
	return v
}

// Classify evaluates every clause in the bank on the input and sums their
// signed votes. When outputs is not nil it must hold one slot per clause and
// receives each clause output.
func Classify(b *automaton.Bank, in *clause.Input, threshold float64, outputs []bool) (res Result) {
	for j := 0; j < b.Clauses(); j++ {
		r, _ := b.Row(j)
		var out = clause.Evaluate(r, in)
		if outputs != nil {
			outputs[j] = out
		}
		if out {
			res.Raw += clause.Polarity(j)
		}
	}
	res.Margin = Clip(res.Raw, threshold)
	res.Label = res.Raw > 0
	return
}
