// Package clause implements literal construction and clause evaluation
package clause

import "github.com/neurlang/tsetlin/automaton"

// Polarity returns the vote of clause j: +1 for even clauses, -1 for odd ones
func Polarity(j int) int {
	if j&1 == 0 {
		return 1
	}
	return -1
}

// Evaluate computes the output of a clause on the input, using the evaluator
// selected for this CPU. A clause without included literals outputs true.
func Evaluate(r automaton.Row, in *Input) bool {
	return evaluate(r, in)
}

// Evaluator is the signature shared by the clause evaluators
type Evaluator func(r automaton.Row, in *Input) bool

var evaluate Evaluator = evaluatePacked

var vectorized bool

// Vectorized reports whether the AVX2 word kernel was selected for this CPU
func Vectorized() bool {
	return vectorized
}

func evaluateScalar(r automaton.Row, in *Input) bool {
	return EvaluateScalar(r, in.Literals)
}

func evaluatePacked(r automaton.Row, in *Input) bool {
	return EvaluatePacked(r, in.Packed)
}

// EvaluateScalar ANDs every literal whose automaton includes it
func EvaluateScalar(r automaton.Row, literals []bool) bool {
	for k, v := range literals {
		if !v && r.Action(k) == automaton.Include {
			return false
		}
	}
	return true
}

// EvaluatePacked is EvaluateScalar on packed literals: the clause is false as
// soon as some included literal is false in the input.
func EvaluatePacked(r automaton.Row, packed []uint64) bool {
	for w, inc := range r.Mask() {
		if inc&^packed[w] != 0 {
			return false
		}
	}
	return true
}
