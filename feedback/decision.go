package feedback

import "github.com/neurlang/tsetlin/automaton"

// Kind selects the feedback rule applied to a clause
type Kind byte

const (
	// TypeI teaches a clause to fire for its own class
	TypeI Kind = iota + 1
	// TypeII teaches a clause to stay silent for the other class
	TypeII
)

func (k Kind) String() string {
	switch k {
	case TypeI:
		return "type_i"
	case TypeII:
		return "type_ii"
	default:
		return "none"
	}
}

// Decision is the update one automaton receives
type Decision byte

const (
	// Keep leaves the automaton alone
	Keep Decision = iota
	// Reward reinforces the current action
	Reward
	// Penalize pushes towards the opposite action
	Penalize
	// RewardLikely rewards with probability (s-1)/s
	RewardLikely
	// PenalizeRarely penalizes with probability 1/s
	PenalizeRarely
)

func (d Decision) String() string {
	switch d {
	case Keep:
		return "keep"
	case Reward:
		return "reward"
	case Penalize:
		return "penalize"
	case RewardLikely:
		return "reward_likely"
	case PenalizeRarely:
		return "penalize_rarely"
	default:
		return "invalid"
	}
}

// Decide maps (feedback kind, clause output, literal value, action) to an
// update. It draws nothing, the probabilistic outcomes are left to the caller.
func Decide(kind Kind, output, literal bool, action automaton.Action) Decision {
	switch kind {
	case TypeI:
		if output {
			if literal || action == automaton.Exclude {
				return Reward
			}
			return PenalizeRarely
		}
		if action == automaton.Include {
			return PenalizeRarely
		}
		return RewardLikely
	case TypeII:
		if output && !literal && action == automaton.Exclude {
			return Penalize
		}
	}
	return Keep
}

// Probability is the chance that a clause receives its candidate feedback
// given the clipped margin of the vote
func Probability(kind Kind, margin, threshold float64) (p float64) {
	if margin < 0 {
		margin = -margin
	}
	switch kind {
	case TypeI:
		p = (threshold - margin) / (2 * threshold)
	case TypeII:
		p = (threshold + margin) / (2 * threshold)
	default:
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return
}
