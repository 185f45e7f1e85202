package automaton

// Row is the view of one clause inside the bank: one automaton per literal.
// Row methods do not check k beyond the usual slice bounds, callers pass
// literal vectors already validated against Bank.Literals.
type Row struct {
	states  []uint16
	include []uint64
	depth   uint16
}

// Len returns the number of literals in the row
func (r Row) Len() int {
	return len(r.states)
}

// State returns the raw automaton state of literal k
func (r Row) State(k int) int {
	return int(r.states[k])
}

// Action returns the action of literal k
func (r Row) Action(k int) Action {
	if r.states[k] > r.depth {
		return Include
	}
	return Exclude
}

// Reward moves literal k one step deeper into its current action.
// It saturates at 1 and 2N and therefore never flips the action.
// It reports whether the state moved.
func (r Row) Reward(k int) bool {
	var s = r.states[k]
	if s > r.depth {
		if s < 2*r.depth {
			r.states[k] = s + 1
			return true
		}
	} else if s > 1 {
		r.states[k] = s - 1
		return true
	}
	return false
}

// Penalize moves literal k one step towards the opposite action.
// Crossing the N / N+1 boundary flips the action and the include mask bit.
func (r Row) Penalize(k int) {
	var s = r.states[k]
	if s > r.depth {
		s--
		if s == r.depth {
			r.include[k>>6] &^= 1 << (uint(k) & 63)
		}
	} else {
		s++
		if s == r.depth+1 {
			r.include[k>>6] |= 1 << (uint(k) & 63)
		}
	}
	r.states[k] = s
}

// Mask returns the packed include bitmask of the row, bit k%64 of word k/64
// is set when literal k is included. The slice aliases the bank, don't modify it.
func (r Row) Mask() []uint64 {
	return r.include
}

// Empty reports whether no literal is included
func (r Row) Empty() bool {
	for _, w := range r.include {
		if w != 0 {
			return false
		}
	}
	return true
}
