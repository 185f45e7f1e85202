package automaton

// Action is the decision an automaton currently makes about its literal
type Action byte

const (
	// Exclude leaves the literal out of the clause
	Exclude Action = iota
	// Include makes the literal part of the clause conjunction
	Include
)

func (a Action) String() string {
	switch a {
	case Exclude:
		return "exclude"
	case Include:
		return "include"
	default:
		return "invalid"
	}
}
