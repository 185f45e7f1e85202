package machine

import "strconv"
import "strings"

import "github.com/neurlang/tsetlin/clause"

// Rule is the conjunction a clause has learned
type Rule struct {
	Clause   int
	Polarity int
	Literals []int // included literals, 2k is feature k and 2k+1 its negation
}

// String renders the rule like "-3: x0 ∧ ¬x2", an empty clause renders as "true"
func (r Rule) String() string {
	var sb strings.Builder
	if r.Polarity > 0 {
		sb.WriteByte('+')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(strconv.Itoa(r.Clause))
	sb.WriteString(": ")
	if len(r.Literals) == 0 {
		sb.WriteString("true")
		return sb.String()
	}
	for i, k := range r.Literals {
		if i != 0 {
			sb.WriteString(" ∧ ")
		}
		if k&1 == 1 {
			sb.WriteString("¬")
		}
		sb.WriteByte('x')
		sb.WriteString(strconv.Itoa(k >> 1))
	}
	return sb.String()
}

// Rules lists the learned conjunction of every clause
func (m *Machine) Rules() []Rule {
	var rules = make([]Rule, m.clauses)
	for j := range rules {
		lits, _ := m.bank.Included(j)
		rules[j] = Rule{Clause: j, Polarity: clause.Polarity(j), Literals: lits}
	}
	return rules
}
