// Package automaton implements the bank of Tsetlin automata, the learned state of the machine
package automaton

import "crypto/sha256"
import "encoding/binary"
import "errors"
import "fmt"
import "math/bits"

// MaxDepth is the largest supported depth N, states are stored as uint16 in [1, 2N]
const MaxDepth = 1<<15 - 1

// ErrIndexOutOfRange is returned when a (clause, literal) pair lies outside of the bank
var ErrIndexOutOfRange = errors.New("automaton index out of range")

// ErrInvalidSize is returned when the bank dimensions are not usable
var ErrInvalidSize = errors.New("invalid automaton bank size")

// Bank holds clauses x 2*features automata in one flat slice, indexed by
// clause*Literals()+literal. A packed include mask per clause mirrors the
// derived actions so that clauses can be evaluated a word at a time.
type Bank struct {
	states   []uint16
	include  []uint64
	clauses  int
	literals int
	words    int
	depth    uint16
}

// New creates a bank for features input features and clauses clauses where
// every automaton sits in state depth, the weakest Exclude state.
func New(features, clauses, depth int) (b *Bank, err error) {
	if features <= 0 || clauses <= 0 {
		return nil, fmt.Errorf("%w: features=%d clauses=%d", ErrInvalidSize, features, clauses)
	}
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: depth=%d not in [1, %d]", ErrInvalidSize, depth, MaxDepth)
	}
	b = new(Bank)
	b.clauses = clauses
	b.literals = 2 * features
	b.words = (b.literals + 63) / 64
	b.depth = uint16(depth)
	b.states = make([]uint16, clauses*b.literals)
	for i := range b.states {
		b.states[i] = b.depth
	}
	b.include = make([]uint64, clauses*b.words)
	return
}

// Clauses returns the number of clauses
func (b *Bank) Clauses() int {
	return b.clauses
}

// Literals returns the number of literals per clause (twice the features)
func (b *Bank) Literals() int {
	return b.literals
}

// Words returns the number of uint64 words in one packed include mask
func (b *Bank) Words() int {
	return b.words
}

// Depth returns N, the number of states per action
func (b *Bank) Depth() int {
	return int(b.depth)
}

func (b *Bank) check(j, k int) error {
	if j < 0 || j >= b.clauses || k < 0 || k >= b.literals {
		return fmt.Errorf("%w: clause %d literal %d (bank %dx%d)", ErrIndexOutOfRange, j, k, b.clauses, b.literals)
	}
	return nil
}

// Row returns the view of clause j
func (b *Bank) Row(j int) (Row, error) {
	if j < 0 || j >= b.clauses {
		return Row{}, fmt.Errorf("%w: clause %d (bank has %d clauses)", ErrIndexOutOfRange, j, b.clauses)
	}
	return b.row(j), nil
}

func (b *Bank) row(j int) Row {
	return Row{
		states:  b.states[j*b.literals : (j+1)*b.literals : (j+1)*b.literals],
		include: b.include[j*b.words : (j+1)*b.words : (j+1)*b.words],
		depth:   b.depth,
	}
}

// State returns the raw state of automaton (j, k), always in [1, 2N]
func (b *Bank) State(j, k int) (int, error) {
	if err := b.check(j, k); err != nil {
		return 0, err
	}
	return int(b.states[j*b.literals+k]), nil
}

// Action returns the action of automaton (j, k)
func (b *Bank) Action(j, k int) (Action, error) {
	if err := b.check(j, k); err != nil {
		return Exclude, err
	}
	return b.row(j).Action(k), nil
}

// Reward reinforces the current action of automaton (j, k)
func (b *Bank) Reward(j, k int) error {
	if err := b.check(j, k); err != nil {
		return err
	}
	b.row(j).Reward(k)
	return nil
}

// Penalize weakens the current action of automaton (j, k), possibly flipping it
func (b *Bank) Penalize(j, k int) error {
	if err := b.check(j, k); err != nil {
		return err
	}
	b.row(j).Penalize(k)
	return nil
}

// Included lists the literals currently included by clause j, in ascending order
func (b *Bank) Included(j int) (lits []int, err error) {
	r, err := b.Row(j)
	if err != nil {
		return nil, err
	}
	for w, word := range r.include {
		for word != 0 {
			lits = append(lits, w*64+bits.TrailingZeros64(word))
			word &= word - 1
		}
	}
	return
}

// IncludedCount counts included literals over the whole bank
func (b *Bank) IncludedCount() (n int) {
	for _, w := range b.include {
		n += bits.OnesCount64(w)
	}
	return
}

// Clone returns a deep copy of the bank
func (b *Bank) Clone() *Bank {
	var c = *b
	c.states = append([]uint16(nil), b.states...)
	c.include = append([]uint64(nil), b.include...)
	return &c
}

// Fingerprint hashes the dimensions and every automaton state. Two banks
// with equal fingerprints hold the same learned state.
func (b *Bank) Fingerprint() (ret [32]byte) {
	var sha = sha256.New()
	var header [12]byte
	binary.LittleEndian.PutUint32(header[0:], uint32(b.clauses))
	binary.LittleEndian.PutUint32(header[4:], uint32(b.literals))
	binary.LittleEndian.PutUint32(header[8:], uint32(b.depth))
	sha.Write(header[:])
	var buf [2]byte
	for _, s := range b.states {
		binary.LittleEndian.PutUint16(buf[:], s)
		sha.Write(buf[:])
	}
	copy(ret[:], sha.Sum(nil))
	return
}
