// Package machine implements the binary Tsetlin machine: construction, training and inference
package machine

import crypto_rand "crypto/rand"
import "encoding/binary"
import "fmt"
import "log/slog"
import "math"
import "math/rand/v2"
import "os"
import "time"

import "github.com/neurlang/tsetlin/automaton"
import "github.com/neurlang/tsetlin/config"
import "github.com/neurlang/tsetlin/feedback"

// pcgStream is xored into the seed to derive the second PCG word
const pcgStream = 0x9e3779b97f4a7c15

// Machine is a binary Tsetlin machine. Fit mutates it and must not run
// concurrently with anything else; Predict, PredictSingle, Score and Evaluate
// are read-only and may run concurrently once training has stopped.
type Machine struct {
	bank     *automaton.Bank
	features int
	clauses  int
	engine   feedback.Engine
	seed     uint64
	logger   *slog.Logger
	observer Observer
	threads  int
}

// New creates a machine for numFeatures boolean features with numClauses
// clauses (even, half of them vote for the negative class), specificity s > 1
// and threshold T > 0. Every automaton starts in the weakest Exclude state.
func New(numFeatures, numClauses int, specificity, threshold float64, opts ...Option) (m *Machine, err error) {
	var o = defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case numFeatures <= 0:
		return nil, fmt.Errorf("%w: num_features must be positive, got %d", ErrInvalidConfig, numFeatures)
	case numClauses <= 0 || numClauses%2 != 0:
		return nil, fmt.Errorf("%w: num_clauses must be positive and even, got %d", ErrInvalidConfig, numClauses)
	case !(specificity > 1) || math.IsInf(specificity, 1):
		return nil, fmt.Errorf("%w: specificity must be finite and > 1, got %v", ErrInvalidConfig, specificity)
	case !(threshold > 0) || math.IsInf(threshold, 1):
		return nil, fmt.Errorf("%w: threshold must be finite and > 0, got %v", ErrInvalidConfig, threshold)
	case o.threads < 0:
		return nil, fmt.Errorf("%w: threads must not be negative, got %d", ErrInvalidConfig, o.threads)
	}
	bank, err := automaton.New(numFeatures, numClauses, o.depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var src = o.source
	if src == nil {
		if !o.seeded {
			o.seed = randomSeed()
		}
		src = rand.New(rand.NewPCG(o.seed, o.seed^pcgStream))
	}

	m = &Machine{
		bank:     bank,
		features: numFeatures,
		clauses:  numClauses,
		engine: feedback.Engine{
			Specificity: specificity,
			Threshold:   threshold,
			Rand:        src,
		},
		seed:     o.seed,
		logger:   o.logger,
		observer: o.observer,
		threads:  o.threads,
	}
	return
}

// WithDefaults creates a machine with specificity 2.0, threshold 1.0 and depth 100
func WithDefaults(numFeatures, numClauses int, opts ...Option) (*Machine, error) {
	return New(numFeatures, numClauses, config.DefaultSpecificity, config.DefaultThreshold, opts...)
}

// FromConfig creates a machine from validated hyperparameters. A set LogLevel
// logs to stderr at that level. opts are applied after the ones derived from h.
func FromConfig(h config.HyperParameters, opts ...Option) (*Machine, error) {
	if err := h.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	var base = []Option{WithDepth(h.Depth), WithThreads(h.Threads)}
	if h.Seed != nil {
		base = append(base, WithSeed(*h.Seed))
	}
	if h.LogLevel != "" {
		base = append(base, WithLogger(h.NewLogger(os.Stderr)))
	}
	return New(h.Features, h.Clauses, h.Specificity, h.Threshold, append(base, opts...)...)
}

// randomSeed seeds from the system rng, the seed is kept so the run can be replayed
func randomSeed() uint64 {
	var b [8]byte
	if _, err := crypto_rand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// NumFeatures returns F
func (m *Machine) NumFeatures() int {
	return m.features
}

// NumClauses returns M
func (m *Machine) NumClauses() int {
	return m.clauses
}

// Specificity returns s
func (m *Machine) Specificity() float64 {
	return m.engine.Specificity
}

// Threshold returns T
func (m *Machine) Threshold() float64 {
	return m.engine.Threshold
}

// Depth returns N
func (m *Machine) Depth() int {
	return m.bank.Depth()
}

// Seed returns the seed of the feedback generator. It is meaningless when WithRand was used.
func (m *Machine) Seed() uint64 {
	return m.seed
}

// Bank returns a copy of the automaton bank
func (m *Machine) Bank() *automaton.Bank {
	return m.bank.Clone()
}

// Fingerprint hashes the learned state, see automaton.Bank.Fingerprint
func (m *Machine) Fingerprint() [32]byte {
	return m.bank.Fingerprint()
}

func (m *Machine) checkRows(features [][]bool) error {
	for i, row := range features {
		if len(row) != m.features {
			return fmt.Errorf("%w: row %d has %d features, machine expects %d", ErrShapeMismatch, i, len(row), m.features)
		}
	}
	return nil
}

func (m *Machine) checkShape(features [][]bool, labels []bool) error {
	if len(features) != len(labels) {
		return fmt.Errorf("%w: %d rows but %d labels", ErrShapeMismatch, len(features), len(labels))
	}
	return m.checkRows(features)
}
