package machine

import "log/slog"
import "time"

import "github.com/neurlang/tsetlin/config"
import "github.com/neurlang/tsetlin/feedback"

// EpochStats describes one finished training epoch
type EpochStats struct {
	Epoch    int            // 1-based epoch number within the Fit call
	Samples  int            // samples seen in the epoch
	Feedback feedback.Stats // feedback applied during the epoch
	Included int            // literals included over the whole bank after the epoch
	Duration time.Duration
}

// Observer is notified after each epoch of Fit. It runs on the training goroutine.
type Observer interface {
	ObserveEpoch(EpochStats)
}

// Option customizes a machine at construction
type Option func(*options)

type options struct {
	depth    int
	seed     uint64
	seeded   bool
	source   feedback.Source
	logger   *slog.Logger
	observer Observer
	threads  int
}

func defaultOptions() options {
	return options{
		depth:   config.DefaultDepth,
		logger:  slog.New(slog.DiscardHandler),
		threads: 1,
	}
}

// WithDepth sets N, the number of states per automaton action
func WithDepth(depth int) Option {
	return func(o *options) {
		o.depth = depth
	}
}

// WithSeed seeds the feedback generator, making training reproducible for a fixed sample order
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithRand replaces the feedback generator, WithSeed is ignored when set
func WithRand(src feedback.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLogger sets the structured logger, the machine is silent by default
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithObserver registers an observer of training epochs
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithThreads sets the number of goroutines Predict and Evaluate may use
func WithThreads(threads int) Option {
	return func(o *options) {
		o.threads = threads
	}
}
