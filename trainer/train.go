package trainer

import "context"
import "errors"
import "fmt"
import "log/slog"
import "math/rand/v2"
import "os"
import "time"

import "github.com/google/uuid"

import "github.com/neurlang/tsetlin/config"

// ErrInvalidOptions is returned for unusable training options
var ErrInvalidOptions = errors.New("invalid training options")

// Learner is a model trained one epoch at a time. *machine.Machine implements it.
type Learner interface {
	Fit(features [][]bool, labels []bool, epochs int) error
	Evaluate(features [][]bool, labels []bool) (float64, error)
	Fingerprint() [32]byte
}

// AccuracyObserver receives the accuracy measured after every epoch
type AccuracyObserver interface {
	ObserveAccuracy(accuracy float64)
}

// Stop tells why training ended
type Stop byte

const (
	// StopEpochs means the epoch budget was used up
	StopEpochs Stop = iota
	// StopTarget means the target accuracy was reached
	StopTarget
	// StopStalled means accuracy did not improve for Patience epochs
	StopStalled
	// StopCanceled means the context was done
	StopCanceled
)

func (s Stop) String() string {
	switch s {
	case StopEpochs:
		return "epochs"
	case StopTarget:
		return "target"
	case StopStalled:
		return "stalled"
	case StopCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Options controls Train
type Options struct {
	Epochs         int     // upper bound on epochs
	TargetAccuracy float64 // stop once accuracy reaches it, 0 disables
	Patience       int     // stop after this many epochs without a better accuracy, 0 disables

	// ShuffleSeed reshuffles the samples before every epoch when set. The
	// caller's slices are never reordered.
	ShuffleSeed *uint64

	// Holdout is evaluated instead of the training set when set
	HoldoutFeatures [][]bool
	HoldoutLabels   []bool

	Observer AccuracyObserver
	Logger   *slog.Logger
}

// Report summarizes a Train call
type Report struct {
	RunID     string  // identifies the run in logs
	Epochs    int     // epochs actually run
	Accuracy  float64 // accuracy after the last epoch
	Best      float64 // best accuracy seen
	BestEpoch int
	Stopped   Stop
	State     [32]byte // fingerprint of the learner after the last epoch
	Elapsed   time.Duration
}

// FromConfig returns the options a configuration file asks for: its epoch
// budget and, when LogLevel is set, a stderr logger at that level.
func FromConfig(h config.HyperParameters) (o Options) {
	o.Epochs = h.Epochs
	if h.LogLevel != "" {
		o.Logger = h.NewLogger(os.Stderr)
	}
	return
}

func (o *Options) validate() error {
	switch {
	case o.Epochs < 0:
		return fmt.Errorf("%w: epochs must not be negative, got %d", ErrInvalidOptions, o.Epochs)
	case o.TargetAccuracy < 0 || o.TargetAccuracy > 1:
		return fmt.Errorf("%w: target accuracy must be within [0, 1], got %v", ErrInvalidOptions, o.TargetAccuracy)
	case o.Patience < 0:
		return fmt.Errorf("%w: patience must not be negative, got %d", ErrInvalidOptions, o.Patience)
	case len(o.HoldoutFeatures) != len(o.HoldoutLabels):
		return fmt.Errorf("%w: %d holdout rows but %d labels", ErrInvalidOptions, len(o.HoldoutFeatures), len(o.HoldoutLabels))
	}
	return nil
}

// Train fits l for up to opts.Epochs epochs. On cancellation the report so
// far is returned together with the context error.
func Train(ctx context.Context, l Learner, features [][]bool, labels []bool, opts Options) (r Report, err error) {
	if err = opts.validate(); err != nil {
		return
	}
	if len(features) != len(labels) {
		return r, fmt.Errorf("%w: %d rows but %d labels", ErrInvalidOptions, len(features), len(labels))
	}
	var logger = opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r.RunID = uuid.NewString()
	logger = logger.With(slog.String("run", r.RunID))
	var evalX, evalY = features, labels
	if opts.HoldoutFeatures != nil {
		evalX, evalY = opts.HoldoutFeatures, opts.HoldoutLabels
	}

	var order *shuffler
	if opts.ShuffleSeed != nil {
		order = newShuffler(*opts.ShuffleSeed, features, labels)
	}

	logger.Info("training started",
		slog.Int("rows", len(features)),
		slog.Int("epochs", opts.Epochs),
		slog.Bool("shuffle", order != nil))

	var start = time.Now()
	var stale int
	r.Stopped = StopEpochs
	r.State = l.Fingerprint()
	defer func() {
		r.Elapsed = time.Since(start)
	}()

	for r.Epochs < opts.Epochs {
		if err = ctx.Err(); err != nil {
			r.Stopped = StopCanceled
			logger.Warn("training canceled", slog.Int("epoch", r.Epochs), slog.Any("error", err))
			return
		}
		var x, y = features, labels
		if order != nil {
			x, y = order.next()
		}
		if err = l.Fit(x, y, 1); err != nil {
			return r, fmt.Errorf("epoch %d: %w", r.Epochs+1, err)
		}
		r.Epochs++
		if r.Accuracy, err = l.Evaluate(evalX, evalY); err != nil {
			return r, fmt.Errorf("epoch %d: %w", r.Epochs, err)
		}
		r.State = l.Fingerprint()
		if opts.Observer != nil {
			opts.Observer.ObserveAccuracy(r.Accuracy)
		}
		logger.Debug("epoch evaluated",
			slog.Int("epoch", r.Epochs),
			slog.Float64("accuracy", r.Accuracy),
			slog.String("state", fmt.Sprintf("%x", r.State[:8])))

		if r.BestEpoch == 0 || r.Accuracy > r.Best {
			r.Best, r.BestEpoch, stale = r.Accuracy, r.Epochs, 0
		} else {
			stale++
		}
		if opts.TargetAccuracy > 0 && r.Accuracy >= opts.TargetAccuracy {
			r.Stopped = StopTarget
			break
		}
		if opts.Patience > 0 && stale >= opts.Patience {
			r.Stopped = StopStalled
			break
		}
	}

	logger.Info("training stopped",
		slog.String("reason", r.Stopped.String()),
		slog.Int("epochs", r.Epochs),
		slog.Float64("accuracy", r.Accuracy),
		slog.Float64("best", r.Best),
		slog.Int("best_epoch", r.BestEpoch))
	return
}

// shuffler reorders views of the samples, the backing rows are shared
type shuffler struct {
	rng      *rand.Rand
	perm     []int
	features [][]bool
	labels   []bool
	x        [][]bool
	y        []bool
}

func newShuffler(seed uint64, features [][]bool, labels []bool) *shuffler {
	var s = &shuffler{
		rng:      rand.New(rand.NewPCG(seed, ^seed)),
		perm:     make([]int, len(features)),
		features: features,
		labels:   labels,
		x:        make([][]bool, len(features)),
		y:        make([]bool, len(labels)),
	}
	for i := range s.perm {
		s.perm[i] = i
	}
	return s
}

func (s *shuffler) next() ([][]bool, []bool) {
	s.rng.Shuffle(len(s.perm), func(i, j int) { s.perm[i], s.perm[j] = s.perm[j], s.perm[i] })
	for i, p := range s.perm {
		s.x[i] = s.features[p]
		s.y[i] = s.labels[p]
	}
	return s.x, s.y
}
