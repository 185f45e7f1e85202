// Package config holds the hyperparameters of a Tsetlin machine and loads them from YAML
package config

import "errors"
import "fmt"
import "io"
import "log/slog"
import "os"
import "strings"

import "github.com/go-playground/validator/v10"
import "gopkg.in/yaml.v3"

// Defaults used by machine.WithDefaults and Default
const (
	DefaultSpecificity = 2.0
	DefaultThreshold   = 1.0
	DefaultDepth       = 100
	DefaultEpochs      = 100
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("even", validateEven)
}

// validateEven accepts even integers, clauses come in positive/negative pairs
func validateEven(fl validator.FieldLevel) bool {
	return fl.Field().Int()%2 == 0
}

type HyperParameters struct {
	Features    int     `yaml:"features" validate:"gt=0"`          // number of boolean input features
	Clauses     int     `yaml:"clauses" validate:"gt=0,even"`      // number of clauses, half of them vote against
	Specificity float64 `yaml:"specificity" validate:"gt=1"`       // s, larger values give shorter clauses
	Threshold   float64 `yaml:"threshold" validate:"gt=0"`         // T, clipping bound of the vote sum
	Depth       int     `yaml:"depth" validate:"gte=1,lte=32767"`  // N, states per automaton action
	Seed        *uint64 `yaml:"seed,omitempty"`                    // seed of the feedback generator, random if unset
	Epochs      int     `yaml:"epochs" validate:"gte=0"`           // passes over the training set
	Threads     int     `yaml:"threads" validate:"gte=0"`          // goroutines for batch inference
	LogLevel    string  `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// Default returns hyperparameters with every default filled in. Features and
// Clauses have no default and must be set.
func Default() HyperParameters {
	return HyperParameters{
		Specificity: DefaultSpecificity,
		Threshold:   DefaultThreshold,
		Depth:       DefaultDepth,
		Epochs:      DefaultEpochs,
		Threads:     1,
		LogLevel:    "info",
	}
}

// Validate checks every field
func (h *HyperParameters) Validate() error {
	if err := validate.Struct(h); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Parse decodes YAML on top of Default and validates the result
func Parse(data []byte) (h HyperParameters, err error) {
	h = Default()
	if err = yaml.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	err = h.Validate()
	return
}

// Load reads and parses a YAML file
func Load(path string) (HyperParameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HyperParameters{}, err
	}
	return Parse(data)
}

// Level maps LogLevel to a slog level, info when unset
func (h *HyperParameters) Level() slog.Level {
	switch strings.ToLower(h.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger returns a text logger writing to w at the configured level
func (h *HyperParameters) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: h.Level()}))
}
