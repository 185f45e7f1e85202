package machine

import "errors"

// ErrInvalidConfig is returned for unusable constructor parameters
var ErrInvalidConfig = errors.New("invalid tsetlin machine configuration")

// ErrShapeMismatch is returned when features, labels and the machine disagree on dimensions
var ErrShapeMismatch = errors.New("shape mismatch")
