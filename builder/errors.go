// Package builder: sentinel errors.
//
// Callers branch with errors.Is; implementations attach context with %w.
package builder

import "errors"

// ErrInvalidParameters indicates a factory parameter outside its domain
// (non-positive dimension, size not a power of two, unknown variant, ...).
var ErrInvalidParameters = errors.New("builder: invalid parameters")

// ErrInconsistentDimensions indicates that explicitly supplied inputs
// disagree in shape, e.g. a matrix row whose length differs from the vector.
var ErrInconsistentDimensions = errors.New("builder: inconsistent dimensions")
