// Package mcis: algorithm selectors, tunable options and error definitions.
package mcis

import (
	"errors"
	"fmt"
	"time"

	"github.com/mcislab/mcis/core"
)

// Sentinel errors for search execution.
var (
	// ErrEmptyGraph is returned when no graphs are supplied or any supplied
	// graph has zero nodes.
	ErrEmptyGraph = errors.New("mcis: empty graph")

	// ErrInvalidAlgorithm is returned for an unknown algorithm selector.
	ErrInvalidAlgorithm = errors.New("mcis: invalid algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("mcis: invalid option value")
)

// Algorithm selects an MCIS solver.
type Algorithm int

const (
	// BronKerboschSerial is the product-graph clique search.
	BronKerboschSerial Algorithm = iota
	// KPT is the local-ratio hypergraph matching.
	KPT
)

// String renders the selector for logs and CLI output.
func (a Algorithm) String() string {
	switch a {
	case BronKerboschSerial:
		return "bron-kerbosch-serial"
	case KPT:
		return "kpt"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Defaults for the search knobs.
const (
	// DefaultNodeBudget bounds the product-graph vertex count; above it the
	// search degrades to the oversize heuristic.
	DefaultNodeBudget = 1000

	// DefaultTimeout bounds the Bron–Kerbosch recursion wall-clock.
	DefaultTimeout = 5000 * time.Millisecond

	// DefaultSizeCutoff prunes recursion once a clique beyond this size has
	// been emitted. Tuned to workload DAGs; changing it changes results.
	DefaultSizeCutoff = 10

	// DefaultAlphaFactor scales the KPT low-conflict threshold: α = factor·k.
	DefaultAlphaFactor = 2.0

	// DefaultEpsilon is the fractional-weight floor below which KPT drops a
	// hyperedge.
	DefaultEpsilon = 1e-9
)

// Option configures a search via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds every knob of a single search invocation.
type Options struct {
	// Tag restricts the search to nodes carrying this tag; inputs are
	// projected through core.Graph.SubgraphWithTag before dispatch.
	Tag string
	// HasTag distinguishes "no filter" from filtering by the empty tag.
	HasTag bool

	// NodeBudget is the maximum product-graph vertex count for the exact
	// search.
	NodeBudget int

	// Timeout bounds the Bron–Kerbosch recursion.
	Timeout time.Duration

	// SizeCutoff prunes recursion once an emitted clique exceeds it.
	SizeCutoff int

	// AlphaFactor scales the KPT conflict-sum threshold α = AlphaFactor·k.
	AlphaFactor float64

	// Epsilon is the KPT fractional-weight floor.
	Epsilon float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults and no tag
// filter.
func DefaultOptions() Options {
	return Options{
		NodeBudget:  DefaultNodeBudget,
		Timeout:     DefaultTimeout,
		SizeCutoff:  DefaultSizeCutoff,
		AlphaFactor: DefaultAlphaFactor,
		Epsilon:     DefaultEpsilon,
	}
}

// WithTag restricts the search to nodes whose tag equals tag.
func WithTag(tag string) Option {
	return func(o *Options) {
		o.Tag = tag
		o.HasTag = true
	}
}

// WithNodeBudget overrides the product-graph node budget; must be positive.
func WithNodeBudget(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: NodeBudget must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.NodeBudget = n
	}
}

// WithTimeout overrides the Bron–Kerbosch wall-clock bound; must be positive.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: Timeout must be positive (%v)", ErrOptionViolation, d)
			return
		}
		o.Timeout = d
	}
}

// WithSizeCutoff overrides the clique-size cutoff; must be positive.
func WithSizeCutoff(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: SizeCutoff must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.SizeCutoff = n
	}
}

// WithAlphaFactor overrides the KPT conflict-sum scale; must be positive.
func WithAlphaFactor(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: AlphaFactor must be positive (%g)", ErrOptionViolation, f)
			return
		}
		o.AlphaFactor = f
	}
}

// WithEpsilon overrides the KPT fractional-weight floor; must be
// non-negative.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: Epsilon cannot be negative (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// Finder is the capability shared by all solvers: given k input graphs and
// resolved options, produce zero or more output graphs.
//
// Implementations receive inputs already projected by tag. The inputs were
// checked non-empty before projection, so a projected graph can still have
// no nodes. Implementations own every derived structure they allocate and
// transfer the returned graphs to the caller.
type Finder interface {
	Find(graphs []*core.Graph, opts Options) ([]*core.Graph, error)
}
