// Package mcis - unified dispatcher for MCIS solvers.
//
// Run and RunMany are the canonical entry points: they validate inputs,
// resolve options, project by tag when requested, and route to the chosen
// solver. Solver instances are stateless values, so the package-level
// registry is shared safely across calls.
package mcis

import "github.com/mcislab/mcis/core"

// finders maps every Algorithm selector to its solver instance.
var finders = map[Algorithm]Finder{
	BronKerboschSerial: bronKerbosch{},
	KPT:                kpt{},
}

// Run executes one MCIS solver over the input graphs.
//
// Contracts:
//   - graphs must be non-empty and every graph must have at least one node;
//     otherwise ErrEmptyGraph.
//   - An unknown algorithm selector yields ErrInvalidAlgorithm.
//   - With WithTag, every input is first projected through
//     SubgraphWithTag; the solver then runs on the projections.
//
// The returned graphs are owned by the caller; the dispatcher retains no
// reference to them.
func Run(graphs []*core.Graph, algo Algorithm, opts ...Option) ([]*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return run(graphs, algo, o)
}

// RunMany executes several solvers over the same inputs and returns one
// result slice per algorithm, in order. The first failing solver aborts the
// batch.
func RunMany(graphs []*core.Graph, algos []Algorithm, opts ...Option) ([][]*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	results := make([][]*core.Graph, 0, len(algos))
	for _, algo := range algos {
		res, err := run(graphs, algo, o)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// run validates, projects and dispatches with already-resolved options.
func run(graphs []*core.Graph, algo Algorithm, o Options) ([]*core.Graph, error) {
	if len(graphs) == 0 {
		return nil, ErrEmptyGraph
	}
	for _, g := range graphs {
		if g == nil || g.NodeCount() == 0 {
			return nil, ErrEmptyGraph
		}
	}

	finder, ok := finders[algo]
	if !ok {
		return nil, ErrInvalidAlgorithm
	}

	inputs := graphs
	if o.HasTag {
		inputs = make([]*core.Graph, len(graphs))
		for i, g := range graphs {
			inputs[i] = g.SubgraphWithTag(o.Tag)
		}
	}

	return finder.Find(inputs, o)
}
