// Package mcis: pivoted Bron–Kerbosch clique enumeration over the product
// graph.
//
// The recursion carries (R, P, X) as sorted index slices. Termination is
// governed by two policies: a wall-clock deadline checked at every entry,
// and a size cutoff that stops all further recursion once a clique larger
// than the cutoff has been emitted. When the deadline fires before any
// emission, a singleton clique over the first product vertex guarantees
// non-empty output.
package mcis

import (
	"sort"
	"strings"
	"time"

	"github.com/mcislab/mcis/core"
)

// bronKerbosch is the product-graph clique solver.
type bronKerbosch struct{}

// Find builds the modular product of the inputs, enumerates its maximal
// cliques, keeps the largest and materializes each into an output graph.
// Inputs whose product would exceed the node budget take the heuristic
// path instead.
func (bronKerbosch) Find(graphs []*core.Graph, opts Options) ([]*core.Graph, error) {
	pg := buildProductGraph(graphs, opts.NodeBudget)
	if pg == nil {
		return heuristicCommon(graphs), nil
	}
	if len(pg.nodes) == 0 {
		// A tag projection can empty every coordinate; nothing to search.
		return []*core.Graph{}, nil
	}

	cliques := findMaximalCliques(pg, opts.Timeout, opts.SizeCutoff)
	if len(cliques) == 0 {
		// Deadline fired before the first emission: fall back to a
		// singleton over the first product vertex.
		cliques = [][]int{{0}}
	}

	// Retain the maximum-size cliques only.
	maxSize := 0
	for _, c := range cliques {
		if len(c) > maxSize {
			maxSize = len(c)
		}
	}
	best := cliques[:0]
	for _, c := range cliques {
		if len(c) == maxSize {
			best = append(best, c)
		}
	}

	// Deterministic order among tied maxima: lexicographic over member
	// tuples.
	sort.Slice(best, func(i, j int) bool {
		return cliqueSignature(pg, best[i]) < cliqueSignature(pg, best[j])
	})

	out := make([]*core.Graph, 0, len(best))
	for _, c := range best {
		out = append(out, cliqueToSubgraph(pg, c, graphs))
	}

	return out, nil
}

// cliqueSignature joins member keys for ordering.
func cliqueSignature(pg *productGraph, clique []int) string {
	parts := make([]string, len(clique))
	for i, v := range clique {
		parts[i] = pg.nodes[v].key()
	}

	return strings.Join(parts, tupleSep)
}

// bkSearch holds the shared state of one enumeration.
type bkSearch struct {
	pg       *productGraph
	deadline time.Time
	cutoff   int

	cliques  [][]int
	overSize bool // an emitted clique exceeded the cutoff
}

// findMaximalCliques runs the pivoted recursion from (∅, V, ∅).
func findMaximalCliques(pg *productGraph, timeout time.Duration, cutoff int) [][]int {
	s := &bkSearch{pg: pg, deadline: time.Now().Add(timeout), cutoff: cutoff}

	p := make([]int, len(pg.nodes))
	for i := range p {
		p[i] = i
	}
	s.recurse(nil, p, nil)

	return s.cliques
}

// recurse explores one (R, P, X) state. All three slices are sorted
// ascending; candidates iterate in that order so tie-broken maxima are
// reproducible.
func (s *bkSearch) recurse(r, p, x []int) {
	// Termination controls, checked before any work.
	if s.overSize || time.Now().After(s.deadline) {
		return
	}

	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			clique := append([]int(nil), r...)
			sort.Ints(clique)
			s.cliques = append(s.cliques, clique)
			if len(clique) > s.cutoff {
				s.overSize = true
			}
		}
		return
	}

	// Pivot: vertex of P ∪ X with the largest neighborhood; ties go to the
	// first one met scanning P, then X, each in ascending order.
	pivot, pivotDeg := -1, -1
	for _, cand := range [2][]int{p, x} {
		for _, u := range cand {
			if d := s.pg.degree(u); d > pivotDeg {
				pivot, pivotDeg = u, d
			}
		}
	}

	// Branch over P \ N(pivot).
	candidates := make([]int, 0, len(p))
	for _, v := range p {
		if !s.pg.adjacent(pivot, v) {
			candidates = append(candidates, v)
		}
	}

	for _, v := range candidates {
		s.recurse(
			append(append([]int(nil), r...), v),
			intersectNeighbors(p, v, s.pg),
			intersectNeighbors(x, v, s.pg),
		)
		p = removeSorted(p, v)
		x = insertSorted(x, v)
	}
}

// intersectNeighbors returns set ∩ N(v), preserving sorted order.
func intersectNeighbors(set []int, v int, pg *productGraph) []int {
	out := make([]int, 0, len(set))
	for _, u := range set {
		if pg.adjacent(v, u) {
			out = append(out, u)
		}
	}

	return out
}

// removeSorted deletes v from a sorted slice.
func removeSorted(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	if i < len(set) && set[i] == v {
		return append(set[:i:i], set[i+1:]...)
	}

	return set
}

// insertSorted inserts v into a sorted slice.
func insertSorted(set []int, v int) []int {
	i := sort.SearchInts(set, v)
	out := make([]int, 0, len(set)+1)
	out = append(out, set[:i]...)
	out = append(out, v)
	out = append(out, set[i:]...)

	return out
}
