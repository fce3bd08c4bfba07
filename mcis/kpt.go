// Package mcis: KPT local-ratio hypergraph matching.
//
// The k-partite conflict hypergraph has one hyperedge per tuple of the
// inputs' node Cartesian product. Two hyperedges conflict when they are
// equal or when, in some coordinate, one endpoint can reach the other
// (directed BFS). The recursive local-ratio procedure peels weight off the
// neighborhood of a low-conflict edge until every remaining edge is either
// dropped or matched; the result is a conflict-free matching rendered as a
// single output graph of correspondence nodes.
package mcis

import (
	"errors"
	"strings"

	"github.com/mcislab/mcis/core"
)

// kpt is the hypergraph-matching solver.
type kpt struct{}

// Find enumerates the hyperedge set, runs the local-ratio matching and
// renders the correspondence graph. Degenerate states (a projection left
// some coordinate empty, or the matching came back empty) yield an empty
// result list rather than an error.
func (kpt) Find(graphs []*core.Graph, opts Options) ([]*core.Graph, error) {
	lists := make([][]string, len(graphs))
	for i, g := range graphs {
		lists[i] = g.NodeIDs()
		if len(lists[i]) == 0 {
			return []*core.Graph{}, nil
		}
	}

	edges := enumerateHyperedges(lists)
	oracle := newConflictOracle(graphs, edges)

	weights := make([]float64, len(edges))
	for i := range weights {
		weights[i] = 1.0
	}
	active := make([]int, len(edges))
	for i := range active {
		active[i] = i
	}

	alpha := opts.AlphaFactor * float64(len(graphs))
	matching := localRatioMatch(active, weights, oracle, alpha, opts.Epsilon)
	if len(matching) == 0 {
		return []*core.Graph{}, nil
	}

	out := core.NewGraph()
	out.ReserveNodes(len(matching))
	for _, e := range matching {
		id := strings.Join(edges[e], "_")
		if err := out.AddNode(id); err != nil && !errors.Is(err, core.ErrNodeExists) {
			return nil, err
		}
	}

	return []*core.Graph{out}, nil
}

// enumerateHyperedges emits the Cartesian product of the per-coordinate ID
// lists in lexicographic order.
func enumerateHyperedges(lists [][]string) []productTuple {
	var edges []productTuple
	counters := make([]int, len(lists))
	for {
		tuple := make(productTuple, len(lists))
		for i, c := range counters {
			tuple[i] = lists[i][c]
		}
		edges = append(edges, tuple)

		i := len(counters) - 1
		for ; i >= 0; i-- {
			counters[i]++
			if counters[i] < len(lists[i]) {
				break
			}
			counters[i] = 0
		}
		if i < 0 {
			break
		}
	}

	return edges
}

// conflictOracle memoises pairwise hyperedge conflicts and per-source
// reachability closures.
type conflictOracle struct {
	graphs []*core.Graph
	edges  []productTuple

	// pair[i][j] caches conflict(i,j); the relation is symmetric.
	pair []map[int]bool
	// reach[g][src] is the closure of nodes reachable from src in graph g.
	reach []map[string]map[string]struct{}
}

func newConflictOracle(graphs []*core.Graph, edges []productTuple) *conflictOracle {
	o := &conflictOracle{
		graphs: graphs,
		edges:  edges,
		pair:   make([]map[int]bool, len(edges)),
		reach:  make([]map[string]map[string]struct{}, len(graphs)),
	}
	for i := range o.pair {
		o.pair[i] = make(map[int]bool)
	}
	for i := range o.reach {
		o.reach[i] = make(map[string]map[string]struct{})
	}

	return o
}

// conflicting reports whether hyperedges i and j conflict: equality, or
// reachability between their endpoints in any coordinate, in either
// direction.
func (o *conflictOracle) conflicting(i, j int) bool {
	if i == j {
		return true
	}
	if i > j {
		i, j = j, i
	}
	if v, ok := o.pair[i][j]; ok {
		return v
	}

	p, q := o.edges[i], o.edges[j]
	result := false
	for g := range o.graphs {
		if o.reachable(g, p[g], q[g]) || o.reachable(g, q[g], p[g]) {
			result = true
			break
		}
	}
	o.pair[i][j] = result

	return result
}

// reachable reports whether end is reachable from start in graph g,
// following children only. A node reaches itself. The full closure from
// start is computed once and memoised.
func (o *conflictOracle) reachable(g int, start, end string) bool {
	if start == end {
		return true
	}
	closure, ok := o.reach[g][start]
	if !ok {
		closure = bfsClosure(o.graphs[g], start)
		o.reach[g][start] = closure
	}
	_, hit := closure[end]

	return hit
}

// bfsClosure collects every node reachable from start. start itself is
// never included, even when a cycle returns to it; reachable handles
// start == end on its own.
func bfsClosure(g *core.Graph, start string) map[string]struct{} {
	closure := make(map[string]struct{})
	queue := []string{start}
	visited := map[string]struct{}{start: {}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n := g.Node(cur)
		if n == nil {
			continue
		}
		for _, child := range n.Children() {
			if _, seen := visited[child]; seen {
				continue
			}
			visited[child] = struct{}{}
			closure[child] = struct{}{}
			queue = append(queue, child)
		}
	}

	return closure
}

// localRatioMatch implements the recursive local-ratio procedure over the
// active hyperedge indices and their weights:
//
//  1. empty set or zero total weight → empty matching
//  2. fractional weights x(e) = w(e)/Σw
//  3. drop edges with x(e) ≤ ε and recurse on the survivors
//  4. pick the first edge whose conflicting fractional mass is ≤ α
//     (falling back to the first active edge)
//  5. peel min(w(f), w(e)) off every conflicting f and recurse
//  6. keep the picked edge iff it conflicts with nothing already matched
//
// Depth is finite: step 5 zeroes the picked edge's own weight (every edge
// conflicts with itself), so step 3 removes it on the next level.
func localRatioMatch(active []int, w []float64, oracle *conflictOracle, alpha, eps float64) []int {
	if len(active) == 0 {
		return nil
	}

	total := 0.0
	for _, e := range active {
		total += w[e]
	}
	if total == 0 {
		return nil
	}

	x := make(map[int]float64, len(active))
	for _, e := range active {
		x[e] = w[e] / total
	}

	// Drop near-zero edges first.
	survivors := make([]int, 0, len(active))
	for _, e := range active {
		if x[e] > eps {
			survivors = append(survivors, e)
		}
	}
	if len(survivors) < len(active) {
		return localRatioMatch(survivors, w, oracle, alpha, eps)
	}

	// Low-conflict edge selection.
	selected := active[0]
	for _, e := range active {
		conflictSum := 0.0
		for _, q := range active {
			if oracle.conflicting(e, q) {
				conflictSum += x[q]
			}
		}
		if conflictSum <= alpha {
			selected = e
			break
		}
	}

	// Local-ratio step: subtract min(w(f), w(selected)) from every
	// conflicting f.
	next := make([]float64, len(w))
	copy(next, w)
	we := w[selected]
	for _, f := range active {
		if oracle.conflicting(selected, f) {
			peel := w[f]
			if we < peel {
				peel = we
			}
			next[f] -= peel
		}
	}

	matched := localRatioMatch(active, next, oracle, alpha, eps)

	for _, m := range matched {
		if oracle.conflicting(selected, m) {
			return matched
		}
	}

	return append(matched, selected)
}
