// Package mcis: k-ary modular product graph construction.
//
// Vertices are k-tuples of node IDs, one coordinate per input graph, in
// lexicographic order. Two vertices are adjacent when the symmetric
// edge-existence predicate is uniform across all coordinates: either every
// coordinate carries an edge (in one direction or the other) or none does.
// A clique whose tuples differ in every coordinate describes a common
// induced subgraph of the inputs. A repeated coordinate counts as
// edge-absent, so a clique can also hold tuples that share a node in some
// coordinate; such a clique is not a one-to-one node mapping.
package mcis

import (
	"strings"

	"github.com/mcislab/mcis/core"
)

// tupleSep joins coordinate IDs into internal map keys. It never occurs in
// node identifiers, unlike the underscore used for output labels.
const tupleSep = "\x1f"

// productTuple is an ordered k-tuple of node IDs.
type productTuple []string

// key renders the collision-free internal identifier.
func (t productTuple) key() string { return strings.Join(t, tupleSep) }

// label renders the output node identifier, coordinates joined by
// underscores.
func (t productTuple) label() string { return strings.Join(t, "_") }

// productGraph stores tuples in lexicographic order with symmetric
// adjacency over tuple indices.
type productGraph struct {
	nodes []productTuple
	adj   []map[int]struct{}
}

// degree returns |N(v)|.
func (pg *productGraph) degree(v int) int { return len(pg.adj[v]) }

// adjacent reports whether tuple indices u and v are neighbors.
func (pg *productGraph) adjacent(u, v int) bool {
	_, ok := pg.adj[u][v]
	return ok
}

// productSize returns the number of product vertices without generating
// them, guarding against overflow past the budget.
func productSize(graphs []*core.Graph, budget int) int {
	size := 1
	for _, g := range graphs {
		n := g.NodeCount()
		if n == 0 {
			return 0
		}
		if size > budget/n+1 {
			return budget + 1 // already past the budget; exact value irrelevant
		}
		size *= n
	}

	return size
}

// buildProductGraph enumerates the full Cartesian product of the inputs'
// node IDs and wires modular-product adjacency. Returns nil when the vertex
// count would exceed budget; the caller then falls back to the heuristic.
// An input without nodes yields a product graph with no vertices.
// Complexity: O(V²·k) for V product vertices.
func buildProductGraph(graphs []*core.Graph, budget int) *productGraph {
	if productSize(graphs, budget) > budget {
		return nil
	}

	// Sorted per-coordinate ID lists make odometer enumeration emit tuples
	// in lexicographic order.
	lists := make([][]string, len(graphs))
	for i, g := range graphs {
		lists[i] = g.NodeIDs()
		if len(lists[i]) == 0 {
			// An input without nodes has an empty product.
			return &productGraph{}
		}
	}

	pg := &productGraph{}
	counters := make([]int, len(lists))
	for {
		tuple := make(productTuple, len(lists))
		for i, c := range counters {
			tuple[i] = lists[i][c]
		}
		pg.nodes = append(pg.nodes, tuple)

		// Advance the odometer, least-significant coordinate last.
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

	pg.adj = make([]map[int]struct{}, len(pg.nodes))
	for i := range pg.adj {
		pg.adj[i] = make(map[int]struct{})
	}
	for u := 0; u < len(pg.nodes); u++ {
		for v := u + 1; v < len(pg.nodes); v++ {
			if tuplesAdjacent(pg.nodes[u], pg.nodes[v], graphs) {
				pg.adj[u][v] = struct{}{}
				pg.adj[v][u] = struct{}{}
			}
		}
	}

	return pg
}

// tuplesAdjacent applies the modular-product edge rule: the symmetric
// edge-existence predicate must agree in every coordinate. Coordinates with
// equal endpoints count as edge-absent (self-loops are forbidden), so two
// tuples sharing a node in some coordinate are adjacent exactly when no
// coordinate carries an edge.
func tuplesAdjacent(p, q productTuple, graphs []*core.Graph) bool {
	first := symmetricEdge(graphs[0], p[0], q[0])
	for i := 1; i < len(graphs); i++ {
		if symmetricEdge(graphs[i], p[i], q[i]) != first {
			return false
		}
	}

	return true
}

// symmetricEdge reports edge existence in either direction.
func symmetricEdge(g *core.Graph, a, b string) bool {
	return g.HasEdge(a, b) || g.HasEdge(b, a)
}
