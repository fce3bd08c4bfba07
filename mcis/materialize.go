// Package mcis: clique-to-subgraph materialization.
//
// A clique in the product graph is symmetric evidence (edge or non-edge
// uniform across coordinates); the materialized output keeps only the
// unambiguous dataflow edges, the strict directional intersection across
// every input.
package mcis

import (
	"errors"

	"github.com/mcislab/mcis/core"
)

// cliqueToSubgraph converts one clique into a concrete output graph. Every
// member tuple becomes a node labeled with its coordinates joined by
// underscores; a directed edge p→q (weight 1) is added iff the coordinate
// edge p_i→q_i exists in input i for every coordinate.
func cliqueToSubgraph(pg *productGraph, clique []int, graphs []*core.Graph) *core.Graph {
	out := core.NewGraph()
	out.ReserveNodes(len(clique))

	for _, v := range clique {
		if err := out.AddNode(pg.nodes[v].label()); err != nil && !errors.Is(err, core.ErrNodeExists) {
			// Label collisions between distinct tuples collapse to one node.
			continue
		}
	}

	for _, p := range clique {
		for _, q := range clique {
			if p == q {
				continue
			}
			src, dst := pg.nodes[p], pg.nodes[q]
			if src.label() == dst.label() {
				continue
			}
			if directedEverywhere(src, dst, graphs) {
				// Weight is fixed at 1; coordinate weights are ignored by
				// the matching semantics.
				_ = out.AddEdge(src.label(), dst.label(), 1)
			}
		}
	}

	return out
}

// directedEverywhere reports whether p_i→q_i exists in every input.
func directedEverywhere(p, q productTuple, graphs []*core.Graph) bool {
	for i, g := range graphs {
		if !g.HasEdge(p[i], q[i]) {
			return false
		}
	}

	return true
}
