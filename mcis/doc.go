// Package mcis computes Maximum Common Induced Subgraphs across k ≥ 2
// labeled directed graphs.
//
// Two solvers are provided behind a single dispatcher:
//
//   - BronKerboschSerial builds the k-ary modular product of the inputs and
//     enumerates its maximal cliques with pivoted Bron–Kerbosch. A clique
//     whose tuples differ in every coordinate corresponds to a common
//     induced subgraph; tuples may also share a node in a coordinate where
//     no edge is involved. The largest cliques are materialized into
//     concrete output graphs.
//   - KPT forms the k-partite conflict hypergraph over the inputs (conflict
//     meaning reachability in some coordinate) and extracts a conflict-free
//     matching by recursive local-ratio approximation.
//
// The search is cost-controlled: a wall-clock timeout and a clique-size
// cutoff bound the Bron–Kerbosch recursion, and inputs whose product graph
// would exceed the node budget degrade to a best-effort heuristic so a long
// job always returns something.
//
// Determinism: candidate sets, product vertices and cliques are kept in
// lexicographic order, so identical inputs produce identical outputs.
//
// Typical use:
//
//	results, err := mcis.Run([]*core.Graph{g1, g2}, mcis.BronKerboschSerial)
//
// Errors:
//
//	ErrEmptyGraph       - no inputs, or an input without nodes.
//	ErrInvalidAlgorithm - unknown algorithm selector.
package mcis
