// Package mcis is a toolkit for discovering shared computational-dataflow
// structure across compute DAGs.
//
// 🚀 What is mcis?
//
//	A deterministic, in-memory library that brings together:
//		• Core primitives: labeled directed graphs with tagged nodes and
//		  weighted edges, mutated safely under locks
//		• Workload factories: matrix-vector multiplication, Cooley–Tukey FFT
//		  and Haar wavelet transform dataflow CDAGs
//		• MCIS search: k-ary modular product graph + pivoted Bron–Kerbosch
//		  clique enumeration with timeout and size-cutoff policies
//		• KPT: local-ratio hypergraph matching as an alternative solver
//		• DOT rendering for every graph the toolkit produces
//
// ✨ Why mcis?
//
//   - Reproducible – ordered traversal everywhere; identical inputs give
//     identical outputs, run after run
//   - Bounded – wall-clock timeout, clique-size cutoff and a product-graph
//     node budget keep worst-case searches from running away
//   - Small API – errors are sentinel values, knobs are functional options
//
// Everything is organized under four subpackages and one command:
//
//	core/    — fundamental Graph and Node types & thread-safe primitives
//	builder/ — MVM / FFT / Haar-DWT workload CDAG factories
//	mcis/    — product graph, Bron–Kerbosch, KPT and the search dispatcher
//	viz/     — Graphviz DOT emission
//	cmd/mcisfind — CLI driver for end-to-end searches
//
// Quick ASCII example — two triangles share all three nodes:
//
//	A───B        X───Y
//	 \  │         \  │
//	  \ │          \ │
//	    C            Z
package mcis
