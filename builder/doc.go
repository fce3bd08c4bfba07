// Package builder constructs workload dataflow CDAGs on top of core.Graph.
//
// Three workload families are covered:
//
//   - MVM: matrix-vector multiplication, either from explicit matrix/vector
//     element names or from dimensions (MVMFromMatVec, MVMFromDimensions).
//   - FFT: radix-2 decimation-in-time Cooley–Tukey butterflies (FFT).
//   - Haar DWT: discrete wavelet transform pyramids, from dimensions or from
//     a concrete signal (HaarDWT, HaarDWTFromSignal).
//
// Each factory validates its parameters up front and returns only sentinel
// errors; a non-nil graph is always fully constructed. Node identifiers are
// deterministic for a given parameter set, so two calls with equal inputs
// produce equal graphs.
//
// Naming scheme: MVM uses the `v^<set>_<index>` convention (inputs live in
// set 1, products in set 2, accumulators in sets 3..n+1); FFT uses
// `x_<i>` inputs, `s<stage>_<i>` butterfly stages and `X_<i>` outputs; the
// DWT pyramid uses `s_<j>` signal nodes, `a^<level>_<j>` averages and
// `d^<level>_<j>` detail coefficients, all indices 0-based and levels
// 1-based.
package builder
