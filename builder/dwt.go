// Package builder: Haar discrete wavelet transform CDAG factory.
//
// A d-level Haar DWT repeatedly halves its input: level i pairs the level
// i-1 averages (level 0 being the signal) and produces one running average
// a^i_j and one detail coefficient d^i_j per pair. The factory emits two
// pyramid shapes:
//
//	pruned average     — signal + the full average pyramid a^1..a^d
//	pruned coefficient — signal + averages up to level d-1 + the detail
//	                     nodes d^1..d^d each fed by its two source averages
//
// With k > 1 the signal splits into k independent blocks of n/k samples and
// every block carries its own d-level pyramid; global indices keep node
// names unique across blocks.
package builder

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"

	"github.com/mcislab/mcis/core"
)

// WaveletVariant selects which DWT pyramid graphs a factory call returns.
type WaveletVariant int

const (
	// Both returns the average pyramid followed by the coefficient pyramid.
	Both WaveletVariant = iota
	// PrunedAverage returns only the average pyramid.
	PrunedAverage
	// PrunedCoefficient returns only the coefficient pyramid.
	PrunedCoefficient
)

var sqrt2 = math.Sqrt(2)

// HaarDWT builds the Haar DWT CDAG(s) for an n-sample signal decomposed
// over d levels in k independent blocks. Parameters must satisfy n > 0,
// d > 0, k > 0 and n ≡ 0 (mod k·2^d); otherwise ErrInvalidParameters.
//
// The returned slice holds the average graph, the coefficient graph, or
// both, according to variant.
// Complexity: O(n·d) nodes and edges overall.
func HaarDWT(n, d, k int, variant WaveletVariant) ([]*core.Graph, error) {
	if n <= 0 || d <= 0 || k <= 0 || d >= 63 || n%(k*(1<<uint(d))) != 0 {
		return nil, fmt.Errorf("HaarDWT: n=%d d=%d k=%d: %w", n, d, k, ErrInvalidParameters)
	}

	return buildDWT(n, d, k, variant, nil)
}

// HaarDWTFromSignal builds the Haar DWT CDAG(s) of a concrete signal whose
// length must be a power of two of at least 2; otherwise
// ErrInvalidParameters. Node tags carry the computed
// values: the signal samples on s_j, the running averages on a^i_j and the
// detail coefficients on d^i_j.
//
// The decomposition depth is log2(len(signal)) with a single block.
func HaarDWTFromSignal(signal []float64, variant WaveletVariant) ([]*core.Graph, error) {
	n := len(signal)
	if n <= 1 || n&(n-1) != 0 {
		return nil, fmt.Errorf("HaarDWTFromSignal: len=%d is not a power of two > 1: %w", n, ErrInvalidParameters)
	}
	d := bits.Len(uint(n)) - 1

	return buildDWT(n, d, 1, variant, signal)
}

// dwtValues holds the computed pyramid when building from a signal.
// averages[i-1] and coefficients[i-1] belong to level i.
type dwtValues struct {
	signal       []float64
	averages     [][]float64
	coefficients [][]float64
}

// computeDWTValues runs the cascade: level 1 from the signal, level i from
// the level i-1 averages, each pair scaled by 1/√2.
func computeDWTValues(signal []float64, d int) *dwtValues {
	v := &dwtValues{
		signal:       signal,
		averages:     make([][]float64, d),
		coefficients: make([][]float64, d),
	}
	prev := signal
	for i := 0; i < d; i++ {
		size := len(prev) / 2
		v.averages[i] = make([]float64, size)
		v.coefficients[i] = make([]float64, size)
		for j := 0; j < size; j++ {
			v.averages[i][j] = (prev[2*j] + prev[2*j+1]) / sqrt2
			v.coefficients[i][j] = (prev[2*j] - prev[2*j+1]) / sqrt2
		}
		prev = v.averages[i]
	}

	return v
}

// buildDWT constructs the requested pyramid graphs. values is nil for the
// dimension-only path; when present, nodes are tagged with their values.
func buildDWT(n, d, k int, variant WaveletVariant, signal []float64) ([]*core.Graph, error) {
	var values *dwtValues
	if signal != nil {
		values = computeDWTValues(signal, d)
	}

	switch variant {
	case Both:
		avg, err := buildDWTPyramid(n, d, k, false, values)
		if err != nil {
			return nil, err
		}
		coeff, err := buildDWTPyramid(n, d, k, true, values)
		if err != nil {
			return nil, err
		}
		return []*core.Graph{avg, coeff}, nil
	case PrunedAverage:
		avg, err := buildDWTPyramid(n, d, k, false, values)
		if err != nil {
			return nil, err
		}
		return []*core.Graph{avg}, nil
	case PrunedCoefficient:
		coeff, err := buildDWTPyramid(n, d, k, true, values)
		if err != nil {
			return nil, err
		}
		return []*core.Graph{coeff}, nil
	default:
		return nil, fmt.Errorf("HaarDWT: variant=%d: %w", variant, ErrInvalidParameters)
	}
}

// buildDWTPyramid emits one pyramid. When coefficient is false the average
// pyramid spans levels 1..d; when true, averages stop at level d-1 and
// detail nodes d^i_j are attached at every level 1..d.
func buildDWTPyramid(n, d, k int, coefficient bool, values *dwtValues) (*core.Graph, error) {
	g := core.NewGraph()
	block := n / k // samples per block, divisible by 2^d

	// Signal row.
	for j := 0; j < n; j++ {
		if err := g.AddNode(dwtSignalID(j)); err != nil {
			return nil, fmt.Errorf("HaarDWT: %w", err)
		}
		if values != nil {
			if err := g.SetNodeTag(dwtSignalID(j), formatDWTValue(values.signal[j])); err != nil {
				return nil, fmt.Errorf("HaarDWT: %w", err)
			}
		}
	}

	// Average levels. The coefficient pyramid keeps them only as feeders,
	// so its deepest average level is d-1.
	avgLevels := d
	if coefficient {
		avgLevels = d - 1
	}
	for i := 1; i <= avgLevels; i++ {
		if err := addDWTLevel(g, n, block, i, k, false, values); err != nil {
			return nil, err
		}
	}

	if coefficient {
		for i := 1; i <= d; i++ {
			if err := addDWTLevel(g, n, block, i, k, true, values); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// addDWTLevel adds every node of one level (averages or details) together
// with the two edges from its level i-1 sources.
func addDWTLevel(g *core.Graph, n, block, level, k int, detail bool, values *dwtValues) error {
	perBlock := block >> uint(level)
	for b := 0; b < k; b++ {
		for l := 0; l < perBlock; l++ {
			j := b*perBlock + l
			id := dwtAverageID(level, j)
			if detail {
				id = dwtDetailID(level, j)
			}
			if err := g.AddNode(id); err != nil {
				return fmt.Errorf("HaarDWT: %w", err)
			}
			if values != nil {
				tag := formatDWTValue(values.averages[level-1][j])
				if detail {
					tag = formatDWTValue(values.coefficients[level-1][j])
				}
				if err := g.SetNodeTag(id, tag); err != nil {
					return fmt.Errorf("HaarDWT: %w", err)
				}
			}

			// Sources sit at level-1 local indices 2l and 2l+1.
			srcPerBlock := block >> uint(level-1)
			for _, off := range []int{2 * l, 2*l + 1} {
				src := dwtSourceID(level-1, b*srcPerBlock+off)
				if err := g.AddEdge(src, id, 0); err != nil {
					return fmt.Errorf("HaarDWT: %w", err)
				}
			}
		}
	}

	return nil
}

// dwtSourceID names a level's input: the signal row at level 0, otherwise
// the average row of that level.
func dwtSourceID(level, j int) string {
	if level == 0 {
		return dwtSignalID(j)
	}
	return dwtAverageID(level, j)
}

func dwtSignalID(j int) string {
	return fmt.Sprintf("s_%d", j)
}

func dwtAverageID(level, j int) string {
	return fmt.Sprintf("a^%d_%d", level, j)
}

func dwtDetailID(level, j int) string {
	return fmt.Sprintf("d^%d_%d", level, j)
}

// formatDWTValue renders a computed value for use as a node tag.
func formatDWTValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
