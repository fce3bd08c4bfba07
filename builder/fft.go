// Package builder: Cooley–Tukey FFT CDAG factory.
//
// Decimation-in-time, radix 2: a DFT of size n splits into log2(n) stages
// of butterflies. Each butterfly reads two values and produces two, so every
// stage-s node has exactly two stage-(s-1) parents.
package builder

import (
	"fmt"
	"math/bits"

	"github.com/mcislab/mcis/core"
)

// FFT builds the dataflow CDAG of a radix-2 DIT FFT over n points:
// inputs x_0..x_{n-1}, butterfly stages s<stage>_<i>, outputs X_0..X_{n-1}.
//
// n must be a positive power of two; otherwise ErrInvalidParameters.
// Complexity: O(n log n) nodes and edges.
func FFT(n int) (*core.Graph, error) {
	if n <= 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("FFT: n=%d is not a positive power of two: %w", n, ErrInvalidParameters)
	}
	stages := bits.Len(uint(n)) - 1 // log2(n)

	g := core.NewGraph()
	g.ReserveNodes(n * (stages + 2))

	for i := 0; i < n; i++ {
		if err := g.AddNode(fftInputID(i)); err != nil {
			return nil, fmt.Errorf("FFT: %w", err)
		}
	}

	for stage := 1; stage <= stages; stage++ {
		numButterflies := 1 << (stage - 1)
		butterflySize := n / numButterflies
		halfSize := butterflySize / 2

		for b := 0; b < numButterflies; b++ {
			for j := 0; j < halfSize; j++ {
				topIdx := b*butterflySize + j
				bottomIdx := topIdx + halfSize

				topIn := fftStageID(stage-1, topIdx)
				bottomIn := fftStageID(stage-1, bottomIdx)
				topOut := fftStageID(stage, topIdx)
				bottomOut := fftStageID(stage, bottomIdx)

				if err := g.AddNode(topOut); err != nil {
					return nil, fmt.Errorf("FFT: %w", err)
				}
				if err := g.AddNode(bottomOut); err != nil {
					return nil, fmt.Errorf("FFT: %w", err)
				}
				// Both butterfly inputs feed both outputs.
				if err := g.AddEdgeSet(topIn, []string{topOut, bottomOut}, nil); err != nil {
					return nil, fmt.Errorf("FFT: %w", err)
				}
				if err := g.AddEdgeSet(bottomIn, []string{topOut, bottomOut}, nil); err != nil {
					return nil, fmt.Errorf("FFT: %w", err)
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		out := fmt.Sprintf("X_%d", i)
		if err := g.AddNode(out); err != nil {
			return nil, fmt.Errorf("FFT: %w", err)
		}
		if err := g.AddEdge(fftStageID(stages, i), out, 0); err != nil {
			return nil, fmt.Errorf("FFT: %w", err)
		}
	}

	return g, nil
}

// fftInputID renders the input identifier x_<i>.
func fftInputID(i int) string {
	return fmt.Sprintf("x_%d", i)
}

// fftStageID renders the node feeding stage boundaries: stage 0 is the
// input row, later stages are butterfly outputs s<stage>_<i>.
func fftStageID(stage, i int) string {
	if stage == 0 {
		return fftInputID(i)
	}
	return fmt.Sprintf("s%d_%d", stage, i)
}
