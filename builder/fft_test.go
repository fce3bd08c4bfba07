package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcislab/mcis/builder"
)

// TestFFT_4PointShape pins the 4-point butterfly network: 4 inputs, two
// stages of 4 nodes, 4 outputs.
func TestFFT_4PointShape(t *testing.T) {
	g, err := builder.FFT(4)
	require.NoError(t, err)

	assert.Equal(t, 16, g.NodeCount())
	assert.True(t, g.IsDAG())

	// Stage 1 butterfly spans half the frame: x_0 and x_2 pair up.
	assert.True(t, g.HasEdge("x_0", "s1_0"))
	assert.True(t, g.HasEdge("x_2", "s1_0"))
	assert.True(t, g.HasEdge("x_0", "s1_2"))
	assert.True(t, g.HasEdge("x_2", "s1_2"))
	// Stage 2 pairs adjacent lanes.
	assert.True(t, g.HasEdge("s1_0", "s2_1"))
	assert.True(t, g.HasEdge("s1_1", "s2_0"))
	// Final stage feeds the outputs.
	assert.True(t, g.HasEdge("s2_3", "X_3"))

	// Every butterfly output has exactly two parents.
	assert.Equal(t, 2, g.Node("s1_0").NumParents())
	assert.Equal(t, 2, g.Node("s2_2").NumParents())
	assert.Equal(t, 1, g.Node("X_0").NumParents())
}

// TestFFT_TrivialSize: a single-point FFT wires the input straight to the
// output.
func TestFFT_TrivialSize(t *testing.T) {
	g, err := builder.FFT(1)
	require.NoError(t, err)
	assert.Equal(t, 2, g.NodeCount())
	assert.True(t, g.HasEdge("x_0", "X_0"))
}

// TestFFT_InvalidSizes rejects non-powers of two and non-positive n.
func TestFFT_InvalidSizes(t *testing.T) {
	for _, n := range []int{0, -4, 3, 6, 12} {
		_, err := builder.FFT(n)
		assert.ErrorIs(t, err, builder.ErrInvalidParameters, "n=%d", n)
	}
}
