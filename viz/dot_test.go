package viz_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcislab/mcis/core"
	"github.com/mcislab/mcis/viz"
)

// TestDOT_GoldenOutput pins the exact rendering of a small graph.
func TestDOT_GoldenOutput(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"b", "a", "lonely"}))
	require.NoError(t, g.AddEdge("a", "b", 3))

	want := `digraph G {
    "a" -> "b" [label="3"];
    "lonely";
}
`
	assert.Equal(t, want, viz.DOT(g))
}

// TestDOT_Deterministic: two renders of the same graph are identical.
func TestDOT_Deterministic(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"x", "y", "z"}))
	require.NoError(t, g.AddEdge("x", "y", 1))
	require.NoError(t, g.AddEdge("y", "z", 2))
	require.NoError(t, g.AddEdge("x", "z", 3))

	assert.Equal(t, viz.DOT(g), viz.DOT(g))
}

// TestSaveDiagram writes a .gv file into a fresh directory.
func TestSaveDiagram(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"a", "b"}))
	require.NoError(t, g.AddEdge("a", "b", 1))

	dir := t.TempDir()
	path, err := viz.SaveDiagram(dir, "unit", g)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_unit.gv"))
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a" -> "b"`)
}
