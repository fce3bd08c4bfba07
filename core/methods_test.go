package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcislab/mcis/core"
)

// TestAddNode_DuplicateFails verifies the ErrNodeExists surface.
func TestAddNode_DuplicateFails(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	err := g.AddNode("A")
	assert.ErrorIs(t, err, core.ErrNodeExists)
	assert.Equal(t, 1, g.NodeCount())
}

// TestAddNodeSet_StopsOnDuplicate verifies batch insertion aborts on the
// first duplicate while keeping earlier nodes.
func TestAddNodeSet_StopsOnDuplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B"}))
	err := g.AddNodeSet([]string{"C", "B", "D"})
	assert.ErrorIs(t, err, core.ErrNodeExists)
	assert.True(t, g.HasNode("C"))
	assert.False(t, g.HasNode("D"))
}

// TestAddEdge_ErrorSurface covers self-loops, missing endpoints, idempotent
// re-add and weight conflicts.
func TestAddEdge_ErrorSurface(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B"}))

	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("A", "Z", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("Z", "B", 1), core.ErrNodeNotFound)

	require.NoError(t, g.AddEdge("A", "B", 3))
	// Same weight: no-op success.
	assert.NoError(t, g.AddEdge("A", "B", 3))
	// Different weight: conflict.
	assert.ErrorIs(t, g.AddEdge("A", "B", 4), core.ErrEdgeExists)

	w, ok := g.Node("A").ChildWeight("B")
	require.True(t, ok)
	assert.Equal(t, int64(3), w)
}

// TestAdjacencySymmetry verifies that every child entry has the mirror
// parent entry with the same weight, and that removal clears both sides.
func TestAdjacencySymmetry(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B", "C"}))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))

	for _, id := range g.NodeIDs() {
		n := g.Node(id)
		for _, child := range n.Children() {
			assert.True(t, g.Node(child).HasParent(id))
			assert.True(t, g.HasEdge(id, child))
		}
	}

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.False(t, g.Node("B").HasParent("A"))
	assert.False(t, g.Node("A").HasChild("B"))
	assert.ErrorIs(t, g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
}

// TestRemoveNode_DropsIncidentEdges verifies both directions are unlinked.
func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B", "C"}))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	require.NoError(t, g.RemoveNode("B"))
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.Node("A").HasChild("B"))
	assert.False(t, g.Node("C").HasParent("B"))

	assert.ErrorIs(t, g.RemoveNode("B"), core.ErrNodeNotFound)
}

// TestRemoveNodesBulk counts only the nodes actually removed.
func TestRemoveNodesBulk(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B"}))
	assert.Equal(t, 2, g.RemoveNodesBulk([]string{"A", "B", "missing"}))
	assert.Equal(t, 0, g.NodeCount())
}

// TestChangeEdgeWeight updates both adjacency directions.
func TestChangeEdgeWeight(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B"}))
	require.NoError(t, g.AddEdge("A", "B", 1))

	require.NoError(t, g.ChangeEdgeWeight("A", "B", 7))
	w, ok := g.Node("A").ChildWeight("B")
	require.True(t, ok)
	assert.Equal(t, int64(7), w)

	assert.ErrorIs(t, g.ChangeEdgeWeight("A", "C", 1), core.ErrNodeNotFound)
	assert.ErrorIs(t, g.ChangeEdgeWeight("B", "A", 1), core.ErrEdgeNotFound)
}

// TestAddEdgeSet_ZeroWeightsDefault applies weight 0 when weights are
// omitted and positional weights otherwise.
func TestAddEdgeSet_ZeroWeightsDefault(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B", "C"}))

	require.NoError(t, g.AddEdgeSet("A", []string{"B", "C"}, nil))
	w, _ := g.Node("A").ChildWeight("B")
	assert.Equal(t, int64(0), w)

	g2 := core.NewGraph()
	require.NoError(t, g2.AddNodeSet([]string{"A", "B", "C"}))
	require.NoError(t, g2.AddEdgeSet("A", []string{"B", "C"}, []int64{5, 6}))
	w, _ = g2.Node("A").ChildWeight("C")
	assert.Equal(t, int64(6), w)
}

// TestSetNodeTag_AndSubgraph verifies tag projection is induced: exactly
// the tagged nodes, exactly the edges between them.
func TestSetNodeTag_AndSubgraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B", "C", "D"}))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("C", "D", 3))

	require.NoError(t, g.SetNodeTag("A", "x"))
	require.NoError(t, g.SetNodeTag("B", "x"))
	require.NoError(t, g.SetNodeTag("C", "y"))
	assert.ErrorIs(t, g.SetNodeTag("Z", "x"), core.ErrNodeNotFound)

	sub := g.SubgraphWithTag("x")
	assert.Equal(t, []string{"A", "B"}, sub.NodeIDs())
	assert.True(t, sub.HasEdge("A", "B"))
	assert.False(t, sub.HasEdge("B", "C"))
	assert.Equal(t, 1, sub.EdgeCount())
	// IDs, tags and weights preserved.
	assert.Equal(t, "x", sub.Node("A").Tag())
	w, _ := sub.Node("A").ChildWeight("B")
	assert.Equal(t, int64(1), w)
	// Mutating the projection leaves the original untouched.
	require.NoError(t, sub.RemoveNode("A"))
	assert.True(t, g.HasNode("A"))
}

// TestGraphEqual_AndClone verifies deep equality and deep copying.
func TestGraphEqual_AndClone(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B"}))
	require.NoError(t, g.AddEdge("A", "B", 2))

	clone := g.Clone()
	assert.True(t, g.Equal(clone))
	assert.True(t, clone.Equal(g))

	require.NoError(t, clone.ChangeEdgeWeight("A", "B", 9))
	assert.False(t, g.Equal(clone))

	other := core.NewGraph()
	require.NoError(t, other.AddNodeSet([]string{"A", "B"}))
	assert.False(t, g.Equal(other))
}

// TestVersion_BumpsOnStructuralMutation tracks the counter through the
// mutation surface; tag changes are not structural.
func TestVersion_BumpsOnStructuralMutation(t *testing.T) {
	g := core.NewGraph()
	v0 := g.Version()

	require.NoError(t, g.AddNode("A"))
	require.NoError(t, g.AddNode("B"))
	require.NoError(t, g.AddEdge("A", "B", 0))
	v1 := g.Version()
	assert.Greater(t, v1, v0)

	require.NoError(t, g.SetNodeTag("A", "t"))
	assert.Equal(t, v1, g.Version())

	require.NoError(t, g.RemoveEdge("A", "B"))
	assert.Greater(t, g.Version(), v1)
}

// TestNodeViews covers source/sink and degree accessors.
func TestNodeViews(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNodeSet([]string{"A", "B", "C"}))
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	a, b, c := g.Node("A"), g.Node("B"), g.Node("C")
	assert.True(t, a.IsSource())
	assert.False(t, a.IsSink())
	assert.True(t, c.IsSink())
	assert.Equal(t, 1, b.NumParents())
	assert.Equal(t, 1, b.NumChildren())
	assert.Equal(t, []string{"C"}, b.Children())
	assert.Equal(t, []string{"A"}, b.Parents())
	assert.True(t, a.SameID(a))
	assert.Nil(t, g.Node("missing"))
}

// TestNoSelfLoopsEver: no mutation path can introduce a self-referential
// adjacency entry.
func TestNoSelfLoopsEver(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A"))
	assert.ErrorIs(t, g.AddEdge("A", "A", 0), core.ErrSelfLoop)
	assert.False(t, g.Node("A").HasChild("A"))
	assert.False(t, g.Node("A").HasParent("A"))
}
