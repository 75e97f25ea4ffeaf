package drawing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/port"
)

// buildK4 mirrors spec.md Scenario A: vertices 0..3, outer face (0,1,2).
func buildK4(t *testing.T) *embed.EmbeddedGraph {
	t.Helper()
	b := embed.NewBuilder(4)
	e0 := b.AddEdge(0, 1)
	e1 := b.AddEdge(1, 2)
	e2 := b.AddEdge(2, 0)
	e3 := b.AddEdge(0, 3)
	e4 := b.AddEdge(1, 3)
	e5 := b.AddEdge(2, 3)

	b.SetRotation(0, []embed.EdgeID{e0, e2, e3})
	b.SetRotation(1, []embed.EdgeID{e0, e1, e4})
	b.SetRotation(2, []embed.EdgeID{e1, e2, e5})
	b.SetRotation(3, []embed.EdgeID{e3, e4, e5})

	g, err := b.Build([]embed.VertexID{0, 1, 2})
	require.NoError(t, err)
	return g
}

func TestThirdOuterVertex(t *testing.T) {
	g := buildK4(t)
	require.Equal(t, embed.VertexID(2), thirdOuterVertex(g, 0, 1))
}

func TestFindApexFindsCommonNeighbor(t *testing.T) {
	g := buildK4(t)
	apex, err := findApex(g, 0, 1, 2)
	require.NoError(t, err)
	require.Equal(t, embed.VertexID(3), apex)
}

func TestQuadOuterFaceInsertsX(t *testing.T) {
	g := buildK4(t)
	got := quadOuterFace(g, 0, 1, embed.VertexID(4))
	require.Equal(t, []embed.VertexID{0, embed.VertexID(4), 1, 2}, got)
}

func TestSubdivideOuterEdgeProducesLengthFourGraph(t *testing.T) {
	g := buildK4(t)
	comp := &decompose.FourBlockComponent{
		Graph:          g,
		OriginalEdge:   []embed.EdgeID{0, 1, 2, 3, 4, 5},
		OriginalVertex: []embed.VertexID{0, 1, 2, 3},
		DesignatedFace: make([]int, 4),
	}
	eid, err := findEdgeBetween(g, 0, 1)
	require.NoError(t, err)

	a := port.NewAssignment(6)
	newComp, x, err := subdivideOuterEdge(comp, a, eid)
	require.NoError(t, err)
	require.Len(t, newComp.Graph.OuterFace, 4)
	require.Equal(t, embed.VertexID(4), x)
	require.Equal(t, 3, newComp.Graph.Vertices[x].Degree())
	require.NoError(t, newComp.Graph.Validate())
}

func TestClassifyOuterFaceErrorsWhenUnassigned(t *testing.T) {
	g := buildK4(t)
	comp := &decompose.FourBlockComponent{
		Graph:        g,
		OriginalEdge: []embed.EdgeID{0, 1, 2, 3, 4, 5},
	}
	a := port.NewAssignment(6)
	edges3, err := outerFaceEdges(g)
	require.NoError(t, err)
	_, _, err = classifyOuterFace(comp, a, edges3)
	require.Error(t, err)
}

func TestClassifyOuterFaceRecognizesResolvedPattern(t *testing.T) {
	g := buildK4(t)
	comp := &decompose.FourBlockComponent{
		Graph:        g,
		OriginalEdge: []embed.EdgeID{0, 1, 2, 3, 4, 5},
	}
	a := port.NewAssignment(6)
	require.NoError(t, port.AssignRootOuterFace(comp, a))
	edges3, err := outerFaceEdges(g)
	require.NoError(t, err)
	shape, idx, err := classifyOuterFace(comp, a, edges3)
	require.NoError(t, err)
	require.True(t, idx >= 0 && idx < 3)
	_ = shape
}
