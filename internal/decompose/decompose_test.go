package decompose

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/embed"
)

// buildK4 constructs spec.md Scenario A.
func buildK4(t *testing.T) *embed.EmbeddedGraph {
	t.Helper()
	b := embed.NewBuilder(4)
	for i, label := range []string{"a", "b", "c", "d"} {
		b.SetLabel(embed.VertexID(i), label)
	}
	e12 := b.AddEdge(0, 1)
	e23 := b.AddEdge(1, 2)
	e31 := b.AddEdge(2, 0)
	e14 := b.AddEdge(0, 3)
	e24 := b.AddEdge(1, 3)
	e34 := b.AddEdge(2, 3)

	b.SetRotation(0, []embed.EdgeID{e12, e31, e14})
	b.SetRotation(1, []embed.EdgeID{e12, e23, e24})
	b.SetRotation(2, []embed.EdgeID{e23, e31, e34})
	b.SetRotation(3, []embed.EdgeID{e14, e24, e34})

	g, err := b.Build([]embed.VertexID{0, 1, 2})
	require.NoError(t, err)
	return g
}

func TestListSeparatingTrianglesK4HasNone(t *testing.T) {
	g := buildK4(t)
	tris := ListSeparatingTriangles(g)
	require.Empty(t, tris, "K4 has no separating triangles: every triangle is a face")
}

func TestDecomposeK4SingleComponent(t *testing.T) {
	g := buildK4(t)
	tree, err := Decompose(g)
	require.NoError(t, err)
	require.Len(t, tree.Components, 1, "no separating triangles means a single component")
	require.Equal(t, 4, tree.Root().Graph.NumVertices())
	require.Equal(t, 6, tree.Root().Graph.NumEdges())
}
