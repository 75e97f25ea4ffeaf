package embed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildK4 constructs the K4 embedding from spec.md Scenario A.
func buildK4(t *testing.T) *EmbeddedGraph {
	t.Helper()
	b := NewBuilder(4)
	for i, label := range []string{"a", "b", "c", "d"} {
		b.SetLabel(VertexID(i), label)
	}
	// 1-based edges from spec: 1-2 2-3 3-1 1-4 2-4 3-4 -> 0-based
	e12 := b.AddEdge(0, 1)
	e23 := b.AddEdge(1, 2)
	e31 := b.AddEdge(2, 0)
	e14 := b.AddEdge(0, 3)
	e24 := b.AddEdge(1, 3)
	e34 := b.AddEdge(2, 3)

	b.SetRotation(0, []EdgeID{e12, e31, e14})
	b.SetRotation(1, []EdgeID{e12, e23, e24})
	b.SetRotation(2, []EdgeID{e23, e31, e34})
	b.SetRotation(3, []EdgeID{e14, e24, e34})

	g, err := b.Build([]VertexID{0, 1, 2})
	require.NoError(t, err)
	return g
}

func TestK4Validate(t *testing.T) {
	g := buildK4(t)
	require.NoError(t, g.Validate())
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
}

func TestCircularDistance(t *testing.T) {
	require.Equal(t, 1, CircularDistance(0, 1, 5))
	require.Equal(t, 2, CircularDistance(0, 2, 5))
	require.Equal(t, 2, CircularDistance(0, 3, 5)) // 3 forward, 2 backward
	require.Equal(t, 0, CircularDistance(2, 2, 5))
}

func TestValidateDetectsBadRotation(t *testing.T) {
	b := NewBuilder(2)
	e := b.AddEdge(0, 1)
	b.SetRotation(0, []EdgeID{e})
	// Deliberately leave vertex 1's rotation empty -> IndexAtHead stays 0,
	// out of range for an empty rotation slice.
	_, err := b.Build([]VertexID{0, 1, 0})
	require.Error(t, err)
}
