package planarcheck

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// buildPath builds a minimal 2-vertex, 1-edge graph (the crossing check only
// reads g.Edges and g.NumVertices, so a full valid embedding is unnecessary
// busywork here).
func buildPath(tail, head embed.VertexID) *embed.EmbeddedGraph {
	return &embed.EmbeddedGraph{
		Vertices: make([]embed.Vertex, int(maxVertex(tail, head))+1),
		Edges:    []embed.Edge{{Tail: tail, Head: head}},
	}
}

func maxVertex(a, b embed.VertexID) embed.VertexID {
	if a > b {
		return a
	}
	return b
}

func TestCheckNoCrossingForDisjointSegments(t *testing.T) {
	g := &embed.EmbeddedGraph{
		Vertices: make([]embed.Vertex, 4),
		Edges: []embed.Edge{
			{Tail: 0, Head: 1},
			{Tail: 2, Head: 3},
		},
	}
	d := &drawing.LDrawing{Coords: []drawing.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 5, Y: 5}, {X: 6, Y: 5},
	}}
	ok, err := Check(g, d)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckOwnElbowIsNotACrossing(t *testing.T) {
	g := buildPath(0, 1)
	d := &drawing.LDrawing{Coords: []drawing.Point{{X: 0, Y: 0}, {X: 3, Y: 3}}}
	ok, err := Check(g, d)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCheckDetectsStrictCrossing(t *testing.T) {
	g := &embed.EmbeddedGraph{
		Vertices: make([]embed.Vertex, 4),
		Edges: []embed.Edge{
			{Tail: 0, Head: 1}, // horizontal segment at y=0, x in [0,4]; vertical at x=0
			{Tail: 2, Head: 3}, // vertical segment at x=2, y in [-2,2]; horizontal at y=2
		},
	}
	d := &drawing.LDrawing{Coords: []drawing.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0},
		{X: 2, Y: -2}, {X: 2, Y: 2},
	}}
	ok, err := Check(g, d)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckRejectsMismatchedCoordCount(t *testing.T) {
	g := buildPath(0, 1)
	d := &drawing.LDrawing{Coords: []drawing.Point{{X: 0, Y: 0}}}
	_, err := Check(g, d)
	require.ErrorIs(t, err, ErrCoordMismatch)
}
