package gio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// scenarioA is spec.md §8's K4 input text.
const scenarioA = `4 6 3
1 2 3
a
b
c
d
1 2
2 3
3 1
1 4
2 4
3 4
1 3 4
1 2 5
2 3 6
4 5 6
`

func TestReadGraphScenarioA(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(scenarioA))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, 6, g.NumEdges())
	require.Equal(t, []embed.VertexID{0, 1, 2}, g.OuterFace)
	require.Equal(t, "a", g.Vertices[0].Label)
	require.Equal(t, "d", g.Vertices[3].Label)
	require.Equal(t, []embed.EdgeID{0, 2, 3}, g.Vertices[0].Rotation)
	require.Equal(t, []embed.EdgeID{3, 4, 5}, g.Vertices[3].Rotation)

	e0, err := g.EdgeAt(0)
	require.NoError(t, err)
	require.Equal(t, embed.VertexID(0), e0.Tail)
	require.Equal(t, embed.VertexID(1), e0.Head)
}

func TestReadGraphRejectsShortHeader(t *testing.T) {
	_, err := ReadGraph(strings.NewReader("4 6\n"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
	require.Contains(t, err.Error(), "line 1")
}

func TestReadGraphRejectsTruncatedInput(t *testing.T) {
	_, err := ReadGraph(strings.NewReader("4 6 3\n1 2 3\n"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrParse)
}

func TestReadGraphAndDrawingSharesStreamPosition(t *testing.T) {
	input := scenarioA + "0 0\n1 0\n1 1\n0 1\n"
	g, d, err := ReadGraphAndDrawing(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 4, g.NumVertices())
	require.Equal(t, []drawing.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, d.Coords)
}

func TestWriteGraphRoundTripsThroughReadGraph(t *testing.T) {
	g, err := ReadGraph(strings.NewReader(scenarioA))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGraph(&buf, g))

	g2, err := ReadGraph(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, g, g2)
}

func TestWriteLDrawing(t *testing.T) {
	d := &drawing.LDrawing{Coords: []drawing.Point{{X: 0, Y: 1}, {X: 2, Y: 3}}}
	var buf bytes.Buffer
	require.NoError(t, WriteLDrawing(&buf, d))
	require.Equal(t, "0 1\n2 3\n", buf.String())
}

func TestWriteRectDual(t *testing.T) {
	d := &rectdual.Dual{Rects: []rectdual.Rect{{XMin: 0, YMin: 0, XMax: 1, YMax: 2}}}
	var buf bytes.Buffer
	require.NoError(t, WriteRectDual(&buf, d))
	require.Equal(t, "0 0 1 2\n", buf.String())
}

func TestWriteTikZDocumentWrapsPictures(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTikZDocument(&buf, []string{"\\node (v0) at (0,0) {a};\n"}))
	out := buf.String()
	require.Contains(t, out, "\\documentclass{article}")
	require.Contains(t, out, "\\usepackage{tikz}")
	require.Contains(t, out, "\\begin{tikzpicture}")
	require.Contains(t, out, "\\node (v0) at (0,0) {a};")
	require.Contains(t, out, "\\end{tikzpicture}")
	require.Contains(t, out, "\\end{document}")
}

func TestTikZDrawingEmitsNodesAndEdges(t *testing.T) {
	b := embed.NewBuilder(2)
	e := b.AddEdge(0, 1)
	b.SetRotation(0, []embed.EdgeID{e})
	b.SetRotation(1, []embed.EdgeID{e})
	g, err := b.Build([]embed.VertexID{0, 1, 0})
	require.NoError(t, err)

	d := &drawing.LDrawing{Coords: []drawing.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	out := TikZDrawing(g, d)
	require.Contains(t, out, "\\node (v0) at (0,0)")
	require.Contains(t, out, "\\node (v1) at (1,1)")
	require.Contains(t, out, "(v0) |- (v1)")
}
