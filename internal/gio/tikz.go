package gio

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

const tikzDocumentTemplate = `\documentclass{article}
\usepackage{tikz}
\begin{document}
{{range .Pictures}}\begin{tikzpicture}
{{.}}\end{tikzpicture}
{{end -}}
\end{document}
`

var tikzDocument = template.Must(template.New("tikz-document").Parse(tikzDocumentTemplate))

// TikZDrawing renders one LDrawing as a tikzpicture body: a node per
// vertex at its integer coordinate, then a rounded-corner `|-` L-edge per
// incident edge (spec.md §6).
func TikZDrawing(g *embed.EmbeddedGraph, d *drawing.LDrawing) string {
	var b strings.Builder
	for v, p := range d.Coords {
		fmt.Fprintf(&b, "\\node (v%d) at (%d,%d) {%s};\n", v, p.X, p.Y, vertexLabel(g, v))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "\\draw[rounded corners] (v%d) |- (v%d);\n", e.Tail, e.Head)
	}
	return b.String()
}

// TikZRectDual renders one RectDual as a tikzpicture body: one labeled
// rectangle per vertex tile.
func TikZRectDual(g *embed.EmbeddedGraph, d *rectdual.Dual) string {
	var b strings.Builder
	for v, r := range d.Rects {
		fmt.Fprintf(&b, "\\draw (%d,%d) rectangle node {%s} (%d,%d);\n", r.XMin, r.YMin, vertexLabel(g, v), r.XMax, r.YMax)
	}
	return b.String()
}

func vertexLabel(g *embed.EmbeddedGraph, v int) string {
	if label := g.Vertices[v].Label; label != "" {
		return label
	}
	return fmt.Sprintf("%d", v)
}

// WriteTikZDocument wraps one or more tikzpicture bodies (each typically
// from TikZDrawing / TikZRectDual) in the
// \documentclass{article}\usepackage{tikz}\begin{document}...\end{document}
// shell of spec.md §6.
func WriteTikZDocument(w io.Writer, pictures []string) error {
	return tikzDocument.Execute(w, struct{ Pictures []string }{Pictures: pictures})
}
