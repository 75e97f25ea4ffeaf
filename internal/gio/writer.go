package gio

import (
	"fmt"
	"io"
	"strings"

	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// WriteGraph writes g back out in spec.md §6's plain-text graph-input
// format (the inverse of ReadGraph), 1-based throughout. The Sampler CLI
// uses this to emit its generated triangulations.
func WriteGraph(w io.Writer, g *embed.EmbeddedGraph) error {
	if _, err := fmt.Fprintf(w, "%d %d %d\n", g.NumVertices(), g.NumEdges(), len(g.OuterFace)); err != nil {
		return err
	}

	outer := make([]string, len(g.OuterFace))
	for i, v := range g.OuterFace {
		outer[i] = oneBased(int(v))
	}
	if _, err := fmt.Fprintln(w, strings.Join(outer, " ")); err != nil {
		return err
	}

	for _, vtx := range g.Vertices {
		if _, err := fmt.Fprintln(w, vtx.Label); err != nil {
			return err
		}
	}

	for _, e := range g.Edges {
		if _, err := fmt.Fprintf(w, "%d %d\n", int(e.Tail)+1, int(e.Head)+1); err != nil {
			return err
		}
	}

	for _, vtx := range g.Vertices {
		rotation := make([]string, len(vtx.Rotation))
		for i, eid := range vtx.Rotation {
			rotation[i] = oneBased(int(eid))
		}
		if _, err := fmt.Fprintln(w, strings.Join(rotation, " ")); err != nil {
			return err
		}
	}
	return nil
}

func oneBased(id int) string {
	return fmt.Sprintf("%d", id+1)
}

// WriteLDrawing writes spec.md §6's raw L-drawing format: one "x y" line
// per vertex.
func WriteLDrawing(w io.Writer, d *drawing.LDrawing) error {
	for _, p := range d.Coords {
		if _, err := fmt.Fprintf(w, "%d %d\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return nil
}

// WriteRectDual writes spec.md §6's raw rectangular dual format: one
// "x_min y_min x_max y_max" line per vertex.
func WriteRectDual(w io.Writer, d *rectdual.Dual) error {
	for _, r := range d.Rects {
		if _, err := fmt.Fprintf(w, "%d %d %d %d\n", r.XMin, r.YMin, r.XMax, r.YMax); err != nil {
			return err
		}
	}
	return nil
}
