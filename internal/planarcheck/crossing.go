package planarcheck

import (
	"github.com/Parranoh/ldrawing/internal/drawing"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// Check reports whether the given L-drawing of g is planar by spec.md §4.4's
// strict-interior test: no horizontal segment may strictly cross a vertical
// segment. Two segments that merely touch at a shared endpoint (a common
// vertex, or an edge's own elbow) do not count as crossing.
func Check(g *embed.EmbeddedGraph, d *drawing.LDrawing) (bool, error) {
	if len(d.Coords) != g.NumVertices() {
		return false, ErrCoordMismatch
	}

	hsegs, vsegs := segments(g, d)
	for _, h := range hsegs {
		for _, v := range vsegs {
			if strictlyCross(h, v) {
				return false, nil
			}
		}
	}
	return true, nil
}

// segments derives, per edge, the horizontal segment at head.y and the
// vertical segment at tail.x, per spec.md's LDrawing definition (§4 GLOSSARY).
func segments(g *embed.EmbeddedGraph, d *drawing.LDrawing) ([]hseg, []vseg) {
	hsegs := make([]hseg, 0, g.NumEdges())
	vsegs := make([]vseg, 0, g.NumEdges())
	for i, e := range g.Edges {
		tail, head := d.Coords[e.Tail], d.Coords[e.Head]
		hsegs = append(hsegs, hseg{y: head.Y, xlo: minInt(tail.X, head.X), xhi: maxInt(tail.X, head.X), edge: i})
		vsegs = append(vsegs, vseg{x: tail.X, ylo: minInt(tail.Y, head.Y), yhi: maxInt(tail.Y, head.Y), edge: i})
	}
	return hsegs, vsegs
}

// strictlyCross reports whether h and v cross at a point interior to both
// segments' spans (exclusive on every bound), per spec.md §8 edge case 8.
func strictlyCross(h hseg, v vseg) bool {
	return v.x > h.xlo && v.x < h.xhi && h.y > v.ylo && h.y < v.yhi
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
