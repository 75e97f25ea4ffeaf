package rectdual

import (
	"github.com/pkg/errors"

	"github.com/Parranoh/ldrawing/internal/embed"
)

// Sentinel errors for the rectdual package.
var (
	// ErrNotFourConnected indicates compute31 could not make progress: the
	// input is not a 4-connected planar triangulation (spec.md §4.3.1).
	ErrNotFourConnected = errors.New("rectdual: input is not a 4-connected planar triangulation")

	// ErrEmptyFan indicates a fan pick produced no contents, an internal
	// consistency failure.
	ErrEmptyFan = errors.New("rectdual: fan pick has empty contents")
)

// Rect is an axis-aligned tile (x_min,y_min,x_max,y_max) of non-negative
// integer coordinates.
type Rect struct {
	XMin, YMin, XMax, YMax int
}

// Dual maps each vertex of a 4-connected triangulation to its rectangle.
type Dual struct {
	Rects []Rect // indexed by embed.VertexID
}

// ShareWall reports whether a and b share a non-degenerate (positive-length)
// wall, the adjacency invariant of spec.md §3 and §8 item 5.
func ShareWall(a, b Rect) bool {
	if a.XMax == b.XMin || b.XMax == a.XMin {
		lo, hi := maxInt(a.YMin, b.YMin), minInt(a.YMax, b.YMax)
		return hi > lo
	}
	if a.YMax == b.YMin || b.YMax == a.YMin {
		lo, hi := maxInt(a.XMin, b.XMin), minInt(a.XMax, b.XMax)
		return hi > lo
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// partKind distinguishes the two (3,1)-ordering partition shapes of
// spec.md §4.3.1.
type partKind int

const (
	kindSingleton partKind = iota
	kindFan
)

// partition is one P_i of the canonical ordering: either a single vertex
// (a "leg-free singleton") or a path of degree-3 vertices (a "fan"), plus
// the boundary predecessors used both to splice the boundary and, later, to
// assign x-coordinates during the sweep.
type partition struct {
	kind     partKind
	contents []embed.VertexID // singleton: len 1; fan: the path's vertices
	preds    []embed.VertexID // singleton: boundary arc (v_l..v_r); fan: (v_l, center, v_r)
}
