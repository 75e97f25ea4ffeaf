package rectdual

import (
	"github.com/Parranoh/ldrawing/internal/cyclist"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// Compute runs the full RectDual pipeline of spec.md §4.3 on g (a
// 4-connected planar triangulation with a length-4 outer face): the (3,1)-
// canonical ordering, then the sweep to integer rectangle coordinates.
func Compute(g *embed.EmbeddedGraph) (*Dual, error) {
	parts, err := compute31(g)
	if err != nil {
		return nil, err
	}
	return sweep(g, parts), nil
}

// vertical tracks the ordered list of integer x-coordinates produced by the
// sweep (§4.3.2), with per-vertex iterators into it.
type sweepState struct {
	vertical *cyclist.List[int]
	xMin     map[embed.VertexID]cyclist.Iterator[int]
	xMax     map[embed.VertexID]cyclist.Iterator[int]
	yMin     []int
	yMax     []int
}

func sweep(g *embed.EmbeddedGraph, parts []partition) *Dual {
	n := g.NumVertices()
	s := &sweepState{
		vertical: &cyclist.List[int]{},
		xMin:     make(map[embed.VertexID]cyclist.Iterator[int]),
		xMax:     make(map[embed.VertexID]cyclist.Iterator[int]),
		yMin:     make([]int, n),
		yMax:     make([]int, n),
	}
	// Four initial zero verticals (§4.3.2).
	var verts [4]cyclist.Iterator[int]
	for i := 0; i < 4; i++ {
		verts[i] = s.vertical.PushBack(0)
	}

	a, b, c, d := g.OuterFace[0], g.OuterFace[1], g.OuterFace[2], g.OuterFace[3]
	_ = b
	s.yMin[a], s.yMin[b], s.yMin[c] = 0, 0, 0
	s.xMin[a], s.xMax[a] = verts[0], verts[1]
	s.xMin[b], s.xMax[b] = verts[1], verts[2]
	s.xMin[c], s.xMax[c] = verts[2], verts[3]

	top := 0
	for _, p := range parts {
		top++
		for _, v := range p.contents {
			s.yMin[v] = top
		}
		for _, v := range p.preds {
			s.yMax[v] = top
		}

		switch p.kind {
		case kindSingleton:
			v := p.contents[0]
			vl := p.preds[0]
			vr := p.preds[len(p.preds)-1]
			s.xMin[v] = s.xMax[vl]
			s.xMax[v] = s.xMin[vr]
		case kindFan:
			vl, vr := p.preds[0], p.preds[2]
			it := s.xMax[vl]
			for i, cv := range p.contents {
				s.xMin[cv] = it
				if i == len(p.contents)-1 {
					s.xMax[cv] = s.xMin[vr]
					break
				}
				// Advance it, inserting a fresh zero vertical if it would
				// otherwise reach x_min[vr] before the last content vertex.
				next := it.Next()
				if next.Equal(s.xMin[vr]) {
					next = s.vertical.Insert(s.xMin[vr], 0)
				}
				it = next
				s.xMax[cv] = it
			}
		}
	}

	top++
	s.yMax[a] = top
	s.yMax[c] = top
	s.yMax[d] = top

	// Renumber vertical with successive integers 0,1,2,... by position and
	// dereference every x_min/x_max iterator against that renumbering. Map
	// keys are normalized with Prev().Next() (same node, moved flag set) so
	// iterators from PushBack/Insert and from Next() find the same entry.
	dual := &Dual{Rects: make([]Rect, n)}
	seq := make(map[cyclist.Iterator[int]]int)
	pos := 0
	it := s.vertical.Begin()
	for {
		seq[it.Prev().Next()] = pos
		pos++
		it = it.Next()
		if s.vertical.AtEnd(it) {
			break
		}
	}

	for v := 0; v < n; v++ {
		vv := embed.VertexID(v)
		minIt, hasMin := s.xMin[vv]
		maxIt, hasMax := s.xMax[vv]
		if !hasMin || !hasMax {
			continue
		}
		xmin := seq[minIt.Prev().Next()]
		xmax := seq[maxIt.Prev().Next()]
		dual.Rects[v] = Rect{XMin: xmin, YMin: s.yMin[v], XMax: xmax, YMax: s.yMax[v]}
	}
	return dual
}
