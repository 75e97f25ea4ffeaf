package drawing

import (
	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// addVirtualEdges implements spec.md §4.4 step 4: every vertex with a
// non-zero DesignatedFace gets a new leaf vertex and edge inserted at that
// rotation slot, realized as a degenerate (zero-width or zero-height)
// rectangle flush against whichever wall of v the reference edge at that
// slot indicates, following the four neighbor-direction cases (right, top,
// left, bottom of v) each with two sub-cases depending on which of v's and
// the neighbor's extents reaches further.
func addVirtualEdges(comp *decompose.FourBlockComponent, d *rectdual.Dual) (*decompose.FourBlockComponent, *rectdual.Dual, error) {
	g := comp.Graph
	for v := 0; v < g.NumVertices(); v++ {
		vv := embed.VertexID(v)
		if comp.DesignatedFace[v] == 0 {
			continue
		}
		var err error
		comp, d, err = insertLeaf(comp, d, vv, comp.DesignatedFace[v])
		if err != nil {
			return nil, nil, err
		}
	}
	return comp, d, nil
}

func insertLeaf(comp *decompose.FourBlockComponent, d *rectdual.Dual, v embed.VertexID, designatedFace int) (*decompose.FourBlockComponent, *rectdual.Dual, error) {
	g := comp.Graph
	oldN := g.NumVertices()
	leaf := embed.VertexID(oldN)
	b := embed.NewBuilder(oldN + 1)
	for i := 0; i < oldN; i++ {
		vv := embed.VertexID(i)
		vert, _ := g.VertexAt(vv)
		b.SetLabel(vv, vert.Label)
	}

	var newOriginalEdge []embed.EdgeID
	for eid := embed.EdgeID(0); int(eid) < len(g.Edges); eid++ {
		e := g.Edges[eid]
		b.AddEdge(e.Tail, e.Head)
		newOriginalEdge = append(newOriginalEdge, comp.OriginalEdge[eid])
	}

	vRot := g.Vertices[v].Rotation
	deg := len(vRot)
	face := ((designatedFace-1)%deg + deg) % deg
	refEdgeID := vRot[face]
	refEdge, err := g.EdgeAt(refEdgeID)
	if err != nil {
		return nil, nil, err
	}
	neighbor := refEdge.Other(v)

	// outgoing reports whether the reference edge points into v; when it
	// does, the new virtual edge runs v -> leaf, otherwise leaf -> v.
	outgoing := refEdge.Head == v

	var eLeaf embed.EdgeID
	if outgoing {
		eLeaf = b.AddEdge(v, leaf)
	} else {
		eLeaf = b.AddEdge(leaf, v)
	}
	newOriginalEdge = append(newOriginalEdge, embed.DummyEdge)

	for i := 0; i < oldN; i++ {
		vv := embed.VertexID(i)
		if vv != v {
			b.SetRotation(vv, g.Vertices[i].Rotation)
			continue
		}
		newRot := make([]embed.EdgeID, 0, deg+1)
		newRot = append(newRot, vRot[:face]...)
		newRot = append(newRot, eLeaf)
		newRot = append(newRot, vRot[face:]...)
		b.SetRotation(vv, newRot)
	}
	b.SetRotation(leaf, []embed.EdgeID{eLeaf})

	newGraph, err := b.Build(g.OuterFace)
	if err != nil {
		return nil, nil, err
	}

	newOriginalVertex := make([]embed.VertexID, oldN+1)
	copy(newOriginalVertex, comp.OriginalVertex)
	newOriginalVertex[leaf] = embed.DummyVertex

	newDesignated := make([]int, oldN+1)
	copy(newDesignated, comp.DesignatedFace)
	newDesignated[v] = 0

	newComp := &decompose.FourBlockComponent{
		Graph:          newGraph,
		OriginalEdge:   newOriginalEdge,
		OriginalVertex: newOriginalVertex,
		DesignatedFace: newDesignated,
	}

	vr := d.Rects[v]
	nr := d.Rects[neighbor]
	var leafRect rectdual.Rect
	switch {
	case vr.XMax == nr.XMin: // neighbor is right of v
		if vr.YMin <= nr.YMin {
			leafRect = rectdual.Rect{XMin: nr.XMin, YMin: nr.YMin, XMax: nr.XMax, YMax: nr.YMin}
		} else {
			leafRect = rectdual.Rect{XMin: nr.XMin, YMin: nr.YMin, XMax: nr.XMin, YMax: vr.YMin}
		}
	case vr.YMax == nr.YMin: // neighbor is above v
		if vr.XMax >= nr.XMax {
			leafRect = rectdual.Rect{XMin: nr.XMax, YMin: nr.YMin, XMax: nr.XMax, YMax: nr.YMax}
		} else {
			leafRect = rectdual.Rect{XMin: vr.XMax, YMin: nr.YMin, XMax: nr.XMax, YMax: nr.YMin}
		}
	case vr.XMin == nr.XMax: // neighbor is left of v
		if vr.YMax >= nr.YMax {
			leafRect = rectdual.Rect{XMin: nr.XMin, YMin: nr.YMax, XMax: nr.XMax, YMax: nr.YMax}
		} else {
			leafRect = rectdual.Rect{XMin: nr.XMax, YMin: vr.YMax, XMax: nr.XMax, YMax: nr.YMax}
		}
	default: // neighbor is below v
		if vr.XMin <= nr.XMin {
			leafRect = rectdual.Rect{XMin: nr.XMin, YMin: nr.YMin, XMax: nr.XMin, YMax: nr.YMax}
		} else {
			leafRect = rectdual.Rect{XMin: nr.XMin, YMin: nr.YMax, XMax: vr.XMin, YMax: nr.YMax}
		}
	}

	newRects := make([]rectdual.Rect, oldN+1)
	copy(newRects, d.Rects)
	newRects[leaf] = leafRect
	newDual := &rectdual.Dual{Rects: newRects}

	return newComp, newDual, nil
}
