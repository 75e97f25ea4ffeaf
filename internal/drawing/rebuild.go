package drawing

import (
	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/port"
)

// subdivideOuterEdge implements spec.md §4.4 step 1's dummy-vertex
// insertion: splits targetEdgeID with a new vertex x, adds the dummy edge
// (x, apex) into the interior face sharing targetEdgeID, and rotates the
// outer face to the resulting length-4 cycle, with x's position in that
// cycle keyed on targetEdgeID's already-resolved port assignment (the
// literature's add_x outer-face rotation switch). Returns the rebuilt
// component and x's new vertex id.
func subdivideOuterEdge(comp *decompose.FourBlockComponent, a port.Assignment, targetEdgeID embed.EdgeID) (*decompose.FourBlockComponent, embed.VertexID, error) {
	g := comp.Graph
	target, err := g.EdgeAt(targetEdgeID)
	if err != nil {
		return nil, 0, err
	}
	p, q := target.Tail, target.Head
	third := thirdOuterVertex(g, p, q)
	apex, err := findApex(g, p, q, third)
	if err != nil {
		return nil, 0, err
	}

	oldN := g.NumVertices()
	x := embed.VertexID(oldN)
	b := embed.NewBuilder(oldN + 1)
	for v := 0; v < oldN; v++ {
		vv := embed.VertexID(v)
		vert, _ := g.VertexAt(vv)
		b.SetLabel(vv, vert.Label)
	}

	oldToNew := make(map[embed.EdgeID]embed.EdgeID, len(g.Edges))
	var newOriginalEdge []embed.EdgeID
	for eid := embed.EdgeID(0); int(eid) < len(g.Edges); eid++ {
		if eid == targetEdgeID {
			continue
		}
		e := g.Edges[eid]
		nid := b.AddEdge(e.Tail, e.Head)
		oldToNew[eid] = nid
		newOriginalEdge = append(newOriginalEdge, comp.OriginalEdge[eid])
	}
	ePX := b.AddEdge(p, x)
	newOriginalEdge = append(newOriginalEdge, comp.OriginalEdge[targetEdgeID])
	eXQ := b.AddEdge(x, q)
	newOriginalEdge = append(newOriginalEdge, embed.DummyEdge)
	eXY := b.AddEdge(x, apex)
	newOriginalEdge = append(newOriginalEdge, embed.DummyEdge)

	for v := 0; v < oldN; v++ {
		vv := embed.VertexID(v)
		oldRot := g.Vertices[v].Rotation
		newRot := make([]embed.EdgeID, 0, len(oldRot)+1)
		for _, eid := range oldRot {
			if eid == targetEdgeID {
				switch vv {
				case p:
					newRot = append(newRot, ePX)
				case q:
					newRot = append(newRot, eXQ)
				}
				continue
			}
			newRot = append(newRot, oldToNew[eid])
		}
		if vv == apex {
			newRot = insertAfterNeighborEdge(g, oldToNew, apex, p, q, eXY, newRot)
		}
		b.SetRotation(vv, newRot)
	}
	b.SetRotation(x, []embed.EdgeID{ePX, eXY, eXQ})

	placeholderOuter := quadOuterFace(g, p, q, x)
	newGraph, err := b.Build(placeholderOuter)
	if err != nil {
		return nil, 0, err
	}
	oe := comp.OriginalEdge[targetEdgeID]
	var pa byte
	if a.EW(int(oe)) {
		pa |= 0b01
	}
	if a.NS(int(oe)) {
		pa |= 0b10
	}
	newGraph.OuterFace = rotatedOuterFace(newGraph, x, pa)

	newOriginalVertex := make([]embed.VertexID, oldN+1)
	copy(newOriginalVertex, comp.OriginalVertex)
	newOriginalVertex[x] = embed.DummyVertex

	newDesignated := make([]int, oldN+1)
	copy(newDesignated, comp.DesignatedFace)

	return &decompose.FourBlockComponent{
		Graph:          newGraph,
		OriginalEdge:   newOriginalEdge,
		OriginalVertex: newOriginalVertex,
		DesignatedFace: newDesignated,
	}, x, nil
}

func thirdOuterVertex(g *embed.EmbeddedGraph, p, q embed.VertexID) embed.VertexID {
	for _, v := range g.OuterFace {
		if v != p && v != q {
			return v
		}
	}
	return embed.DummyVertex
}

func isAdjacent(g *embed.EmbeddedGraph, u, v embed.VertexID) bool {
	uVert, _ := g.VertexAt(u)
	for _, eid := range uVert.Rotation {
		e, _ := g.EdgeAt(eid)
		if e.Other(u) == v {
			return true
		}
	}
	return false
}

// findApex locates the interior triangle's third vertex for edge (p,q):
// a common neighbor of p and q other than exclude.
func findApex(g *embed.EmbeddedGraph, p, q, exclude embed.VertexID) (embed.VertexID, error) {
	pVert, err := g.VertexAt(p)
	if err != nil {
		return 0, err
	}
	for _, eid := range pVert.Rotation {
		e, _ := g.EdgeAt(eid)
		cand := e.Other(p)
		if cand == q || cand == exclude {
			continue
		}
		if isAdjacent(g, cand, q) {
			return cand, nil
		}
	}
	return 0, ErrNoInteriorApex
}

// insertAfterNeighborEdge inserts eXY into apex's rebuilt rotation right
// after whichever of apex's edges led to p or q, so the dummy edge lands
// between the two rotation arcs facing the subdivided face.
func insertAfterNeighborEdge(g *embed.EmbeddedGraph, oldToNew map[embed.EdgeID]embed.EdgeID, apex, p, q embed.VertexID, eXY embed.EdgeID, newRot []embed.EdgeID) []embed.EdgeID {
	// p's and q's edges to apex are consecutive rotation slots bounding the
	// subdivided face; insert right after the earlier of the two so the
	// result is independent of map iteration order.
	idx := -1
	for oldID, nid := range oldToNew {
		e := g.Edges[oldID]
		if e.Tail != apex && e.Head != apex {
			continue
		}
		if e.Other(apex) != p && e.Other(apex) != q {
			continue
		}
		for i, eid := range newRot {
			if eid == nid && (idx == -1 || i < idx) {
				idx = i
			}
		}
	}
	if idx == -1 {
		return append(newRot, eXY)
	}
	out := make([]embed.EdgeID, 0, len(newRot)+1)
	out = append(out, newRot[:idx+1]...)
	out = append(out, eXY)
	out = append(out, newRot[idx+1:]...)
	return out
}

// quadOuterFace subdivides the (p,q) edge of g's length-3 outer face with x,
// preserving clockwise order. Used only to produce a placeholder 4-cycle to
// satisfy Builder.Build; rotatedOuterFace overwrites it with the rotation
// the already-resolved port assignment actually calls for.
func quadOuterFace(g *embed.EmbeddedGraph, p, q, x embed.VertexID) []embed.VertexID {
	of := g.OuterFace
	out := make([]embed.VertexID, 0, 4)
	for i, v := range of {
		out = append(out, v)
		nxt := of[(i+1)%len(of)]
		if (v == p && nxt == q) || (v == q && nxt == p) {
			out = append(out, x)
		}
	}
	return out
}

// otherAtSlot returns the neighbor vertex occupying rotation slot idx of v.
func otherAtSlot(g *embed.EmbeddedGraph, v embed.VertexID, idx int) embed.VertexID {
	rot := g.Vertices[v].Rotation
	eid := rot[idx%len(rot)]
	e, _ := g.EdgeAt(eid)
	return e.Other(v)
}

// rotatedOuterFace implements add_x's outer-face rotation switch: u, v, w
// chase x's and its neighbors' rotation-slot-0 edges (a fixed cyclic walk
// around the new length-4 face regardless of pa), and the masked 2-bit port
// value pa of the subdivided edge's original edge selects which of the four
// rotations of {x, u, v, w} is clockwise.
func rotatedOuterFace(g *embed.EmbeddedGraph, x embed.VertexID, pa byte) []embed.VertexID {
	u := otherAtSlot(g, x, 0)
	v := otherAtSlot(g, u, 0)
	w := otherAtSlot(g, v, 0)
	switch pa & 0b11 {
	case 0b00:
		return []embed.VertexID{v, w, x, u}
	case 0b01:
		return []embed.VertexID{w, x, u, v}
	case 0b10:
		return []embed.VertexID{u, v, w, x}
	default: // 0b11
		return []embed.VertexID{x, u, v, w}
	}
}
