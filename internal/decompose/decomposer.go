package decompose

import "github.com/Parranoh/ldrawing/internal/embed"

// Decompose runs the full pipeline of spec.md §4.2 on g: list separating
// triangles, compute DFS lowpoint/return-side data, canonicalize rotation
// order, order the triangles, split the graph along them, and extract the
// resulting FourBlockTree.
//
// Precondition: g is simple, 3-connected, and triangulated (every bounded
// face is a triangle) — ErrNotSimple is not actively detected here (that
// would require a full planarity+triangulation check out of scope for this
// package); callers validate upstream (the gio reader validates structural
// well-formedness, and RectDual's (3,1)-ordering step fails loudly if a
// component turns out not to be a 4-connected triangulation).
func Decompose(g *embed.EmbeddedGraph) (*FourBlockTree, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	triangles := ListSeparatingTriangles(g)

	root := g.OuterFace[0]
	firstChild := g.OuterFace[1]
	info := dfsAnalyze(g, root, firstChild)
	canonicalRotation(g, info)
	ordered := orderTriangles(g, info, root, triangles)

	state := newSplitState(g)
	designated := make(map[embed.VertexID]int)
	for _, t := range ordered {
		reversed := uvwReversed(g, info, t)
		state.splitOne(t, reversed, designated)
	}

	// Anchor the root's outer face: rotate adjacency_list[outer_face[i]]
	// (§4.2.5 final paragraph) so the edge leading to outer_face[(i+1)%3]
	// is first, for i=0,1,2.
	for i := 0; i < 3 && i < len(g.OuterFace); i++ {
		v := g.OuterFace[i]
		next := g.OuterFace[(i+1)%3]
		anchorRotation(state, v, next)
	}

	// designated-face slots are recorded directly on the split-state
	// adjacency via the virtual-edge sentinel during splitOne and read back
	// per-component in extractComponents; the designated map is not read
	// after this point.
	_ = designated

	tree := extractComponents(state, ordered, g.OuterFace)
	return tree, nil
}

// uvwReversed implements spec.md §4.2.5 step 1: determine whether the
// triangle, read in its stored (U,V,W) order, is clockwise or
// counter-clockwise relative to the outside of the split, by comparing
// rotation indices at the triangle vertex with smallest DFS height.
func uvwReversed(g *embed.EmbeddedGraph, info *dfsInfo, t SeparatingTriangle) bool {
	verts := t.vertices()
	edges := t.edges()
	firstIdx := 0
	for i := 1; i < 3; i++ {
		if info.height[verts[i]] < info.height[verts[firstIdx]] {
			firstIdx = i
		}
	}
	x := verts[firstIdx]
	eIn := edges[(firstIdx+2)%3]
	eOut := edges[firstIdx]
	parent := info.parentEdge[x]
	if parent == embed.DummyEdge {
		return false
	}
	d := g.Vertices[x].Degree()
	ip := g.RotationIndex(x, parent)
	iIn := g.RotationIndex(x, eIn)
	iOut := g.RotationIndex(x, eOut)
	// If eOut sits closer (clockwise) to the parent edge than eIn does, the
	// stored order already matches the outside-clockwise convention.
	dOut := ((iOut-ip)%d + d) % d
	dIn := ((iIn-ip)%d + d) % d
	return dOut > dIn
}

// anchorRotation rotates v's adjacency so the edge toward next appears first.
func anchorRotation(s *splitState, v, next embed.VertexID) {
	list := s.adjacency[v]
	vals := list.ToSlice()
	idx := -1
	for i, eid := range vals {
		if eid == embed.DummyEdge {
			continue
		}
		me := s.mut[eid]
		other := me.tail
		if other == v {
			other = me.head
		}
		if other == next {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return
	}
	it := list.Begin()
	for i := 0; i < idx; i++ {
		it = it.Next()
	}
	list.ResetHead(it)
}
