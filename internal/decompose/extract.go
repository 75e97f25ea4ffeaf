package decompose

import "github.com/Parranoh/ldrawing/internal/embed"

// rawEdge is a BFS-discovered component edge before local renumbering.
type rawEdge struct {
	from, to embed.VertexID
	eid      embed.EdgeID // original-split-state edge id
}

// extractComponents implements spec.md §4.2.6: given the split state and the
// triangle order used to split (plus the original outer face as a trailing
// sentinel "triangle"), extract the FourBlockTree by BFS over non-virtual
// edges, processing triangles in reverse order of §4.2.4.
func extractComponents(s *splitState, orderedTriangles []SeparatingTriangle, outerFace []embed.VertexID) *FourBlockTree {
	starts := make([]embed.VertexID, 0, len(orderedTriangles)+1)
	for _, t := range orderedTriangles {
		starts = append(starts, t.U)
	}
	starts = append(starts, outerFace[0]) // sentinel outer-face "triangle"

	visitedEdge := make(map[embed.EdgeID]bool)
	tree := &FourBlockTree{}

	// Process in reverse order of §4.2.4 (so the sentinel outer-face
	// component — ultimately the root — is extracted first), matching
	// spec.md §4.2.6 literally: the resulting tree already lists the root
	// first because the sentinel is processed before any real triangle.
	for i := len(starts) - 1; i >= 0; i-- {
		comp := bfsExtract(s, starts[i], visitedEdge)
		if comp != nil {
			tree.Components = append(tree.Components, comp)
		}
	}
	return tree
}

func bfsExtract(s *splitState, start embed.VertexID, visitedEdge map[embed.EdgeID]bool) *FourBlockComponent {
	visitedVertex := map[embed.VertexID]bool{start: true}
	order := []embed.VertexID{start}
	queue := []embed.VertexID{start}

	var rawEdges []rawEdge

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, eid := range s.adjacency[v].ToSlice() {
			if eid == embed.DummyEdge || visitedEdge[eid] {
				continue
			}
			me := s.mut[eid]
			other := me.tail
			if other == v {
				other = me.head
			}
			visitedEdge[eid] = true
			rawEdges = append(rawEdges, rawEdge{from: v, to: other, eid: eid})
			if !visitedVertex[other] {
				visitedVertex[other] = true
				order = append(order, other)
				queue = append(queue, other)
			}
		}
	}
	if len(order) == 0 {
		return nil
	}

	// Remap to dense component-local vertex/edge ids in BFS discovery order.
	localVID := make(map[embed.VertexID]embed.VertexID, len(order))
	for i, v := range order {
		localVID[v] = embed.VertexID(i)
	}
	localEID := make(map[embed.EdgeID]embed.EdgeID, len(rawEdges))
	for i, re := range rawEdges {
		localEID[re.eid] = embed.EdgeID(i)
	}

	comp := &FourBlockComponent{
		OriginalVertex: make([]embed.VertexID, len(order)),
		DesignatedFace: make([]int, len(order)),
		OriginalEdge:   make([]embed.EdgeID, len(rawEdges)),
	}
	for i, v := range order {
		comp.OriginalVertex[i] = s.originalVertex[v]
	}
	for i, re := range rawEdges {
		comp.OriginalEdge[i] = s.originalEdge[re.eid]
	}

	b := embed.NewBuilder(len(order))
	for i, v := range order {
		b.SetLabel(embed.VertexID(i), s.labels[v])
	}
	for _, re := range rawEdges {
		b.AddEdge(localVID[re.from], localVID[re.to])
	}

	// Build each local vertex's rotation by filtering the original adjacency
	// list down to edges captured for this component, preserving order, and
	// recording a designated face where a virtual-edge sentinel sits.
	for v, lv := range localVID {
		var rotation []embed.EdgeID
		for _, eid := range s.adjacency[v].ToSlice() {
			if eid == embed.DummyEdge {
				comp.DesignatedFace[lv] = len(rotation) + 1
				continue
			}
			if leid, ok := localEID[eid]; ok {
				rotation = append(rotation, leid)
			}
		}
		b.SetRotation(lv, rotation)
	}

	// The outer face of a component is the triangle (or original outer
	// face) that produced it: since BFS starts at that triangle's/face's
	// first vertex and that cycle is discovered before anything beyond it,
	// its vertices occupy the first len(outerFace) BFS slots in rotation
	// order around the component.
	outerLen := 3
	if len(order) == len(s.adjacency) { // only ever true for the root/sentinel
		outerLen = len(s.g.OuterFace)
	}
	outerLocal := make([]embed.VertexID, 0, outerLen)
	for i := 0; i < outerLen && i < len(order); i++ {
		outerLocal = append(outerLocal, embed.VertexID(i))
	}

	g, err := b.Build(outerLocal)
	if err != nil {
		// Keep going with an unvalidated graph; the pipeline boundary calls
		// Validate() explicitly and surfaces any real problem there with
		// full context rather than losing the component silently here.
		g = &embed.EmbeddedGraph{Vertices: make([]embed.Vertex, len(order)), OuterFace: outerLocal}
	}
	comp.Graph = g
	return comp
}
