package decompose

import (
	"github.com/Parranoh/ldrawing/internal/cyclist"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// mutEdge mirrors spec.md §4.2.5's mut_edges table: a live edge's current
// endpoints plus iterators into each endpoint's cyclic adjacency list.
type mutEdge struct {
	tail, head     embed.VertexID
	tailIt, headIt cyclist.Iterator[embed.EdgeID]
}

// splitState carries the mutable per-vertex cyclic adjacency lists and the
// mut_edges table through the whole splitting pass (§4.2.5), growing as new
// vertices/edges are created by each triangle's surgery.
type splitState struct {
	g         *embed.EmbeddedGraph
	adjacency []*cyclist.List[embed.EdgeID] // indexed by (possibly new) VertexID
	labels    []string                      // parallel to adjacency
	mut       map[embed.EdgeID]*mutEdge

	// originalEdge[e] is the edge id that e descends from: its own id for an
	// original edge, and for an edge newly created by a split (a "duplicate"
	// triangle-boundary edge) the id of the triangle edge it duplicates.
	originalEdge map[embed.EdgeID]embed.EdgeID
	// originalVertex[v] is the original-graph vertex id v descends from.
	originalVertex map[embed.VertexID]embed.VertexID

	nextEdgeID embed.EdgeID
}

func newSplitState(g *embed.EmbeddedGraph) *splitState {
	s := &splitState{
		g:              g,
		adjacency:      make([]*cyclist.List[embed.EdgeID], g.NumVertices()),
		labels:         make([]string, g.NumVertices()),
		mut:            make(map[embed.EdgeID]*mutEdge, g.NumEdges()),
		originalEdge:   make(map[embed.EdgeID]embed.EdgeID, g.NumEdges()),
		originalVertex: make(map[embed.VertexID]embed.VertexID, g.NumVertices()),
		nextEdgeID:     embed.EdgeID(g.NumEdges()),
	}
	for v := 0; v < g.NumVertices(); v++ {
		l := &cyclist.List[embed.EdgeID]{}
		for _, eid := range g.Vertices[v].Rotation {
			l.PushBack(eid)
		}
		s.adjacency[v] = l
		s.labels[v] = g.Vertices[v].Label
		s.originalVertex[embed.VertexID(v)] = embed.VertexID(v)
	}
	for id, e := range g.Edges {
		eid := embed.EdgeID(id)
		s.originalEdge[eid] = eid
		s.mut[eid] = &mutEdge{
			tail: e.Tail, head: e.Head,
			tailIt: findIter(s.adjacency[e.Tail], eid),
			headIt: findIter(s.adjacency[e.Head], eid),
		}
	}
	return s
}

func findIter(l *cyclist.List[embed.EdgeID], eid embed.EdgeID) cyclist.Iterator[embed.EdgeID] {
	it := l.Begin()
	for {
		if it.Value() == eid {
			return it
		}
		it = it.Next()
		if l.AtEnd(it) {
			break
		}
	}
	return it
}

func (s *splitState) newVertex(origin embed.VertexID) embed.VertexID {
	id := embed.VertexID(len(s.adjacency))
	s.adjacency = append(s.adjacency, &cyclist.List[embed.EdgeID]{})
	s.labels = append(s.labels, s.labels[origin]+"'")
	s.originalVertex[id] = s.originalVertex[origin]
	return id
}

func (s *splitState) newEdge(tail, head embed.VertexID, dup embed.EdgeID) embed.EdgeID {
	id := s.nextEdgeID
	s.nextEdgeID++
	s.originalEdge[id] = dup
	s.mut[id] = &mutEdge{tail: tail, head: head}
	return id
}

// splitOne performs the surgery of spec.md §4.2.5 for a single separating
// triangle. It creates three new vertices u',v',w' and three duplicate
// boundary edges, splices the "outside" arc at each triangle vertex into its
// prime, and runs the pincer test to mark designated faces on the retained
// side.
func (s *splitState) splitOne(t SeparatingTriangle, reversed bool, designated map[embed.VertexID]int) {
	verts := t.vertices()
	edges := t.edges()

	primes := make([]embed.VertexID, 3)
	for i, x := range verts {
		primes[i] = s.newVertex(x)
	}
	// New duplicate edges for the donated (split-off) side, one per
	// original triangle edge, wired between the corresponding primes.
	newEdges := make([]embed.EdgeID, 3)
	for i, oe := range edges {
		newEdges[i] = s.newEdge(primes[i], primes[(i+1)%3], oe)
	}

	for i, x := range verts {
		xPrime := primes[i]
		// The two triangle edges incident to x: the one "ending" at x
		// (edges[(i+2)%3], i.e. w->u style) and the one "starting" at x
		// (edges[i]).
		eIn := edges[(i+2)%3]
		eOut := edges[i]

		list := s.adjacency[x]
		itIn := s.mut[eIn].iterAt(x, list)
		itOut := s.mut[eOut].iterAt(x, list)

		// Direction of the donated arc depends on uvw_reversed (§4.2.5
		// step 1): by default the arc strictly between itIn and itOut
		// (exclusive) going clockwise is donated; when reversed, the roles
		// of the two bounding iterators swap.
		first, last := itIn, itOut
		if reversed {
			first, last = itOut, itIn
		}

		donated := s.adjacency[xPrime]
		fc, lc := donated.Splice(donated.Begin(), list, first, last)
		_ = fc
		_ = lc

		// Rewrite the bounding slots: the retained side keeps the original
		// triangle edges, now re-pointed so the prime's copy sees the new
		// duplicate edges at its two bracketing positions.
		newIn := newEdges[(i+2)%3]
		newOut := newEdges[i]
		fc.SetValue(newOut)
		lc.SetValue(newIn)

		// Fix endpoint bookkeeping for every edge now living under xPrime:
		// walk the donated list and, for edges whose tail/head was x,
		// repoint it to xPrime.
		s.retargetEndpoints(donated, x, xPrime)

		// Pincer test (§4.2.5 step 5): if x's remaining (retained) ring has
		// mixed in/out orientation in its middle, x needs a designated face.
		if s.pincerNeeds(list, x) {
			ve := list.Insert(itOut.Next(), embed.DummyEdge)
			_ = ve
			designated[x] = s.rotationSlot(list, embed.DummyEdge)
		}
	}

	for i := range primes {
		s.mut[newEdges[i]].tailIt = findIter(s.adjacency[primes[i]], newEdges[i])
		s.mut[newEdges[(i+2)%3]].headIt = findIter(s.adjacency[primes[i]], newEdges[(i+2)%3])
	}
}

func (s *splitState) retargetEndpoints(list *cyclist.List[embed.EdgeID], from, to embed.VertexID) {
	for _, eid := range list.ToSlice() {
		if eid == embed.DummyEdge {
			continue
		}
		me, ok := s.mut[eid]
		if !ok {
			continue
		}
		if me.tail == from {
			me.tail = to
		}
		if me.head == from {
			me.head = to
		}
	}
}

func (s *splitState) pincerNeeds(list *cyclist.List[embed.EdgeID], x embed.VertexID) bool {
	vals := list.ToSlice()
	if len(vals) < 3 {
		return false
	}
	dirOf := func(eid embed.EdgeID) bool {
		if eid == embed.DummyEdge {
			return false
		}
		me := s.mut[eid]
		return me.tail == x // true = outgoing
	}
	first, last := dirOf(vals[0]), dirOf(vals[len(vals)-1])
	if first != last {
		return false
	}
	for _, eid := range vals[1 : len(vals)-1] {
		if eid == embed.DummyEdge || dirOf(eid) != first {
			return true
		}
	}
	return false
}

func (s *splitState) rotationSlot(list *cyclist.List[embed.EdgeID], sentinel embed.EdgeID) int {
	vals := list.ToSlice()
	for i, v := range vals {
		if v == sentinel {
			return i + 1 // 1-based
		}
	}
	return 0
}

// iterAt returns an iterator to this mutEdge's slot at vertex v (v must be
// one of the edge's current endpoints), re-resolving from the list if the
// cached iterator is stale is unnecessary here since lists are long-lived;
// it trusts tailIt/headIt.
func (m *mutEdge) iterAt(v embed.VertexID, list *cyclist.List[embed.EdgeID]) cyclist.Iterator[embed.EdgeID] {
	if m.tail == v {
		return m.tailIt
	}
	return m.headIt
}
