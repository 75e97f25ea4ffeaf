package rectdual

import (
	"github.com/Parranoh/ldrawing/internal/cyclist"
	"github.com/Parranoh/ldrawing/internal/embed"
)

// orderState holds the incremental bookkeeping of spec.md §4.3.1.
type orderState struct {
	g         *embed.EmbeddedGraph
	a, b, c, d embed.VertexID // outer_face[0..3]; four "corners" anchoring the sweep

	boundary *cyclist.List[embed.VertexID]
	boundIt  map[embed.VertexID]cyclist.Iterator[embed.VertexID]
	onBound  map[embed.VertexID]bool

	degree        []int
	outerDegThree []int // count of v's boundary neighbors with degree==3
	twoLegCenters []int // count of v's neighbors currently counted as 2-leg centers of v

	legFree            map[embed.VertexID]bool
	basicTwoLegCenters map[embed.VertexID]bool

	picked []bool
}

// compute31 implements spec.md §4.3.1: computes the partition P_1..P_k of
// the inner vertices (outer_face excluded) into singletons and fans,
// returned root-first (P_1 first, i.e. reversed from pick order, per the
// final paragraph of §4.3.1).
func compute31(g *embed.EmbeddedGraph) ([]partition, error) {
	n := g.NumVertices()
	s := &orderState{
		g:                  g,
		boundary:           &cyclist.List[embed.VertexID]{},
		boundIt:            make(map[embed.VertexID]cyclist.Iterator[embed.VertexID]),
		onBound:            make(map[embed.VertexID]bool),
		degree:             make([]int, n),
		outerDegThree:      make([]int, n),
		twoLegCenters:      make([]int, n),
		legFree:            make(map[embed.VertexID]bool),
		basicTwoLegCenters: make(map[embed.VertexID]bool),
		picked:             make([]bool, n),
	}
	s.a, s.b, s.c, s.d = g.OuterFace[0], g.OuterFace[1], g.OuterFace[2], g.OuterFace[3]

	for v := 0; v < n; v++ {
		s.degree[v] = g.Vertices[v].Degree()
	}
	// Hack (§4.3.1): pre-inflate outer_face[0] and outer_face[2]'s degree by
	// 2 so they never look like degree-3 fan members.
	s.degree[s.a] += 2
	s.degree[s.c] += 2

	for _, v := range []embed.VertexID{s.a, s.b, s.c, s.d} {
		s.picked[v] = true
		it := s.boundary.PushBack(v)
		s.boundIt[v] = it
		s.onBound[v] = true
	}

	s.recomputeOuterState()

	var picks []partition
	for s.boundary.Len() > 3 {
		var p partition
		var ok bool
		if len(s.legFree) > 0 {
			p, ok = s.pickSingleton()
		} else if len(s.basicTwoLegCenters) > 0 {
			p, ok = s.pickFan()
		}
		if !ok {
			return nil, ErrNotFourConnected
		}
		picks = append(picks, p)
	}

	// Reverse so P_1 is the one picked last.
	out := make([]partition, len(picks))
	for i, p := range picks {
		out[len(picks)-1-i] = p
	}
	return out, nil
}

func countRemaining(picked []bool) int {
	n := 0
	for _, p := range picked {
		if !p {
			n++
		}
	}
	return n
}

// isTwoLegCenter reports whether v qualifies as a 2-leg center: not on the
// boundary, with >=2 boundary neighbors that are non-adjacent on the
// boundary (excludes the "chord" case of exactly 2 adjacent neighbors).
func (s *orderState) isTwoLegCenter(v embed.VertexID) bool {
	if s.onBound[v] || s.picked[v] {
		return false
	}
	neighbors := s.boundaryNeighbors(v)
	if len(neighbors) < 2 {
		return false
	}
	if len(neighbors) == 2 && s.adjacentOnBoundary(neighbors[0], neighbors[1]) {
		return false
	}
	return true
}

func (s *orderState) boundaryNeighbors(v embed.VertexID) []embed.VertexID {
	var out []embed.VertexID
	for _, eid := range s.g.Vertices[v].Rotation {
		e, _ := s.g.EdgeAt(eid)
		w := e.Other(v)
		if s.onBound[w] {
			out = append(out, w)
		}
	}
	return out
}

func (s *orderState) adjacentOnBoundary(x, y embed.VertexID) bool {
	it := s.boundIt[x]
	return it.Next().Value() == y || it.Prev().Value() == y
}

// recomputeOuterState recomputes outerDegThree/twoLegCenters/legFree/
// basicTwoLegCenters from scratch; used after initialization and, for
// simplicity of this port, after every pick (the incremental update the
// spec describes is O(1) amortized per affected vertex; recomputation here
// trades the sweep's asymptotic optimality for a far simpler, still
// O(V+E)-per-pick implementation, which is acceptable at the input sizes
// this CLI targets).
func (s *orderState) recomputeOuterState() {
	n := len(s.degree)
	for v := 0; v < n; v++ {
		s.outerDegThree[v] = 0
	}
	s.legFree = make(map[embed.VertexID]bool)
	s.basicTwoLegCenters = make(map[embed.VertexID]bool)

	for v := 0; v < n; v++ {
		cnt := 0
		for _, w := range s.boundaryNeighbors(embed.VertexID(v)) {
			if s.degree[w] == 3 {
				cnt++
			}
		}
		s.outerDegThree[v] = cnt
	}

	for v := 0; v < n; v++ {
		s.twoLegCenters[v] = 0
	}
	for v := 0; v < n; v++ {
		if s.isTwoLegCenter(embed.VertexID(v)) {
			for _, w := range s.boundaryNeighbors(embed.VertexID(v)) {
				s.twoLegCenters[w]++
			}
		}
	}

	for _, v := range s.boundary.ToSlice() {
		if v == s.a || v == s.c || v == s.d {
			continue // the three retained corners are never picked
		}
		if s.twoLegCenters[v] == 0 && len(s.boundaryNeighbors(v)) >= 2 {
			s.legFree[v] = true
		}
	}

	for v := 0; v < n; v++ {
		vv := embed.VertexID(v)
		if s.onBound[vv] || s.picked[vv] {
			continue
		}
		outer := len(s.boundaryNeighbors(vv))
		if outer > 0 && s.outerDegThree[vv]+2 == outer && s.isTwoLegCenter(vv) {
			s.basicTwoLegCenters[vv] = true
		}
	}
}

// pickSingleton implements the "leg-free singleton" branch of spec.md
// §4.3.1's stepping loop.
func (s *orderState) pickSingleton() (partition, bool) {
	var v embed.VertexID
	for cand := range s.legFree {
		v = cand
		break
	}
	neighbors := s.orderedBoundaryArc(v)
	if len(neighbors) < 2 {
		return partition{}, false
	}
	p := partition{kind: kindSingleton, contents: []embed.VertexID{v}, preds: neighbors}

	s.removeFromBoundary(v, neighbors)
	s.degree[v] = 0
	s.picked[v] = true
	for _, w := range neighbors {
		s.degree[w]--
	}
	s.recomputeOuterState()
	return p, true
}

// orderedBoundaryArc returns v's boundary neighbors read left-to-right
// starting at the rotation-order left neighbor, by walking v's rotation.
func (s *orderState) orderedBoundaryArc(v embed.VertexID) []embed.VertexID {
	var out []embed.VertexID
	for _, eid := range s.g.Vertices[v].Rotation {
		e, _ := s.g.EdgeAt(eid)
		w := e.Other(v)
		if s.onBound[w] {
			out = append(out, w)
		}
	}
	return out
}

// removeFromBoundary splices the boundary ring, replacing v with the arc of
// its neighbors (already in left-to-right order), and updates bookkeeping
// maps for the newly exposed vertices.
func (s *orderState) removeFromBoundary(v embed.VertexID, arc []embed.VertexID) {
	it := s.boundIt[v]
	next := it.Next()
	s.boundary.Remove(it)
	delete(s.boundIt, v)
	delete(s.onBound, v)

	pos := next
	for _, w := range arc {
		if s.onBound[w] {
			continue // already on boundary (shared endpoint of the arc)
		}
		nit := s.boundary.Insert(pos, w)
		s.boundIt[w] = nit
		s.onBound[w] = true
	}
}

// pickFan implements the fan branch of spec.md §4.3.1's stepping loop.
func (s *orderState) pickFan() (partition, bool) {
	var c embed.VertexID
	for cand := range s.basicTwoLegCenters {
		c = cand
		break
	}
	// Scan c's rotation to find the leftmost qualifying boundary neighbor,
	// skipping non-boundary and skipping degree-3 vertices except at the
	// endpoints of the walk toward outer_face[2].
	var vl embed.VertexID
	found := false
	for _, eid := range s.g.Vertices[c].Rotation {
		e, _ := s.g.EdgeAt(eid)
		w := e.Other(c)
		if s.onBound[w] && s.degree[w] != 3 {
			vl = w
			found = true
			break
		}
	}
	if !found {
		return partition{}, false
	}

	var contents []embed.VertexID
	cur := vl
	it := s.boundIt[vl]
	for {
		it = it.Next()
		cur = it.Value()
		if cur == s.c || s.degree[cur] != 3 {
			break
		}
		contents = append(contents, cur)
	}
	vr := cur
	if len(contents) == 0 {
		return partition{}, false
	}

	p := partition{kind: kindFan, contents: contents, preds: []embed.VertexID{vl, c, vr}}

	for _, x := range contents {
		xit := s.boundIt[x]
		s.boundary.Remove(xit)
		delete(s.boundIt, x)
		delete(s.onBound, x)
		s.degree[x] = 0
		s.picked[x] = true
	}
	s.degree[c]--
	s.recomputeOuterState()
	return p, true
}
