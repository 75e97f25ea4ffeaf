package decompose

import (
	"sort"

	"github.com/Parranoh/ldrawing/internal/embed"
)

// canonicalRotation reorders each vertex's recorded tree-child edges
// (info.childOrder[v]) into the canonical "onion" order of spec.md §4.2.3:
// partition by return_side into left/right/both, sort each by descending
// lowpoint (back edges before tree edges on lowpoint ties), then merge
// left/right by taking the higher lowpoint (left on ties), with both
// appended last.
func canonicalRotation(g *embed.EmbeddedGraph, info *dfsInfo) {
	for v := range info.childOrder {
		children := info.childOrder[v]
		if len(children) == 0 {
			continue
		}
		var left, right, both []embed.EdgeID
		for _, ce := range children {
			switch info.returnSide[ce] {
			case sideLeft:
				left = append(left, ce)
			case sideRight:
				right = append(right, ce)
			default:
				both = append(both, ce)
			}
		}
		sortByLowpointDesc(info, left)
		sortByLowpointDesc(info, right)
		sortByLowpointDesc(info, both)

		merged := make([]embed.EdgeID, 0, len(children))
		i, j := 0, 0
		for i < len(left) && j < len(right) {
			if higherOrEqualPreferLeft(info, left[i], right[j]) {
				merged = append(merged, left[i])
				i++
			} else {
				merged = append(merged, right[j])
				j++
			}
		}
		merged = append(merged, left[i:]...)
		merged = append(merged, right[j:]...)
		merged = append(merged, both...)

		info.childOrder[v] = merged
	}
}

func sortByLowpointDesc(info *dfsInfo, edges []embed.EdgeID) {
	sort.SliceStable(edges, func(a, b int) bool {
		la, lb := info.lowpoint[edges[a]], info.lowpoint[edges[b]]
		if la != lb {
			return la > lb
		}
		// tie-break: back edges before tree edges
		ba, bb := info.backEdge[edges[a]], info.backEdge[edges[b]]
		if ba != bb {
			return ba
		}
		return false
	})
}

func higherOrEqualPreferLeft(info *dfsInfo, l, r embed.EdgeID) bool {
	ll, lr := info.lowpoint[l], info.lowpoint[r]
	if ll != lr {
		return ll > lr
	}
	return true // equal: prefer left
}

// triangleStamp records when a triangle was completed during the canonical
// walk (§4.2.4): traversal position (monotone counter) and the distance
// used to group/ order triangles completed on the same edge.
type triangleStamp struct {
	tri      SeparatingTriangle
	pos      int
	distance int
}

// orderTriangles implements spec.md §4.2.4: walk the tree in canonical
// rotation order; when a triangle's third edge is traversed it becomes
// complete; group triangles completed on the same edge and emit them in
// ascending distance order.
func orderTriangles(g *embed.EmbeddedGraph, info *dfsInfo, root embed.VertexID, triangles []SeparatingTriangle) []SeparatingTriangle {
	// Map each undirected vertex-pair to the triangles containing it, so we
	// can detect "this triangle's third edge was just traversed".
	edgeToTriangles := make(map[embed.EdgeID][]int)
	seenCount := make([]int, len(triangles))
	for idx, t := range triangles {
		for _, e := range t.edges() {
			edgeToTriangles[e] = append(edgeToTriangles[e], idx)
		}
	}

	var stamps []triangleStamp
	pos := 0
	completed := make([]bool, len(triangles))

	var walk func(v embed.VertexID)
	walk = func(v embed.VertexID) {
		for _, ce := range info.childOrder[v] {
			pos++
			for _, tidx := range edgeToTriangles[ce] {
				seenCount[tidx]++
				if seenCount[tidx] == 3 && !completed[tidx] {
					completed[tidx] = true
					stamps = append(stamps, triangleStamp{
						tri:      triangles[tidx],
						pos:      pos,
						distance: info.distance[ce],
					})
				}
			}
			e, _ := g.EdgeAt(ce)
			walk(e.Other(v))
		}
	}
	walk(root)

	// Also count back edges toward completing triangles, in DFS discovery
	// order (they complete as soon as the DFS first reaches their tail).
	for v := 0; v < g.NumVertices(); v++ {
		for _, eid := range g.Vertices[v].Rotation {
			if !info.backEdge[eid] {
				continue
			}
			e, _ := g.EdgeAt(eid)
			if int(e.Tail) != v {
				continue
			}
			for _, tidx := range edgeToTriangles[eid] {
				seenCount[tidx]++
				if seenCount[tidx] == 3 && !completed[tidx] {
					completed[tidx] = true
					pos++
					stamps = append(stamps, triangleStamp{
						tri:      triangles[tidx],
						pos:      pos,
						distance: info.distance[eid],
					})
				}
			}
		}
	}

	sort.SliceStable(stamps, func(i, j int) bool {
		if stamps[i].pos != stamps[j].pos {
			return stamps[i].pos < stamps[j].pos
		}
		return stamps[i].distance < stamps[j].distance
	})

	ordered := make([]SeparatingTriangle, len(stamps))
	for i, s := range stamps {
		ordered[i] = s.tri
	}
	return ordered
}
