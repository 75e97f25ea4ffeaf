package decompose

import (
	"sort"

	"github.com/Parranoh/ldrawing/internal/embed"
)

// ListSeparatingTriangles implements spec.md §4.2.1: Chiba-Nishizeki-style
// triangle listing, filtered down to triangles that are not faces (i.e. are
// separating, given the 3-connected triangulated precondition).
//
// Complexity: O(sum of deg(v)^2) in the worst case, standard for this
// listing algorithm on a bounded-degeneracy graph.
func ListSeparatingTriangles(g *embed.EmbeddedGraph) []SeparatingTriangle {
	n := g.NumVertices()

	// 1. Sort vertices by ascending degree (we only need the
	// descending-degree processing order, so read buckets back to front).
	order := make([]embed.VertexID, n)
	for v := range order {
		order[v] = embed.VertexID(v)
	}
	sort.Slice(order, func(i, j int) bool {
		return g.Vertices[order[i]].Degree() < g.Vertices[order[j]].Degree()
	})

	visited := make([]bool, n)
	marked := make([]bool, n)
	edgeToNeighbor := make([]embed.EdgeID, n) // e_v_[w] for the current v

	var triangles []SeparatingTriangle

	// 2. Process vertices in descending-degree order.
	for i := n - 1; i >= 0; i-- {
		v := order[i]
		visited[v] = true

		type neigh struct {
			w embed.VertexID
			e embed.EdgeID
		}
		var neighbors []neigh
		for _, eid := range g.Vertices[v].Rotation {
			e, _ := g.EdgeAt(eid)
			w := e.Other(v)
			marked[w] = true
			edgeToNeighbor[w] = eid
			neighbors = append(neighbors, neigh{w, eid})
		}

		for _, nb := range neighbors {
			u := nb.w
			if visited[u] {
				continue
			}
			for _, eid := range g.Vertices[u].Rotation {
				e, _ := g.EdgeAt(eid)
				w := e.Other(u)
				if w == v {
					continue
				}
				if !visited[w] && marked[w] {
					// Candidate triangle v,u,w. Test separation at u
					// (spec.md §4.2.1 step 3): e_uv and e_uw must not be
					// rotation-adjacent at u.
					euw := eid
					euv := findEdgeBetween(g, u, v)
					if euv == embed.DummyEdge {
						continue
					}
					iw := g.RotationIndex(u, euw)
					iv := g.RotationIndex(u, euv)
					d := g.Vertices[u].Degree()
					if embed.CircularDistance(iv, iw, d) > 1 {
						triangles = append(triangles, SeparatingTriangle{
							U: v, V: u, W: w,
							EUV: euv, EVW: eid, EWU: edgeToNeighbor[w],
						})
					}
				}
			}
		}

		// 4. Unmark neighbors after each v.
		for _, nb := range neighbors {
			marked[nb.w] = false
		}
	}

	return triangles
}

// findEdgeBetween returns the edge id connecting a and b, or DummyEdge if
// none exists.
func findEdgeBetween(g *embed.EmbeddedGraph, a, b embed.VertexID) embed.EdgeID {
	for _, eid := range g.Vertices[a].Rotation {
		e, _ := g.EdgeAt(eid)
		if e.Other(a) == b {
			return eid
		}
	}
	return embed.DummyEdge
}
