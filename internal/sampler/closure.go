package sampler

import "github.com/Parranoh/ldrawing/internal/embed"

// face is a currently-open triangular face (a,b,c), clockwise, awaiting a
// stacked vertex.
type face struct {
	a, b, c embed.VertexID
}

// buildTriangulation implements a stacked-triangulation closure: starting
// from a base triangle, one new vertex per tree node (visited in preorder)
// is stacked into the oldest open face of a FIFO face queue, producing a
// simple maximal planar triangulation. Only the number of nodes matters;
// the tree's branching structure does not affect the result. This is a documented
// simplification of the literature closure operation (which glues tree
// "buds" directly along a single contour walk rather than a face queue) —
// see DESIGN.md.
func buildTriangulation(nodes []treeNode) (*embed.EmbeddedGraph, error) {
	rot := make(map[embed.VertexID][]embed.VertexID, len(nodes)+3)
	base := [3]embed.VertexID{0, 1, 2}
	rot[0] = []embed.VertexID{1, 2}
	rot[1] = []embed.VertexID{2, 0}
	rot[2] = []embed.VertexID{0, 1}

	nextID := embed.VertexID(3)
	queue := []face{{base[0], base[1], base[2]}}
	for _, idx := range preorder(nodes) {
		if len(queue) == 0 {
			break
		}
		f := queue[0]
		queue = queue[1:]
		v := nextID
		nextID++
		_ = idx
		stackInto(rot, f, v)
		queue = append(queue,
			face{f.a, f.b, v},
			face{f.b, f.c, v},
			face{f.c, f.a, v},
		)
	}

	return bakeGraph(rot, nextID, base)
}

// stackInto splices v into the three rotations bounding face f, maintaining
// the invariant that for every clockwise face (p,q,r), rot[p] has q
// immediately followed by r.
func stackInto(rot map[embed.VertexID][]embed.VertexID, f face, v embed.VertexID) {
	insertAfter(rot, f.a, f.b, v)
	insertAfter(rot, f.b, f.c, v)
	insertAfter(rot, f.c, f.a, v)
	rot[v] = []embed.VertexID{f.a, f.b, f.c}
}

func insertAfter(rot map[embed.VertexID][]embed.VertexID, vertex, after, newV embed.VertexID) {
	lst := rot[vertex]
	idx := -1
	for i, x := range lst {
		if x == after {
			idx = i
			break
		}
	}
	if idx == -1 {
		rot[vertex] = append(lst, newV)
		return
	}
	out := make([]embed.VertexID, 0, len(lst)+1)
	out = append(out, lst[:idx+1]...)
	out = append(out, newV)
	out = append(out, lst[idx+1:]...)
	rot[vertex] = out
}

type vertexPair struct{ u, v embed.VertexID }

func pairKey(u, v embed.VertexID) vertexPair {
	if u < v {
		return vertexPair{u, v}
	}
	return vertexPair{v, u}
}

// bakeGraph converts the neighbor-ordered rotation map into an
// embed.EmbeddedGraph, assigning one edge id per unordered vertex pair.
func bakeGraph(rot map[embed.VertexID][]embed.VertexID, n embed.VertexID, base [3]embed.VertexID) (*embed.EmbeddedGraph, error) {
	b := embed.NewBuilder(int(n))
	edgeID := make(map[vertexPair]embed.EdgeID)
	for v := embed.VertexID(0); v < n; v++ {
		for _, u := range rot[v] {
			k := pairKey(v, u)
			if _, ok := edgeID[k]; !ok {
				edgeID[k] = b.AddEdge(v, u)
			}
		}
	}
	for v := embed.VertexID(0); v < n; v++ {
		neighbors := rot[v]
		rotation := make([]embed.EdgeID, len(neighbors))
		for i, u := range neighbors {
			rotation[i] = edgeID[pairKey(v, u)]
		}
		b.SetRotation(v, rotation)
	}
	return b.Build([]embed.VertexID{base[0], base[1], base[2]})
}
