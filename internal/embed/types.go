package embed

import "github.com/pkg/errors"

// Sentinel errors for the embed package.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("embed: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("embed: edge not found")

	// ErrInvalidRotation indicates a rotation entry references a missing or
	// mismatched edge (see Validate).
	ErrInvalidRotation = errors.New("embed: rotation/edge index mismatch")

	// ErrBadOuterFace indicates the outer face is not length 3 or 4, or names
	// a vertex outside [0,n).
	ErrBadOuterFace = errors.New("embed: outer face must have length 3 or 4")
)

// VertexID is a dense, non-negative integer identifier, unique within a
// single EmbeddedGraph.
type VertexID int

// EdgeID is a dense, non-negative integer identifier, unique within a single
// EmbeddedGraph.
type EdgeID int

// DummyEdge is the sentinel "no edge" EdgeID. FourBlockComponent.OriginalEdge
// uses it for component edges that project to no original edge (the dummy
// and virtual edges added by the DrawingAssembler); the Decomposer also uses
// it as its virtual-edge marker in adjacency lists and as the parent edge of
// the DFS root. Edges that duplicate a triangle boundary during splitting
// keep the id of the triangle edge they duplicate.
const DummyEdge EdgeID = -1

// DummyVertex is the sentinel VertexID used by FourBlockComponent.
// OriginalVertex to mark component vertices introduced purely for geometric
// realization (the DrawingAssembler's dummy outer-face vertex x, or a
// designated-face leaf) rather than projecting to a real original vertex.
const DummyVertex VertexID = -1

// Edge is a directed pair (Tail, Head) of vertex ids plus this edge's
// rotation-slot index within each endpoint's rotation list. Direction is
// nominal: callers reinterpret it as outgoing/incoming relative to whichever
// endpoint they are examining.
type Edge struct {
	Tail, Head         VertexID
	IndexAtTail        int // position of this edge's id within vertices[Tail].Rotation
	IndexAtHead        int // position of this edge's id within vertices[Head].Rotation
}

// Other returns the endpoint of e that is not v.
func (e Edge) Other(v VertexID) VertexID {
	if e.Tail == v {
		return e.Head
	}
	return e.Tail
}

// Vertex carries a human label and the clockwise rotation of incident edge
// ids. len(Rotation) is this vertex's degree.
type Vertex struct {
	Label    string
	Rotation []EdgeID
}

// Degree returns the number of incident edges recorded in the rotation.
func (v *Vertex) Degree() int { return len(v.Rotation) }

// EmbeddedGraph is an immutable planar embedding: a rotation system plus a
// designated outer face. Mutation happens only through the Builder in
// build.go; once constructed, an EmbeddedGraph is read-only to every
// downstream subsystem (Decomposer, RectDual, PortAssigner, DrawingAssembler)
// — they derive new EmbeddedGraphs rather than mutating this one in place.
type EmbeddedGraph struct {
	Vertices  []Vertex
	Edges     []Edge
	OuterFace []VertexID // clockwise, length 3 or 4
}

// NumVertices returns len(Vertices).
func (g *EmbeddedGraph) NumVertices() int { return len(g.Vertices) }

// NumEdges returns len(Edges).
func (g *EmbeddedGraph) NumEdges() int { return len(g.Edges) }

// EdgeAt returns the Edge with the given id.
func (g *EmbeddedGraph) EdgeAt(id EdgeID) (Edge, error) {
	if int(id) < 0 || int(id) >= len(g.Edges) {
		return Edge{}, errors.Wrapf(ErrEdgeNotFound, "edge id %d", id)
	}
	return g.Edges[id], nil
}

// VertexAt returns the Vertex with the given id.
func (g *EmbeddedGraph) VertexAt(id VertexID) (*Vertex, error) {
	if int(id) < 0 || int(id) >= len(g.Vertices) {
		return nil, errors.Wrapf(ErrVertexNotFound, "vertex id %d", id)
	}
	return &g.Vertices[id], nil
}

// RotationIndex returns the position of edge eid within v's rotation, or -1.
func (g *EmbeddedGraph) RotationIndex(v VertexID, eid EdgeID) int {
	for i, e := range g.Vertices[v].Rotation {
		if e == eid {
			return i
		}
	}
	return -1
}

// NextInRotation returns the edge id that is k steps clockwise from eid in
// v's rotation (k may be negative), wrapping modulo degree(v).
func (g *EmbeddedGraph) NextInRotation(v VertexID, eid EdgeID, k int) EdgeID {
	rot := g.Vertices[v].Rotation
	d := len(rot)
	i := g.RotationIndex(v, eid)
	j := ((i+k)%d + d) % d
	return rot[j]
}

// CircularDistance returns the minimum of the forward and backward rotation
// distance between slots i and j modulo d, per spec.md §4.2.1 step 3.
func CircularDistance(i, j, d int) int {
	fwd := ((j - i) % d + d) % d
	back := d - fwd
	if fwd < back {
		return fwd
	}
	return back
}
