package embed

import "github.com/pkg/errors"

// Builder assembles an EmbeddedGraph incrementally. It is the only type in
// this package allowed to mutate vertex rotations; once Build is called the
// resulting EmbeddedGraph is treated as read-only by every downstream
// subsystem.
type Builder struct {
	vertices []Vertex
	edges    []Edge
}

// NewBuilder creates a Builder with n empty vertices, each with an empty
// label (set one with SetLabel).
func NewBuilder(n int) *Builder {
	b := &Builder{vertices: make([]Vertex, n)}
	for i := range b.vertices {
		b.vertices[i].Label = ""
	}
	return b
}

// SetLabel sets vertex v's human label.
func (b *Builder) SetLabel(v VertexID, label string) {
	b.vertices[v].Label = label
}

// AddEdge appends a new directed edge (tail,head) with no rotation slots
// assigned yet; callers must later call SetRotation for every vertex to fix
// indices. Returns the new edge's id.
func (b *Builder) AddEdge(tail, head VertexID) EdgeID {
	id := EdgeID(len(b.edges))
	b.edges = append(b.edges, Edge{Tail: tail, Head: head})
	return id
}

// SetRotation fixes vertex v's clockwise rotation to the given edge ids (in
// order) and updates IndexAtTail/IndexAtHead on every edge touched.
func (b *Builder) SetRotation(v VertexID, rotation []EdgeID) {
	b.vertices[v].Rotation = append([]EdgeID(nil), rotation...)
	for idx, eid := range rotation {
		e := &b.edges[eid]
		if e.Tail == v {
			e.IndexAtTail = idx
		}
		if e.Head == v {
			e.IndexAtHead = idx
		}
		// self-loops are out of scope (spec.md §1 Non-goals: simple graphs
		// only) so Tail==Head never needs disambiguation here.
	}
}

// Build finalizes the graph with the given outer face (clockwise vertex ids,
// length 3 or 4) and validates the coherence invariant.
func (b *Builder) Build(outerFace []VertexID) (*EmbeddedGraph, error) {
	if len(outerFace) != 3 && len(outerFace) != 4 {
		return nil, errors.Wrapf(ErrBadOuterFace, "length %d", len(outerFace))
	}
	g := &EmbeddedGraph{
		Vertices:  b.vertices,
		Edges:     b.edges,
		OuterFace: append([]VertexID(nil), outerFace...),
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
