package embed

import "github.com/pkg/errors"

// Validate checks the "Universal invariant" of spec.md §8 item 1: for every
// edge e=(t,h), vertices[t].Rotation[e.IndexAtTail] == e.ID and
// vertices[h].Rotation[e.IndexAtHead] == e.ID. It also checks the outer face
// names vertices in range.
//
// cmd/ldrawing runs it on the input graph under applog's debug gate, and
// Builder.Build and the Decomposer call it directly; it is cheap (O(V+E))
// but not on any hot inner loop.
func (g *EmbeddedGraph) Validate() error {
	for _, v := range g.OuterFace {
		if int(v) < 0 || int(v) >= len(g.Vertices) {
			return errors.Wrapf(ErrBadOuterFace, "vertex %d out of range", v)
		}
	}
	for id, e := range g.Edges {
		eid := EdgeID(id)
		if e.IndexAtTail < 0 || e.IndexAtTail >= len(g.Vertices[e.Tail].Rotation) {
			return errors.Wrapf(ErrInvalidRotation, "edge %d: index_at_tail %d out of range at vertex %d", id, e.IndexAtTail, e.Tail)
		}
		if g.Vertices[e.Tail].Rotation[e.IndexAtTail] != eid {
			return errors.Wrapf(ErrInvalidRotation, "edge %d: tail rotation slot %d holds edge %d", id, e.IndexAtTail, g.Vertices[e.Tail].Rotation[e.IndexAtTail])
		}
		if e.IndexAtHead < 0 || e.IndexAtHead >= len(g.Vertices[e.Head].Rotation) {
			return errors.Wrapf(ErrInvalidRotation, "edge %d: index_at_head %d out of range at vertex %d", id, e.IndexAtHead, e.Head)
		}
		if g.Vertices[e.Head].Rotation[e.IndexAtHead] != eid {
			return errors.Wrapf(ErrInvalidRotation, "edge %d: head rotation slot %d holds edge %d", id, e.IndexAtHead, g.Vertices[e.Head].Rotation[e.IndexAtHead])
		}
	}
	return nil
}
