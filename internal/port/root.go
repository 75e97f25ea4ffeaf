package port

import (
	"github.com/pkg/errors"

	"github.com/Parranoh/ldrawing/internal/decompose"
)

// ErrDegenerateOuterFace indicates the root component's outer face has fewer
// than three vertices, an internal consistency failure.
var ErrDegenerateOuterFace = errors.New("port: root component outer face has fewer than three vertices")

// AssignRootOuterFace implements spec.md §4.5's port_assignment_of_outer_face:
// the very first (root) component's three original outer-face edges get a
// direct, non-table-driven port assignment, keyed only on which of the three
// edges are reversed (tail vs. head) at their shared outer-face vertex, fully
// resolved (including the already-assigned guard bit) before any other
// component or classifyOuterFace call ever reads them.
func AssignRootOuterFace(comp *decompose.FourBlockComponent, a Assignment) error {
	g := comp.Graph
	of := g.OuterFace
	if len(of) < 3 {
		return ErrDegenerateOuterFace
	}
	av, bv, cv := of[0], of[1], of[2]
	eAB := g.Vertices[av].Rotation[0]
	eBC := g.Vertices[bv].Rotation[0]
	eCA := g.Vertices[cv].Rotation[0]

	abEdge, err := g.EdgeAt(eAB)
	if err != nil {
		return err
	}
	bcEdge, err := g.EdgeAt(eBC)
	if err != nil {
		return err
	}
	caEdge, err := g.EdgeAt(eCA)
	if err != nil {
		return err
	}

	abRev := av == abEdge.Head
	bcRev := bv == bcEdge.Head
	caRev := cv == caEdge.Head

	oeAB := comp.OriginalEdge[eAB]
	oeBC := comp.OriginalEdge[eBC]
	oeCA := comp.OriginalEdge[eCA]

	switch {
	case abRev && bcRev && caRev:
		a[oeAB] = 0b100
		a[oeBC] = 0b111
		a[oeCA] = 0b111
	case !abRev && !bcRev && !caRev:
		a[oeAB] = 0b101
		a[oeBC] = 0b110
		a[oeCA] = 0b110
	case abRev == caRev:
		// a is the wall vertex.
		if abRev {
			a[oeAB] = 0b111
			a[oeBC] = 0b101
			a[oeCA] = 0b100
		} else {
			a[oeAB] = 0b101
			a[oeBC] = 0b100
			a[oeCA] = 0b110
		}
	case bcRev == abRev:
		// b is the wall vertex.
		if bcRev {
			a[oeAB] = 0b100
			a[oeBC] = 0b111
			a[oeCA] = 0b101
		} else {
			a[oeAB] = 0b110
			a[oeBC] = 0b101
			a[oeCA] = 0b100
		}
	default: // caRev == bcRev
		// c is the wall vertex.
		if caRev {
			a[oeAB] = 0b101
			a[oeBC] = 0b100
			a[oeCA] = 0b111
		} else {
			a[oeAB] = 0b100
			a[oeBC] = 0b110
			a[oeCA] = 0b101
		}
	}
	return nil
}
