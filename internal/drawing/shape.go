package drawing

import (
	"github.com/pkg/errors"

	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/port"
)

// outerFaceEdges returns the edge ids connecting consecutive pairs of a
// length-3 outer face.
func outerFaceEdges(g *embed.EmbeddedGraph) ([3]embed.EdgeID, error) {
	var out [3]embed.EdgeID
	of := g.OuterFace
	for i := 0; i < 3; i++ {
		u, v := of[i], of[(i+1)%3]
		eid, err := findEdgeBetween(g, u, v)
		if err != nil {
			return out, err
		}
		out[i] = eid
	}
	return out, nil
}

func findEdgeBetween(g *embed.EmbeddedGraph, u, v embed.VertexID) (embed.EdgeID, error) {
	uVert, err := g.VertexAt(u)
	if err != nil {
		return 0, err
	}
	for _, eid := range uVert.Rotation {
		e, _ := g.EdgeAt(eid)
		if e.Other(u) == v {
			return eid, nil
		}
	}
	return 0, embed.ErrEdgeNotFound
}

// reversedAt reports whether eid points backward relative to the traversal
// from-direction, i.e. "from" is the edge's head rather than its tail.
func reversedAt(g *embed.EmbeddedGraph, eid embed.EdgeID, from embed.VertexID) bool {
	e, _ := g.EdgeAt(eid)
	return from == e.Head
}

// portOf returns the already-assigned 2-bit port value of eid's original
// edge. classifyOuterFace is only ever called once every outer edge it reads
// has a final assignment: the root component's three original outer-face
// edges are pre-assigned directly by port.AssignRootOuterFace before
// Assemble processes any component, and every other component's outer face
// is a separating triangle whose edges were finalized while processing its
// parent.
func portOf(comp *decompose.FourBlockComponent, a port.Assignment, eid embed.EdgeID) byte {
	oe := comp.OriginalEdge[eid]
	return a[oe] & 0b11
}

// classifyOuterFace implements spec.md §4.4 step 1: the outer-face shape
// classification and subdivision-target choice of the literature's add_x
// procedure, keyed on which of the three outer edges are reversed (tail vs.
// head at the shared outer-face vertex) and on their already-resolved port
// patterns.
func classifyOuterFace(comp *decompose.FourBlockComponent, a port.Assignment, edges [3]embed.EdgeID) (Shape, int, error) {
	g := comp.Graph
	of := g.OuterFace
	eAB, eBC, eCA := edges[0], edges[1], edges[2]
	abRev := reversedAt(g, eAB, of[0])
	bcRev := reversedAt(g, eBC, of[1])
	caRev := reversedAt(g, eCA, of[2])

	paAB := portOf(comp, a, eAB)
	paBC := portOf(comp, a, eBC)
	paCA := portOf(comp, a, eCA)

	if abRev == bcRev && bcRev == caRev {
		// Cycle: all three outer edges run the same way around the face.
		switch {
		case paAB == paBC:
			return HShape, 2, nil // target e_ca
		case paAB == paCA:
			return HShape, 1, nil // target e_bc
		case paBC == paCA:
			return HShape, 0, nil // target e_ab
		case paAB^paBC == 0b11:
			if paAB == 0b00 || paAB == 0b11 {
				return LongSink, 0, nil
			}
			return LongSink, 1, nil
		case paCA^paAB == 0b11:
			if paCA == 0b00 || paCA == 0b11 {
				return LongSink, 2, nil
			}
			return LongSink, 0, nil
		default: // (paBC ^ paCA) == 0b11
			if paBC == 0b00 || paBC == 0b11 {
				return LongSink, 1, nil
			}
			return LongSink, 2, nil
		}
	}

	// Non-cycle: derive the "sink" (e_st), "wall-to-sink" (e_wt), and
	// "source-to-wall" (e_sw) edges from which pair of reversed flags match.
	var eST, eSW, eWT int // indices into edges[]
	switch {
	case abRev == caRev:
		eST = 1 // e_bc
		if abRev {
			eWT, eSW = 2, 0 // e_ca, e_ab
		} else {
			eWT, eSW = 0, 2 // e_ab, e_ca
		}
	case bcRev == abRev:
		eST = 2 // e_ca
		if bcRev {
			eWT, eSW = 0, 1 // e_ab, e_bc
		} else {
			eWT, eSW = 1, 0 // e_bc, e_ab
		}
	default: // caRev == bcRev
		eST = 0 // e_ab
		if caRev {
			eWT, eSW = 1, 2 // e_bc, e_ca
		} else {
			eWT, eSW = 2, 1 // e_ca, e_bc
		}
	}

	pat := [3]byte{paAB, paBC, paCA}
	paST, paWT, paSW := pat[eST], pat[eWT], pat[eSW]

	switch {
	case paST == paWT && paWT == paSW:
		return HShape, eST, nil
	case (paST^paSW)&0b10 != 0 && (paST^paWT)&0b01 != 0:
		return TShape, eST, nil
	case paST == paSW:
		switch {
		case paST&0b01 == paWT&0b01:
			return LongSource, eSW, nil
		case paST&0b10 == paWT&0b10:
			return TShape, eWT, nil
		default:
			return HShape, eSW, nil
		}
	case paST == paWT:
		switch {
		case paST&0b10 == paSW&0b10:
			return LongSink, eWT, nil
		case paST&0b01 == paSW&0b01:
			return TShape, eSW, nil
		default:
			return HShape, eWT, nil
		}
	default:
		return 0, 0, errors.Wrap(ErrUnrecognizedPattern, "classifyOuterFace: non-cycle outer face with no matching port pattern")
	}
}
