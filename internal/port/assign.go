package port

import (
	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// switchDirection is the resolved rotation direction for a postponed
// vertex's bi-directed "unpleasant switch" side, set by whichever master
// vertex's extra-rule test discovers it, per spec.md §4.5.
type switchDirection int

const (
	switchAny switchDirection = iota
	switchClockwise
	switchCounterClockwise
)

type postponedVertex struct {
	v         embed.VertexID
	switchDir switchDirection
}

// Assign implements the PortAssigner of spec.md §4.5: fills a's port bits
// for every edge of comp not already marked assigned, using comp's
// rectangular dual d to classify each vertex's incident edges.
//
// Vertices are processed in id order; a vertex whose mono-directed side
// depends on an unresolved extra-rule master is simply skipped this pass
// (per spec.md, nothing about it can be assigned yet). Only when some other
// vertex's bi-directed unpleasant-switch test resolves it as the master of
// that side's two neighbors are those neighbors pushed onto the worklist
// with a known switch direction, and processed immediately (before
// continuing the id-order sweep), mirroring the literature's postponement
// stack.
func Assign(comp *decompose.FourBlockComponent, d *rectdual.Dual, a Assignment) error {
	g := comp.Graph
	n := g.NumVertices()

	var worklist []postponedVertex
	for tentativeV := 0; tentativeV < n; {
		var v embed.VertexID
		sw := switchAny
		if len(worklist) > 0 {
			last := worklist[len(worklist)-1]
			worklist = worklist[:len(worklist)-1]
			v = last.v
			sw = last.switchDir
		} else {
			v = embed.VertexID(tentativeV)
		}

		assignVertex(comp, d, a, v, sw, &worklist)

		if len(worklist) == 0 {
			tentativeV++
		}
	}

	for ceid := range comp.OriginalEdge {
		oe := comp.OriginalEdge[ceid]
		if oe == embed.DummyEdge {
			continue
		}
		a.MarkAssigned(int(oe))
	}
	if !a.AllAssigned() {
		return ErrStuck
	}
	return nil
}

func degree(g *embed.EmbeddedGraph, v embed.VertexID) int {
	return len(g.Vertices[v].Rotation)
}

// rotSlotVertex returns the neighbor vertex occupying rotation slot idx of
// v, per spec.md §4.5's reliance on graph.neighbor(v, idx).
func rotSlotVertex(g *embed.EmbeddedGraph, v embed.VertexID, idx int) embed.VertexID {
	eid := g.Vertices[v].Rotation[idx]
	e, _ := g.EdgeAt(eid)
	return e.Other(v)
}

// collinear reports whether a's and b's dual rectangles are both degenerate
// (zero width or zero height) and share the degenerate edge, per spec.md
// §4.5's extra-rule master test.
func collinear(d *rectdual.Dual, a, b embed.VertexID) bool {
	ra, rb := d.Rects[a], d.Rects[b]
	return (ra.XMin == ra.XMax && ra.XMax == rb.XMin && rb.XMin == rb.XMax) ||
		(ra.YMin == ra.YMax && ra.YMax == rb.YMin && rb.YMin == rb.YMax)
}

func xor3(a, b, c bool) bool { return (a != b) != c }

// assignVertex implements spec.md §4.5 steps 1-4 for a single vertex: it
// classifies v's incident edges into four directional rotation arcs, then
// resolves mono-directed, tri-directed, and bi-directed sides in turn. sw
// supplies a switch direction already resolved by a master, for a vertex
// retried off the postponement worklist.
func assignVertex(comp *decompose.FourBlockComponent, d *rectdual.Dual, a Assignment, v embed.VertexID, sw switchDirection, worklist *[]postponedVertex) {
	g := comp.Graph
	rot := g.Vertices[v].Rotation
	numNeighbors := len(rot)
	if numNeighbors == 0 {
		return
	}

	orientations := make([]bool, numNeighbors)
	others := make([]embed.VertexID, numNeighbors)

	var firstEdge [4]int
	for i := range firstEdge {
		firstEdge[i] = numNeighbors
	}
	var numEdgesInDir [4]int
	var firstRightYMin, firstTopXMax, firstLeftYMax, firstBottomXMin int

	dv := d.Rects[v]
	for ix := 0; ix < numNeighbors; ix++ {
		eid := rot[ix]
		e, _ := g.EdgeAt(eid)
		outgoing := e.Tail == v
		other := e.Head
		if !outgoing {
			other = e.Tail
		}
		orientations[ix] = outgoing
		others[ix] = other

		do := d.Rects[other]
		var dir Direction
		switch {
		case dv.XMax == do.XMin && dv.XMax < do.XMax:
			dir = Right
		case dv.YMax == do.YMin && dv.YMax < do.YMax:
			dir = Top
		case dv.XMin == do.XMax && dv.XMin > do.XMin:
			dir = Left
		default:
			dir = Bottom
		}

		switch dir {
		case Right:
			numEdgesInDir[Right]++
			if firstEdge[Right] != numNeighbors && firstRightYMin < do.YMax {
				break
			}
			firstEdge[Right] = ix
			firstRightYMin = do.YMin
		case Top:
			numEdgesInDir[Top]++
			if firstEdge[Top] != numNeighbors && firstTopXMax > do.XMin {
				break
			}
			firstEdge[Top] = ix
			firstTopXMax = do.XMax
		case Left:
			numEdgesInDir[Left]++
			if firstEdge[Left] != numNeighbors && firstLeftYMax > do.YMin {
				break
			}
			firstEdge[Left] = ix
			firstLeftYMax = do.YMax
		default: // Bottom
			numEdgesInDir[Bottom]++
			if firstEdge[Bottom] != numNeighbors && firstBottomXMin < do.XMax {
				break
			}
			firstEdge[Bottom] = ix
			firstBottomXMin = do.XMin
		}
	}

	// directions[dir] is a run-length-encoded bitstring (MSB-first sentinel
	// 1, then one bit per orientation run along the arc), per spec.md §4.5
	// step 3.
	var directions [4]byte
	for i := range directions {
		directions[i] = 0b1
	}
	getDirections := func(cur Direction) {
		for i := 0; i < numEdgesInDir[cur]; i++ {
			ix := (firstEdge[cur] + i) % numNeighbors
			if directions[cur] == 0b1 || (directions[cur]&0b1 != 0) != orientations[ix] {
				directions[cur] <<= 1
				if orientations[ix] {
					directions[cur] |= 0b1
				}
			}
		}
	}
	getDirections(Right)
	getDirections(Top)
	getDirections(Left)
	getDirections(Bottom)

	assignOne := func(eid embed.EdgeID, outgoing bool, value byte) {
		oe := comp.OriginalEdge[eid]
		if oe == embed.DummyEdge {
			return
		}
		var mask byte = 0b01
		if outgoing {
			mask = 0b10
		}
		a.OrAssign(int(oe), value&mask)
	}

	// checkForExtraRule implements spec.md §4.5's mono-directed master test:
	// v is master of the virtual-vertex pair straddling rotation slot
	// indexOfMaster only if the collinearity condition holds.
	checkForExtraRule := func(cur Direction, indexOfMaster, step int) bool {
		if xor3(int(cur)%2 == 0, step > 0, orientations[indexOfMaster]) {
			return false
		}
		virtualVertex := others[(numNeighbors+indexOfMaster+step)%numNeighbors]
		if degree(g, virtualVertex) != 1 {
			return false
		}
		edgeToNeighborID := rot[(numNeighbors+indexOfMaster+2*step)%numNeighbors]
		edgeToNeighbor, _ := g.EdgeAt(edgeToNeighborID)
		var neighbor embed.VertexID
		var indexAtNeighbor int
		if v == edgeToNeighbor.Tail {
			neighbor = edgeToNeighbor.Head
			indexAtNeighbor = edgeToNeighbor.IndexAtHead
		} else {
			neighbor = edgeToNeighbor.Tail
			indexAtNeighbor = edgeToNeighbor.IndexAtTail
		}
		neighborDeg := degree(g, neighbor)
		virtualVertexOfNeighbor := rotSlotVertex(g, neighbor, (neighborDeg+indexAtNeighbor-step)%neighborDeg)
		if degree(g, virtualVertexOfNeighbor) != 1 {
			return false
		}
		return collinear(d, virtualVertex, virtualVertexOfNeighbor)
	}

	assignMonoDirectedSide := func(cur Direction) bool {
		if directions[cur]&0b1100 != 0 {
			return true // not mono-directed, nothing to do here
		}
		masterAtEnd := checkForExtraRule(cur, (numNeighbors+firstEdge[cur]+numEdgesInDir[cur]-1)%numNeighbors, 1)
		masterAtStart := checkForExtraRule(cur, firstEdge[cur]%numNeighbors, -1)
		monoSwitch := byte(0b00)
		if masterAtEnd || masterAtStart {
			if sw == switchAny {
				return false
			}
			if xor3(int(cur)%2 == 0, directions[cur]&0b1 != 0, sw == switchCounterClockwise) {
				monoSwitch = 0b11
			}
		}
		for i := 0; i < numEdgesInDir[cur]; i++ {
			ix := (firstEdge[cur] + i) % numNeighbors
			assignOne(rot[ix], orientations[ix], cur.CanonicalPort()^monoSwitch)
		}
		return true
	}

	if !assignMonoDirectedSide(Right) || !assignMonoDirectedSide(Top) ||
		!assignMonoDirectedSide(Left) || !assignMonoDirectedSide(Bottom) {
		return // postpone the whole vertex; a future master will requeue it
	}

	assign3Directed := func(cur Direction, pattern byte) {
		switch directions[cur] {
		case pattern:
			// Clockwise switch.
			firstThird := byte(0b11)
			for i := 0; i < numEdgesInDir[cur]; i++ {
				ix := (firstEdge[cur] + i) % numNeighbors
				if orientations[ix] == (pattern&0b010 != 0) {
					firstThird = 0b00
				}
				assignOne(rot[ix], orientations[ix], cur.CanonicalPort()^firstThird)
			}
		case pattern ^ 0b0111:
			// Counter-clockwise switch.
			lastThird := byte(0b000)
			for i := 0; i < numEdgesInDir[cur]; i++ {
				ix := (firstEdge[cur] + i) % numNeighbors
				if orientations[ix] == ((pattern^0b0111)&0b010 != 0) {
					lastThird = 0b100
				} else if lastThird != 0 {
					lastThird = 0b011
				}
				assignOne(rot[ix], orientations[ix], cur.CanonicalPort()^lastThird)
			}
		}
	}
	assign3Directed(Right, 0b1010)
	assign3Directed(Top, 0b1101)
	assign3Directed(Left, 0b1010)
	assign3Directed(Bottom, 0b1101)

	assignCanonicalSwitch := func(cur Direction, pattern byte) {
		if directions[cur] != pattern {
			return
		}
		for i := 0; i < numEdgesInDir[cur]; i++ {
			ix := (firstEdge[cur] + i) % numNeighbors
			assignOne(rot[ix], orientations[ix], cur.CanonicalPort())
		}
	}
	assignCanonicalSwitch(Right, 0b110)
	assignCanonicalSwitch(Top, 0b101)
	assignCanonicalSwitch(Left, 0b110)
	assignCanonicalSwitch(Bottom, 0b101)

	assignUnpleasantSwitch := func(cur Direction, pattern byte) {
		if directions[cur] != pattern {
			return
		}
		next := Direction((int(cur) + 1) % 4)
		prev := Direction((int(cur) + 3) % 4)

		applyCW := func() {
			firstHalf := byte(0b11)
			for i := 0; i < numEdgesInDir[cur]; i++ {
				ix := (firstEdge[cur] + i) % numNeighbors
				if orientations[ix] == (directions[cur]&0b001 != 0) {
					firstHalf = 0b00
				}
				assignOne(rot[ix], orientations[ix], cur.CanonicalPort()^firstHalf)
			}
		}
		applyCCW := func() {
			lastHalf := byte(0b00)
			for i := 0; i < numEdgesInDir[cur]; i++ {
				ix := (firstEdge[cur] + i) % numNeighbors
				if orientations[ix] == (directions[cur]&0b001 != 0) {
					lastHalf = 0b11
				}
				assignOne(rot[ix], orientations[ix], cur.CanonicalPort()^lastHalf)
			}
		}

		switch sw {
		case switchClockwise:
			applyCW()
			return
		case switchCounterClockwise:
			applyCCW()
			return
		}

		// sw == switchAny: v may be the extra rule's master for this side's
		// two flanking neighbors.
		vIsMaster := false
		ixLeft := firstEdge[cur]
		ixRight := ixLeft
		for i := 1; i < numEdgesInDir[cur]; i++ {
			ixRight = (firstEdge[cur] + i) % numNeighbors
			if orientations[ixRight] == (directions[cur]&0b001 != 0) {
				break
			}
			ixLeft = ixRight
		}
		edgeLeft, _ := g.EdgeAt(rot[ixLeft])
		edgeRight, _ := g.EdgeAt(rot[ixRight])
		var leftNeighbor, rightNeighbor embed.VertexID
		var indexAtLeft, indexAtRight int
		if directions[cur]&0b001 != 0 {
			leftNeighbor, indexAtLeft = edgeLeft.Tail, edgeLeft.IndexAtTail
			rightNeighbor, indexAtRight = edgeRight.Head, edgeRight.IndexAtHead
		} else {
			leftNeighbor, indexAtLeft = edgeLeft.Head, edgeLeft.IndexAtHead
			rightNeighbor, indexAtRight = edgeRight.Tail, edgeRight.IndexAtTail
		}
		leftDeg := degree(g, leftNeighbor)
		virtualLeft := rotSlotVertex(g, leftNeighbor, (indexAtLeft+1)%leftDeg)
		rightDeg := degree(g, rightNeighbor)
		virtualRight := rotSlotVertex(g, rightNeighbor, (rightDeg+indexAtRight-1)%rightDeg)
		if degree(g, virtualLeft) == 1 && degree(g, virtualRight) == 1 && collinear(d, virtualLeft, virtualRight) {
			vIsMaster = true
			*worklist = append(*worklist, postponedVertex{v: leftNeighbor, switchDir: switchAny})
			*worklist = append(*worklist, postponedVertex{v: rightNeighbor, switchDir: switchAny})
		}

		useCCW := directions[next] == (pattern^0b011) || directions[prev] == (pattern^0b011) ||
			directions[next] == (0b010 | (pattern & 0b001))
		if useCCW {
			if vIsMaster {
				n := len(*worklist)
				(*worklist)[n-2].switchDir = switchCounterClockwise
				(*worklist)[n-1].switchDir = switchCounterClockwise
			}
			applyCCW()
		} else {
			if vIsMaster {
				n := len(*worklist)
				(*worklist)[n-2].switchDir = switchClockwise
				(*worklist)[n-1].switchDir = switchClockwise
			}
			applyCW()
		}
	}
	assignUnpleasantSwitch(Right, 0b101)
	assignUnpleasantSwitch(Top, 0b110)
	assignUnpleasantSwitch(Left, 0b101)
	assignUnpleasantSwitch(Bottom, 0b110)
}
