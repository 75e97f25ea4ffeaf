package port

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// buildStarComponent builds a 5-vertex component (center 0, neighbors
// right=1, top=2, left=3, bottom=4), all edges outgoing from the center,
// with a matching rectangular dual so every arc at the center classifies as
// a single mono-directed edge (Scenario E).
func buildStarComponent(t *testing.T) (*decompose.FourBlockComponent, *rectdual.Dual) {
	t.Helper()
	b := embed.NewBuilder(5)
	eRight := b.AddEdge(0, 1)
	eTop := b.AddEdge(0, 2)
	eLeft := b.AddEdge(0, 3)
	eBottom := b.AddEdge(0, 4)

	b.SetRotation(0, []embed.EdgeID{eRight, eTop, eLeft, eBottom})
	b.SetRotation(1, []embed.EdgeID{eRight})
	b.SetRotation(2, []embed.EdgeID{eTop})
	b.SetRotation(3, []embed.EdgeID{eLeft})
	b.SetRotation(4, []embed.EdgeID{eBottom})

	g, err := b.Build([]embed.VertexID{1, 2, 3, 4})
	require.NoError(t, err)

	d := &rectdual.Dual{Rects: []rectdual.Rect{
		{XMin: 1, YMin: 1, XMax: 2, YMax: 2}, // center
		{XMin: 2, YMin: 1, XMax: 3, YMax: 2}, // right
		{XMin: 1, YMin: 2, XMax: 2, YMax: 3}, // top
		{XMin: 0, YMin: 1, XMax: 1, YMax: 2}, // left
		{XMin: 1, YMin: 0, XMax: 2, YMax: 1}, // bottom
	}}

	comp := &decompose.FourBlockComponent{
		Graph:          g,
		OriginalEdge:   []embed.EdgeID{eRight, eTop, eLeft, eBottom},
		OriginalVertex: []embed.VertexID{0, 1, 2, 3, 4},
		DesignatedFace: make([]int, 5),
	}
	return comp, d
}

func TestAssignMonoDirected(t *testing.T) {
	comp, d := buildStarComponent(t)
	a := NewAssignment(4)

	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())

	// Each endpoint sets only its own bit: the center (tail) sets bit 1 from
	// the canonical port of the side the leaf is on, and the leaf (head) sets
	// bit 0 from the canonical port of the opposite side, where it sees the
	// center.
	require.Equal(t, Right.CanonicalPort()&0b10|Left.CanonicalPort()&0b01, a[0]&0b11)
	require.Equal(t, Top.CanonicalPort()&0b10|Bottom.CanonicalPort()&0b01, a[1]&0b11)
	require.Equal(t, Left.CanonicalPort()&0b10|Right.CanonicalPort()&0b01, a[2]&0b11)
	require.Equal(t, Bottom.CanonicalPort()&0b10|Top.CanonicalPort()&0b01, a[3]&0b11)
}

func TestCanonicalPortValues(t *testing.T) {
	require.Equal(t, byte(0b00), Right.CanonicalPort())
	require.Equal(t, byte(0b10), Top.CanonicalPort())
	require.Equal(t, byte(0b11), Left.CanonicalPort())
	require.Equal(t, byte(0b01), Bottom.CanonicalPort())
}

// buildRightRunComponent builds a degree-n(rights) center vertex v=0 with one
// leaf per entry of rights, all classifying into v's Right rotation bucket
// (stacked bottom to top, right of v), wired per tail/outgoing as given by
// each entry. Each leaf's own single edge always mirrors v's Right
// classification as Left, per the adjacency test's symmetry.
func buildRightRunComponent(t *testing.T, outgoingFromV []bool) (*decompose.FourBlockComponent, *rectdual.Dual) {
	t.Helper()
	n := len(outgoingFromV)
	b := embed.NewBuilder(n + 1)

	v := embed.VertexID(0)
	eids := make([]embed.EdgeID, n)
	for i, outgoing := range outgoingFromV {
		leaf := embed.VertexID(i + 1)
		if outgoing {
			eids[i] = b.AddEdge(v, leaf)
		} else {
			eids[i] = b.AddEdge(leaf, v)
		}
	}
	b.SetRotation(v, eids)
	for i, eid := range eids {
		b.SetRotation(embed.VertexID(i+1), []embed.EdgeID{eid})
	}

	g, err := b.Build([]embed.VertexID{0, 1, 2})
	require.NoError(t, err)

	rects := make([]rectdual.Rect, n+1)
	rects[0] = rectdual.Rect{XMin: 1, YMin: 1, XMax: 2, YMax: 1 + n}
	for i := 0; i < n; i++ {
		rects[i+1] = rectdual.Rect{XMin: 2, YMin: 1 + i, XMax: 3, YMax: 2 + i}
	}
	d := &rectdual.Dual{Rects: rects}

	origEdge := make([]embed.EdgeID, n)
	copy(origEdge, eids)
	comp := &decompose.FourBlockComponent{
		Graph:          g,
		OriginalEdge:   origEdge,
		OriginalVertex: make([]embed.VertexID, n+1),
		DesignatedFace: make([]int, n+1),
	}
	return comp, d
}

// TestAssignTriDirectedClockwise exercises the literature's clockwise
// tri-directed pattern (0b1010 for Right): a run of incoming/outgoing/
// incoming edges, bottom to top.
func TestAssignTriDirectedClockwise(t *testing.T) {
	comp, d := buildRightRunComponent(t, []bool{false, true, false})
	a := NewAssignment(3)
	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())
	require.Equal(t, byte(0b11), a[0]&0b11) // bottom
	require.Equal(t, byte(0b01), a[1]&0b11) // mid
	require.Equal(t, byte(0b10), a[2]&0b11) // top
}

// TestAssignTriDirectedCounterClockwise exercises the counter-clockwise
// tri-directed pattern (0b1101 for Right): outgoing/incoming/outgoing.
func TestAssignTriDirectedCounterClockwise(t *testing.T) {
	comp, d := buildRightRunComponent(t, []bool{true, false, true})
	a := NewAssignment(3)
	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())
	require.Equal(t, byte(0b01), a[0]&0b11) // bottom
	require.Equal(t, byte(0b10), a[1]&0b11) // mid
	require.Equal(t, byte(0b11), a[2]&0b11) // top
}

// TestAssignBiDirectedCanonical exercises the already-pleasant bi-directed
// pattern (0b110 for Right, outgoing then incoming), which assigns the plain
// canonical port uniformly across the run with no switch.
func TestAssignBiDirectedCanonical(t *testing.T) {
	comp, d := buildRightRunComponent(t, []bool{true, false})
	a := NewAssignment(2)
	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())
	require.Equal(t, byte(0b01), a[0]&0b11) // bottom
	require.Equal(t, byte(0b10), a[1]&0b11) // top
}

// TestAssignBiDirectedUnpleasant exercises the unpleasant bi-directed pattern
// (0b101 for Right, incoming then outgoing) with no extra-rule master
// flanking it, resolved by the plain useCCW/CW heuristic.
func TestAssignBiDirectedUnpleasant(t *testing.T) {
	comp, d := buildRightRunComponent(t, []bool{false, true})
	a := NewAssignment(2)
	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())
	require.Equal(t, byte(0b11), a[0]&0b11) // bottom
	require.Equal(t, byte(0b01), a[1]&0b11) // top
}

// TestAssignUnpleasantSwitchWithExtraRuleMaster builds the literature's
// master/slave postponement scenario: v's unpleasant Right run flanks two
// neighbors (r_bottom, r_top) each carrying a further degree-1 "virtual
// vertex" (virtualLeft, virtualRight) whose degenerate dual rectangles are
// collinear, making v the extra rule's master. v pushes r_bottom and r_top
// onto the postponement worklist with a resolved switch direction before
// they are processed, and the final port values must match what the plain
// unpleasant (no-master) case produces.
func TestAssignUnpleasantSwitchWithExtraRuleMaster(t *testing.T) {
	b := embed.NewBuilder(5)
	v := embed.VertexID(0)
	rBottom := embed.VertexID(1)
	rTop := embed.VertexID(2)
	virtualLeft := embed.VertexID(3)
	virtualRight := embed.VertexID(4)

	eBottom := b.AddEdge(rBottom, v)   // incoming to v
	eTop := b.AddEdge(v, rTop)         // outgoing from v
	eVL := b.AddEdge(rBottom, virtualLeft)
	eVR := b.AddEdge(rTop, virtualRight)

	b.SetRotation(v, []embed.EdgeID{eBottom, eTop})
	b.SetRotation(rBottom, []embed.EdgeID{eBottom, eVL})
	b.SetRotation(rTop, []embed.EdgeID{eVR, eTop})
	b.SetRotation(virtualLeft, []embed.EdgeID{eVL})
	b.SetRotation(virtualRight, []embed.EdgeID{eVR})

	g, err := b.Build([]embed.VertexID{0, 1, 2})
	require.NoError(t, err)

	d := &rectdual.Dual{Rects: []rectdual.Rect{
		{XMin: 1, YMin: 1, XMax: 2, YMax: 3}, // v
		{XMin: 2, YMin: 1, XMax: 3, YMax: 2}, // rBottom
		{XMin: 2, YMin: 2, XMax: 3, YMax: 3}, // rTop
		{XMin: 5, YMin: 0, XMax: 5, YMax: 1}, // virtualLeft (degenerate)
		{XMin: 5, YMin: 1, XMax: 5, YMax: 2}, // virtualRight (degenerate, collinear with virtualLeft)
	}}

	comp := &decompose.FourBlockComponent{
		Graph:          g,
		OriginalEdge:   []embed.EdgeID{0, 1, embed.DummyEdge, embed.DummyEdge},
		OriginalVertex: []embed.VertexID{0, 1, 2, embed.DummyVertex, embed.DummyVertex},
		DesignatedFace: make([]int, 5),
	}

	a := NewAssignment(2)
	require.NoError(t, Assign(comp, d, a))
	require.True(t, a.AllAssigned())
	require.Equal(t, byte(0b11), a[0]&0b11) // bottom, same result as the no-master case
	require.Equal(t, byte(0b01), a[1]&0b11) // top
}
