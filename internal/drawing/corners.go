package drawing

import (
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/rectdual"
)

// fixDummyCorner implements spec.md §4.4 step 3: a table of ±1 adjustments
// to the four outer-face rectangles, keyed by the component's shape and by
// which of the four outer-face slots holds the dummy vertex x. x's own
// rectangle receives the same treatment as any other outer-face vertex; none
// of the four slots collapse it or merge it into a neighbor.
func fixDummyCorner(shape Shape, g *embed.EmbeddedGraph, d *rectdual.Dual, x embed.VertexID) {
	of := g.OuterFace
	slot := -1
	for i, v := range of {
		if v == x {
			slot = i
			break
		}
	}
	if slot == -1 || len(of) != 4 {
		return
	}
	r := func(i int) *rectdual.Rect { return &d.Rects[of[i]] }

	switch shape {
	case TShape:
		switch slot {
		case 0:
			// Make the left side shorter, top and bottom wider.
			r(0).YMin++
			r(0).YMax--
			r(1).XMin--
			r(3).XMin--
		case 1:
			// Make the top wider, sides shorter.
			r(0).YMax--
			r(2).YMax--
			r(3).XMin--
			r(3).XMax++
		case 2:
			// Make the right side shorter, top and bottom wider.
			r(1).XMax++
			r(2).YMin++
			r(2).YMax--
			r(3).XMax++
		default: // 3
			// Make the bottom wider, sides shorter.
			r(0).YMin++
			r(1).XMin--
			r(1).XMax++
			r(2).YMin++
		}

	case HShape:
		if slot == 0 || slot == 2 {
			// Make top and bottom wider, sides shorter.
			r(0).YMin++
			r(0).YMax--
			r(1).XMin--
			r(1).XMax++
			r(2).YMin++
			r(2).YMax--
			r(3).XMin--
			r(3).XMax++
		}
		// slots 1 and 3 get no adjustment at all.

	case LongSink:
		switch slot {
		case 0:
			// x is left, sink is top.
			r(0).YMin++
			r(0).YMax--
			r(1).XMin--
			r(2).YMax--
			r(3).XMin--
			r(3).XMax++
		case 1:
			// x is bottom, sink is right.
			r(0).YMax--
			r(3).XMin--
		case 2:
			// x is right, sink is bottom.
			r(0).YMin++
			r(1).XMin--
			r(1).XMax++
			r(2).YMin++
			r(2).YMax--
			r(3).XMax++
		default: // 3
			// x is top, sink is left.
			r(1).XMax++
			r(2).YMin++
		}

	case LongSource:
		switch slot {
		case 0:
			// x is left, source is bottom.
			r(0).YMin++
			r(0).YMax--
			r(1).XMin--
			r(1).XMax++
			r(2).YMin++
			r(3).XMin--
		case 1:
			// x is bottom, source is left.
			r(2).YMax--
			r(3).XMax++
		case 2:
			// x is right, source is top.
			r(0).YMax--
			r(1).XMax++
			r(2).YMin++
			r(2).YMax--
			r(3).XMin--
			r(3).XMax++
		default: // 3
			// x is top, source is right.
			r(0).YMin++
			r(1).XMin--
		}
	}
}
