package drawing

import (
	"github.com/Parranoh/ldrawing/internal/decompose"
	"github.com/Parranoh/ldrawing/internal/embed"
	"github.com/Parranoh/ldrawing/internal/port"
	"github.com/Parranoh/ldrawing/internal/rectdual"
	"github.com/Parranoh/ldrawing/internal/topo"
)

// Assemble implements the DrawingAssembler of spec.md §4.4: it processes
// every component of tree front-to-back, fixing port assignments on orig's
// edges, then builds and topologically sorts the x- and y-DAGs to produce
// the final LDrawing. The returned duals slice holds each component's final
// rectangular dual, in tree.Components order, for the `--print-duals` CLI
// option (§6).
func Assemble(orig *embed.EmbeddedGraph, tree *decompose.FourBlockTree) (*LDrawing, []*rectdual.Dual, error) {
	a := port.NewAssignment(orig.NumEdges())

	if root := tree.Root(); root != nil {
		if err := port.AssignRootOuterFace(root, a); err != nil {
			return nil, nil, err
		}
	}

	duals := make([]*rectdual.Dual, len(tree.Components))
	for i, comp := range tree.Components {
		dual, err := processComponent(comp, a)
		if err != nil {
			return nil, nil, err
		}
		duals[i] = dual
	}

	xdag := topo.NewDAG(orig.NumVertices())
	ydag := topo.NewDAG(orig.NumVertices())
	for eid := 0; eid < orig.NumEdges(); eid++ {
		e := orig.Edges[eid]
		if a.EW(eid) {
			xdag.AddEdge(int(e.Tail), int(e.Head))
		} else {
			xdag.AddEdge(int(e.Head), int(e.Tail))
		}
		if a.NS(eid) {
			ydag.AddEdge(int(e.Tail), int(e.Head))
		} else {
			ydag.AddEdge(int(e.Head), int(e.Tail))
		}
	}

	xorder, err := xdag.Sort()
	if err != nil {
		return nil, nil, err
	}
	yorder, err := ydag.Sort()
	if err != nil {
		return nil, nil, err
	}

	n := orig.NumVertices()
	xpos := make([]int, n)
	ypos := make([]int, n)
	for i, v := range xorder {
		xpos[v] = i
	}
	for i, v := range yorder {
		ypos[v] = i
	}

	coords := make([]Point, n)
	for v := 0; v < n; v++ {
		coords[v] = Point{X: xpos[v], Y: ypos[v]}
	}
	return &LDrawing{Coords: coords}, duals, nil
}

// processComponent runs spec.md §4.4 steps 1-5 for a single component,
// mutating a in place with every edge the component can now resolve, and
// returns the component's final rectangular dual.
func processComponent(comp *decompose.FourBlockComponent, a port.Assignment) (*rectdual.Dual, error) {
	var x embed.VertexID = embed.DummyVertex
	var shape Shape
	if len(comp.Graph.OuterFace) == 3 {
		edges3, err := outerFaceEdges(comp.Graph)
		if err != nil {
			return nil, err
		}
		s, targetIdx, err := classifyOuterFace(comp, a, edges3)
		if err != nil {
			return nil, err
		}
		shape = s
		newComp, newX, err := subdivideOuterEdge(comp, a, edges3[targetIdx])
		if err != nil {
			return nil, err
		}
		*comp = *newComp
		x = newX
	}

	dual, err := rectdual.Compute(comp.Graph)
	if err != nil {
		return nil, err
	}

	if x != embed.DummyVertex {
		fixDummyCorner(shape, comp.Graph, dual, x)
	}

	newComp, newDual, err := addVirtualEdges(comp, dual)
	if err != nil {
		return nil, err
	}
	*comp = *newComp
	dual = newDual

	if err := port.Assign(comp, dual, a); err != nil {
		return nil, err
	}
	return dual, nil
}
