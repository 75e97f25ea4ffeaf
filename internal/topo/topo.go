// Package topo provides a generic Kahn's-algorithm topological sort, used
// by the DrawingAssembler for both the x-DAG and y-DAG of spec.md §4.4.
//
// Package contract mirrors the teacher's dfs.TopologicalSort (sentinel
// ErrCycleDetected, simple functional signature) even though the traversal
// engine here is queue-based (Kahn's) rather than DFS-based, per spec.md
// §4.4's explicit requirement.
package topo

import "github.com/pkg/errors"

// ErrCycleDetected is returned when the graph is not acyclic. Exposed text
// matches spec.md §7 verbatim for the CLI to print on exit.
var ErrCycleDetected = errors.New("Cycle detected during topological sorting.")

// DAG is a minimal directed-graph view Sort needs: n nodes numbered
// [0,n), and Out(v) returning v's outgoing neighbors.
type DAG struct {
	N   int
	Out [][]int // indexed by node
}

// NewDAG creates a DAG with n nodes and no edges.
func NewDAG(n int) *DAG {
	return &DAG{N: n, Out: make([][]int, n)}
}

// AddEdge records a directed edge u->v.
func (d *DAG) AddEdge(u, v int) {
	d.Out[u] = append(d.Out[u], v)
}

// Sort runs Kahn's algorithm: repeatedly remove a zero-in-degree node,
// decrementing its successors' in-degree, until none remain. Returns
// ErrCycleDetected if fewer than N nodes are ever removed (a cycle exists).
//
// Tie-breaking among simultaneously-available zero-in-degree nodes is by
// ascending node id, giving a deterministic order (spec.md does not mandate
// a specific tie-break; ascending id is the simplest stable choice and
// matches the teacher's general preference for determinism in traversal
// order, see dfs.TopologicalSort's sorted-vertex iteration).
func (d *DAG) Sort() ([]int, error) {
	indeg := make([]int, d.N)
	for _, outs := range d.Out {
		for _, v := range outs {
			indeg[v]++
		}
	}
	queue := make([]int, 0, d.N)
	for v := 0; v < d.N; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, d.N)
	for len(queue) > 0 {
		// Pop the smallest id to keep the order deterministic.
		minIdx := 0
		for i := 1; i < len(queue); i++ {
			if queue[i] < queue[minIdx] {
				minIdx = i
			}
		}
		v := queue[minIdx]
		queue = append(queue[:minIdx], queue[minIdx+1:]...)

		order = append(order, v)
		for _, w := range d.Out[v] {
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	if len(order) != d.N {
		return nil, ErrCycleDetected
	}
	return order, nil
}
