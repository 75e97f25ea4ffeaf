package topo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSortLinearChain(t *testing.T) {
	d := NewDAG(3)
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	order, err := d.Sort()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestSortDetectsCycle(t *testing.T) {
	d := NewDAG(3)
	d.AddEdge(0, 1)
	d.AddEdge(1, 2)
	d.AddEdge(2, 0)
	_, err := d.Sort()
	require.ErrorIs(t, err, ErrCycleDetected)
}

func TestSortDeterministicTieBreak(t *testing.T) {
	d := NewDAG(4)
	d.AddEdge(3, 0)
	d.AddEdge(2, 0)
	order, err := d.Sort()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 0}, order)
}
