package sampler

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomBitstringLengthAndWeight(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	bits := randomBitstring(5, rng)
	require.Len(t, bits, 4*5-2)
	ones := 0
	for _, b := range bits {
		if b {
			ones++
		}
	}
	require.Equal(t, 4, ones)
}

func TestMinimalConjugateIsRotation(t *testing.T) {
	bits := []bool{false, false, true, true, false, true}
	rotated := minimalConjugate(bits)
	require.Len(t, rotated, len(bits))

	counts := make(map[bool]int)
	for _, b := range bits {
		counts[b]++
	}
	rotatedCounts := make(map[bool]int)
	for _, b := range rotated {
		rotatedCounts[b]++
	}
	require.Equal(t, counts, rotatedCounts)
}

func TestDecodeTreeSingleChild(t *testing.T) {
	nodes := decodeTree([]bool{true, false})
	require.Len(t, nodes, 2)
	require.Equal(t, -1, nodes[0].parent)
	require.Equal(t, []int{1}, nodes[0].children)
	require.Equal(t, 0, nodes[1].parent)
}

func TestPreorderRootFirst(t *testing.T) {
	nodes := decodeTree([]bool{true, true, false, false})
	order := preorder(nodes)
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestBuildTriangulationMaximalPlanarCounts(t *testing.T) {
	// n=2: root plus one child, so 2 vertices get stacked onto the base
	// triangle, for V = 3+2 = 5, E = 3+3*2 = 9 (maximal planar: E = 3V-6).
	nodes := decodeTree([]bool{true, false})
	g, err := buildTriangulation(nodes)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumVertices())
	require.Equal(t, 9, g.NumEdges())
	require.Equal(t, 3*g.NumVertices()-6, g.NumEdges())
	require.NoError(t, g.Validate())
}

func TestSampleRejectsMissingRand(t *testing.T) {
	_, err := Sample(5, Options{})
	require.ErrorIs(t, err, ErrNeedRandSource)
}

func TestSampleRejectsTooFewVertices(t *testing.T) {
	_, err := Sample(1, Options{Rand: rand.New(rand.NewSource(1))})
	require.ErrorIs(t, err, ErrTooFewVertices)
}

func TestSampleProducesValidEmbedding(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	g, err := Sample(6, Options{Rand: rng})
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	require.Equal(t, 3*g.NumVertices()-6, g.NumEdges())
	require.Len(t, g.OuterFace, 3)
}

func TestSampleTwoCyclesOptionAccepted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	g, err := Sample(4, Options{Rand: rng, TwoCycles: true})
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}
