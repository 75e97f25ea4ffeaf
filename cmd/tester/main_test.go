package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const scenarioA = `4 6 3
1 2 3
a
b
c
d
1 2
2 3
3 1
1 4
2 4
3 4
1 3 4
1 2 5
2 3 6
4 5 6
`

func TestRunAcceptsNonCrossingDrawing(t *testing.T) {
	// Unit-square placement: every coordinate is 0 or 1, so no two L-shaped
	// edges can cross strictly inside their segments, independent of
	// whatever the actual pipeline would produce for K4.
	input := scenarioA + "0 0\n1 0\n1 1\n0 1\n"
	require.NoError(t, run(strings.NewReader(input)))
}

func TestRunRejectsCrossingDrawing(t *testing.T) {
	// Edge 1-2 (vertex ids 1,2, i.e. "1 2" in the input) has no vertex in
	// common with edge 3-4 ("3 4"); these coordinates place the first
	// edge's horizontal segment (y=2, x in [0,4]) through the interior of
	// the second edge's vertical segment (x=2, y in [0,5]).
	input := scenarioA + "0 0\n4 2\n2 5\n2 0\n"
	err := run(strings.NewReader(input))
	require.Error(t, err)
}
