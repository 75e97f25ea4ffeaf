package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// scenarioA is spec.md §8's K4 input text.
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

func TestRunEmitsFourLinesOfLDrawing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, strings.NewReader(scenarioA), flags{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 4)
}

func TestRunRectDualEmitsFourLinesOfTiles(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, strings.NewReader(scenarioA), flags{rectDual: true})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		require.Len(t, strings.Fields(line), 4)
	}
}

func TestRunTikzWrapsDocument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, strings.NewReader(scenarioA), flags{tikz: true})
	require.NoError(t, err)
	require.Contains(t, stdout.String(), "\\documentclass{article}")
}

func TestRunReportsParseErrorOnMalformedInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, strings.NewReader("not a graph\n"), flags{})
	require.Error(t, err)
	require.Contains(t, stderr.String(), "Error reading input on line 1")
}

func TestRunPrintsTimeAccumulator(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(&stdout, &stderr, strings.NewReader(scenarioA), flags{showTime: true})
	require.NoError(t, err)
	require.Len(t, strings.Fields(strings.TrimSpace(stderr.String())), 4)
}
