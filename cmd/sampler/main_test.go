package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Parranoh/ldrawing/internal/gio"
)

func TestRunEmitsRoundTrippableGraph(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(&stdout, 6, false))

	g, err := gio.ReadGraph(strings.NewReader(stdout.String()))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	require.Equal(t, 3*g.NumVertices()-6, g.NumEdges())
}

func TestRunTwoCyclesOptionStillProducesValidGraph(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(&stdout, 4, true))

	g, err := gio.ReadGraph(strings.NewReader(stdout.String()))
	require.NoError(t, err)
	require.NoError(t, g.Validate())
}
