package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTrackAccumulates(t *testing.T) {
	var acc Accumulator
	start := time.Now().Add(-10 * time.Millisecond)
	Track(&acc.Decompose, start)
	Track(&acc.Decompose, start)
	require.True(t, acc.Decompose >= 20*time.Millisecond)
}

func TestSecondsOrdersStagesCorrectly(t *testing.T) {
	acc := Accumulator{
		IO:         1 * time.Second,
		Decompose:  2 * time.Second,
		RectDual:   3 * time.Second,
		PortAssign: 4 * time.Second,
	}
	io, decompose, rectDual, portAssign := acc.Seconds()
	require.Equal(t, 1.0, io)
	require.Equal(t, 2.0, decompose)
	require.Equal(t, 3.0, rectDual)
	require.Equal(t, 4.0, portAssign)
}
