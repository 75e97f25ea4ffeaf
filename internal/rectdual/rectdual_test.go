package rectdual

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShareWall(t *testing.T) {
	a := Rect{XMin: 0, YMin: 0, XMax: 2, YMax: 2}
	b := Rect{XMin: 2, YMin: 0, XMax: 4, YMax: 2}
	require.True(t, ShareWall(a, b))

	c := Rect{XMin: 2, YMin: 2, XMax: 4, YMax: 4}
	require.False(t, ShareWall(a, c), "only touch at a point, not a positive-length wall")

	d := Rect{XMin: 5, YMin: 5, XMax: 6, YMax: 6}
	require.False(t, ShareWall(a, d))
}
