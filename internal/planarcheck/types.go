package planarcheck

import "github.com/pkg/errors"

// ErrCoordMismatch indicates the drawing has a different vertex count than
// the graph it is supposed to draw.
var ErrCoordMismatch = errors.New("planarcheck: drawing/graph vertex count mismatch")

// hseg is a horizontal segment at a fixed y, spanning [xlo,xhi].
type hseg struct {
	y, xlo, xhi int
	edge        int
}

// vseg is a vertical segment at a fixed x, spanning [ylo,yhi].
type vseg struct {
	x, ylo, yhi int
	edge        int
}
