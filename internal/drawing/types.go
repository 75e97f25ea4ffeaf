package drawing

import "github.com/pkg/errors"

// Sentinel errors for the drawing package.
var (
	// ErrUnrecognizedPattern indicates the outer face's port pattern did not
	// match any of the four known shapes (spec.md §4.4 step 1, §7
	// StructuralError).
	ErrUnrecognizedPattern = errors.New("drawing: outer-face port pattern not recognized")

	// ErrNoInteriorApex indicates a target edge's interior triangle apex
	// could not be found, an internal consistency failure.
	ErrNoInteriorApex = errors.New("drawing: no interior apex found for target edge")
)

// Shape classifies a component's outer-face port pattern into one of the
// four literature cases of spec.md §4.4 step 1.
type Shape int

const (
	HShape Shape = iota
	LongSink
	TShape
	LongSource
)

func (s Shape) String() string {
	switch s {
	case HShape:
		return "H_SHAPE"
	case LongSink:
		return "LONG_SINK"
	case TShape:
		return "T_SHAPE"
	case LongSource:
		return "LONG_SOURCE"
	default:
		return "UNKNOWN_SHAPE"
	}
}

// Point is an integer-grid L-drawing position.
type Point struct {
	X, Y int
}

// LDrawing is the final output of spec.md §4.4: one grid position per
// original-graph vertex.
type LDrawing struct {
	Coords []Point // indexed by original VertexID
}
