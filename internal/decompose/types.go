package decompose

import (
	"github.com/pkg/errors"

	"github.com/Parranoh/ldrawing/internal/embed"
)

// Sentinel errors for the decompose package.
var (
	// ErrNotSimple indicates the input graph fails the Decomposer's
	// precondition (simple, 3-connected, triangulated).
	ErrNotSimple = errors.New("decompose: input must be simple and triangulated")

	// ErrPincerFailure indicates the pincer test (§4.2.5 step 5) found an
	// inconsistent adjacency arc during splitting — an internal consistency
	// failure that should be unreachable for valid input.
	ErrPincerFailure = errors.New("decompose: pincer test failed during split")
)

// SeparatingTriangle is three vertices u,v,w plus the three edge ids
// connecting them, per spec.md §3.
type SeparatingTriangle struct {
	U, V, W          embed.VertexID
	EUV, EVW, EWU    embed.EdgeID
}

// vertices returns the triangle's three vertices in order.
func (t SeparatingTriangle) vertices() [3]embed.VertexID { return [3]embed.VertexID{t.U, t.V, t.W} }

// edges returns the triangle's three edge ids in order, aligned with vertices().
func (t SeparatingTriangle) edges() [3]embed.EdgeID { return [3]embed.EdgeID{t.EUV, t.EVW, t.EWU} }

// FourBlockComponent is an EmbeddedGraph plus the two side tables spec.md §3
// requires: OriginalEdge maps each component edge id back to the original
// graph's edge id (or embed.DummyEdge for a virtual edge), and
// DesignatedFace marks, for a vertex that needs one, the 1-based rotation
// slot a virtual edge must be inserted before during geometric realization.
type FourBlockComponent struct {
	Graph          *embed.EmbeddedGraph
	OriginalEdge   []embed.EdgeID     // indexed by component EdgeID
	OriginalVertex []embed.VertexID   // indexed by component VertexID; original graph vertex this one came from
	DesignatedFace []int              // indexed by component VertexID; 0 = none, else 1-based rotation slot
}

// FourBlockTree is an ordered list of FourBlockComponents: the root
// (containing the original outer face) first, followed by one component per
// separating triangle in the reverse of the order the triangles were split.
type FourBlockTree struct {
	Components []*FourBlockComponent
}

// Root returns the first (root) component, or nil if the tree is empty.
func (t *FourBlockTree) Root() *FourBlockComponent {
	if len(t.Components) == 0 {
		return nil
	}
	return t.Components[0]
}
