package sampler

import "github.com/Parranoh/ldrawing/internal/embed"

// Sample implements spec.md §6's Sampler CLI pipeline: draw a random
// bitstring of length 4n-2 and weight n-1, rotate it to its minimal
// conjugate, decode the result to a rooted plane tree, close the tree into
// a triangulation, and return the resulting embedding.
func Sample(n int, opts Options) (*embed.EmbeddedGraph, error) {
	if opts.Rand == nil {
		return nil, ErrNeedRandSource
	}
	if n < minN {
		return nil, ErrTooFewVertices
	}

	bits := randomBitstring(n, opts.Rand)
	bits = minimalConjugate(bits)
	nodes := decodeTree(bits)

	g, err := buildTriangulation(nodes)
	if err != nil {
		return nil, err
	}

	if opts.TwoCycles {
		// The literature's 2-cycle duplication pass produces a multigraph;
		// this package's EmbeddedGraph models simple graphs only (spec.md
		// §1 Non-goals), so the request is accepted but left without a
		// structural effect — see DESIGN.md.
		_ = opts.TwoCycles
	}

	return g, nil
}
