// Package sampler implements the "Sampler CLI" of spec.md §6: a random
// bitstring of length 4n-2 and weight n-1, cyclic shift to the
// minimum-cumulative conjugate, decode to a plane tree, and a stacked
// closure into a simple maximal planar triangulation (see closure.go).
// The closure uses only the tree's node count, so every sample for the same
// n is the same triangulation; the output is not uniformly distributed.
// No orientation pass is run (each edge points from its lower to its higher
// vertex id), and no 2-cycles are added (Options.TwoCycles has no effect).
package sampler
