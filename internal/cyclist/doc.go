// Package cyclist implements a generic doubly-linked ring with O(1)
// ownership-transferring ("donating") splice, per spec.md §4.1.
//
// The ring has no fixed begin/end: Begin and End both return an iterator at
// the "head" node, and List.AtEnd reports an iterator as finished only once
// it has moved at least once and returned to the head (tracked via an
// internal "has moved" flag, since a plain node pointer can't otherwise
// distinguish "about to traverse the whole ring" from "just wrapped around").
// Iterator.Equal compares node identity only and ignores that flag.
//
// Splice is the one operation this package is built around: it moves an open
// arc (first, last) — exclusive of both endpoints — from a donor list into a
// receiver immediately before a given position, while leaving iterators to
// first and last valid in BOTH lists. That's done by allocating two fresh
// nodes carrying copies of first's and last's values, bracketing the moved
// arc with those copies in the destination, and re-closing the donor ring
// directly from first to last. See spec.md §4.1 and §9 for the rationale:
// standard list splice changes the moved nodes' list identity, but the
// Decomposer needs stable endpoint iterators in both the donor and the
// recipient after a split (they identify the two triangle corners on each
// side of the cut).
package cyclist
