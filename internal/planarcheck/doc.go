// Package planarcheck implements the Tester CLI's self-check (spec.md §6,
// §8 edge case 8): given a graph and an L-drawing of it, decide whether any
// horizontal segment strictly crosses any vertical segment.
package planarcheck
