package sampler

import "math/rand"

// randomBitstring returns a uniformly random sequence of length 4n-2 with
// exactly n-1 ones (spec.md §6).
func randomBitstring(n int, rng *rand.Rand) []bool {
	total := 4*n - 2
	ones := n - 1
	bits := make([]bool, total)
	for i := 0; i < ones; i++ {
		bits[i] = true
	}
	rng.Shuffle(total, func(i, j int) { bits[i], bits[j] = bits[j], bits[i] })
	return bits
}

// minimalConjugate rotates bits to the unique cyclic shift whose running sum
// of (+3 per one, -1 per zero) is minimized at the start — the classic
// cycle-lemma rotation that the Poulalhon–Schaeffer decode requires before
// reading the bitstring as a tree (spec.md §6).
func minimalConjugate(bits []bool) []bool {
	n := len(bits)
	cum := make([]int, n)
	running := 0
	best := 0
	for i, b := range bits {
		cum[i] = running
		if cum[i] < cum[best] {
			best = i
		}
		if b {
			running += 3
		} else {
			running--
		}
	}
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		out[i] = bits[(best+i)%n]
	}
	return out
}
