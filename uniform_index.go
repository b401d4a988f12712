package ripshuffle

import "math/bits"

// lemireThreshold32 is the largest ub for which the 32-bit
// widening-multiply sampler is used instead of the 64-bit one. Both
// draw one 64-bit word per attempt (the 32-bit path keeps its low
// half). Up to this threshold the rejection probability of the 32-bit
// path is low enough that its cheaper multiply wins; above it the
// rejection rate rises and the 64-bit path wins.
const lemireThreshold32 = 1 << 28

// genIndex draws a value uniformly distributed in [0, ub) using
// Lemire's algorithm: a widening multiply against a random word,
// rejecting and redrawing only when the low half of the product lands
// below the bias region. ub must be >= 1.
func genIndex(rng Source64, ub uint64) uint64 {
	if ub == 0 {
		panic("ripshuffle: genIndex requires ub >= 1")
	}
	if ub <= lemireThreshold32 {
		return uint64(genIndex32(rng, uint32(ub)))
	}
	return genIndex64(rng, ub)
}

func genIndex32(rng Source64, ub uint32) uint32 {
	return genIndex32From(rng, uint32(rng.Uint64()), ub)
}

// genIndex32From finishes the sampling algorithm given an initial
// random word the caller has already drawn; genIndexPair32 relies on
// this to keep its speculative first draws instead of wasting them.
func genIndex32From(rng Source64, initial, ub uint32) uint32 {
	m := uint64(initial) * uint64(ub)
	hi, lo := uint32(m>>32), uint32(m)
	if lo >= ub {
		return hi
	}
	t := -ub % ub
	for lo < t {
		m = uint64(uint32(rng.Uint64())) * uint64(ub)
		hi, lo = uint32(m>>32), uint32(m)
	}
	return hi
}

func genIndex64(rng Source64, ub uint64) uint64 {
	x := rng.Uint64()
	hi, lo := bits.Mul64(x, ub)
	if lo >= ub {
		return hi
	}
	t := -ub % ub
	for lo < t {
		x = rng.Uint64()
		hi, lo = bits.Mul64(x, ub)
	}
	return hi
}

// genIndexPair32 draws two independent indices in [0, ub0) and [0, ub1)
// from a single 64-bit word when both bounds are small enough to fit
// the 32-bit path, halving the number of RNG calls in the common case.
// If either half might need rejection, both fall back to the
// single-sample path, each resuming from its half of the original word.
func genIndexPair32(rng Source64, ub0, ub1 uint32) (uint32, uint32) {
	word := rng.Uint64()
	x0, x1 := uint32(word), uint32(word>>32)

	m0 := uint64(x0) * uint64(ub0)
	m1 := uint64(x1) * uint64(ub1)
	hi0, lo0 := uint32(m0>>32), uint32(m0)
	hi1, lo1 := uint32(m1>>32), uint32(m1)

	if lo0 < ub0 || lo1 < ub1 {
		return genIndex32From(rng, x0, ub0), genIndex32From(rng, x1, ub1)
	}
	return hi0, hi1
}
