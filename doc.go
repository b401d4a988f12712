// Package ripshuffle implements ScatterShuffle, an in-place, uniformly
// random permutation algorithm for slices of arbitrary element type.
//
// Instead of making a random write anywhere in the slice at every step
// (the classical Fisher–Yates access pattern, which is cache-unfriendly
// on large inputs), ScatterShuffle first coarsely partitions elements
// into a small number of contiguous buckets using only the low bits of
// random draws, then recurses on each bucket once it is small enough to
// fit in cache. A sequential and a parallel driver are provided; both
// fall back to Fisher–Yates below a size threshold.
//
// The public entry points are SeqShuffle, SeqShuffleWithConfig,
// ParShuffle, ParShuffleWithConfig, and ParShuffleSeedWith, plus the
// alternative MergeShuffle and ParMergeShuffle. Config, Pool/NewPool,
// Source64/SeedableSource64 and Xoshiro256 configure them; BitSource and
// FixedBitSource are the exported random-bit helpers they use.
package ripshuffle
