package ripshuffle

import "math/bits"

// shuffleSeq is the sequential ScatterShuffle driver: below
// cfg.BaseCaseSize it delegates straight to Fisher–Yates, otherwise it
// partitions into buckets, rough-shuffles, reconciles the stash, and
// recurses into each bucket.
func shuffleSeq[T any](rng Source64, cfg Config, a []T) {
	if len(a) <= cfg.BaseCaseSize {
		fisherYates(rng, a, cfg)
		return
	}
	b := adaptiveBucketCount(cfg, len(a))
	if b == 0 {
		fisherYates(rng, a, cfg)
		return
	}

	bs := newBucketSet(a, b)
	roughShuffle(rng, bs)
	reconcileStashes(rng, cfg, bs)
	for i := 0; i < bs.Len(); i++ {
		shuffleSeq(rng, cfg, bs.Bucket(i).Slice())
	}
}

// adaptiveBucketCount picks a bucket count for an input of length n,
// scaling down from cfg.NumBuckets for inputs only moderately above the
// base case so the driver doesn't pay a fixed per-bucket overhead on
// mid-sized inputs: `n / base_case_size * 2`, rounded down to a power of
// two and clamped to cfg.NumBuckets. Returns 0 when that count is
// minBuckets (2) or less, signaling the caller to use Fisher–Yates
// directly.
func adaptiveBucketCount(cfg Config, n int) int {
	if cfg.BaseCaseSize <= 0 {
		return cfg.NumBuckets
	}
	raw := (n / cfg.BaseCaseSize) * 2
	if raw <= minBuckets {
		return 0
	}
	if raw >= cfg.NumBuckets {
		return cfg.NumBuckets
	}
	return 1 << floorLog2(raw)
}

// floorLog2 returns floor(log2(n)) for n >= 1.
func floorLog2(n int) int {
	return bits.Len(uint(n)) - 1
}

// ceilLog2 returns ceil(log2(n)) for n >= 1.
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
