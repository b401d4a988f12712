package ripshuffle

// shuffleParallel is the parallel ScatterShuffle driver. budget is the
// number of fork levels left to spend on this subtree; once it reaches
// zero (or the input is small enough) the call falls through to the
// sequential driver, which still recurses correctly, it just stops
// spawning new goroutines.
func shuffleParallel[T any](rng SeedableSource64, cfg Config, pool Pool, a []T, budget int) {
	if len(a) <= cfg.BaseCaseSize || budget <= 0 {
		shuffleSeq(rng, cfg, a)
		return
	}
	b := adaptiveBucketCount(cfg, len(a))
	if b == 0 {
		shuffleSeq(rng, cfg, a)
		return
	}

	bs := newBucketSet(a, b)
	roughShuffleParallel(rng, pool, bs, budget)
	reconcileStashes(rng, cfg, bs)
	recurseBuckets(rng, cfg, pool, bs, budget)
}

// roughShuffleParallel splits every bucket in bs in half, recursively
// rough-shuffles the two halves in parallel with independently-seeded
// RNGs, merges each bucket's halves back together, then runs one more
// sequential rough-shuffle pass over the merged buckets to mix across
// the seam the split introduced.
func roughShuffleParallel[T any](rng SeedableSource64, pool Pool, bs *BucketSet[T], budget int) {
	if budget <= 0 {
		roughShuffle[T](rng, bs)
		return
	}

	left, right := bs.splitHalves()
	rightRNG := rng.NewChild()
	forkJoin(pool,
		func() { roughShuffleParallel(rng, pool, left, budget-1) },
		func() { roughShuffleParallel(rightRNG, pool, right, budget-1) },
	)
	mergeHalvesInto(bs, left, right)
	roughShuffle[T](rng, bs)
}

// recurseBuckets is the driver's second fork point: after reshape has
// fixed each bucket's boundaries, split the bucket array in half and
// recurse on each half in parallel with independently-seeded RNGs; at
// the leaves (a single bucket) call back into shuffleParallel on that
// bucket's data so it can keep forking if budget remains.
func recurseBuckets[T any](rng SeedableSource64, cfg Config, pool Pool, bs *BucketSet[T], budget int) {
	recurseBucketRange(rng, cfg, pool, bs, 0, bs.Len(), budget)
}

func recurseBucketRange[T any](rng SeedableSource64, cfg Config, pool Pool, bs *BucketSet[T], lo, hi, budget int) {
	if hi-lo == 1 {
		shuffleParallel(rng, cfg, pool, bs.Bucket(lo).Slice(), budget)
		return
	}
	mid := lo + (hi-lo)/2
	if budget <= 0 {
		recurseBucketRange(rng, cfg, pool, bs, lo, mid, 0)
		recurseBucketRange(rng, cfg, pool, bs, mid, hi, 0)
		return
	}

	rightRNG := rng.NewChild()
	forkJoin(pool,
		func() { recurseBucketRange(rng, cfg, pool, bs, lo, mid, budget-1) },
		func() { recurseBucketRange(rightRNG, cfg, pool, bs, mid, hi, budget-1) },
	)
}
