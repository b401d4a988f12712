package ripshuffle

// SeqShuffle shuffles a in place into a uniformly random permutation
// using the sequential ScatterShuffle driver and default tuning. rng is
// any source of uniform 64-bit words.
func SeqShuffle[T any](rng Source64, a []T) {
	shuffleSeq(rng, DefaultSequentialConfig(), a)
}

// SeqShuffleWithConfig is SeqShuffle with caller-supplied tuning.
func SeqShuffleWithConfig[T any](rng Source64, cfg Config, a []T) {
	cfg.validate()
	shuffleSeq(rng, cfg, a)
}

// ParShuffle shuffles a in place using the parallel ScatterShuffle
// driver and default tuning. rng must support seeded construction of
// independent child streams, since every fork point draws a fresh one
// for the half it hands off; rng itself must also be safe to use from
// the calling goroutine concurrently with its children running, which
// holds here because forkJoin only ever touches rng on the side that
// didn't get a freshly seeded child.
func ParShuffle[T any](rng SeedableSource64, a []T) {
	cfg := DefaultParallelConfig(len(a))
	pool := NewPool(0)
	budget := ceilLog2(cfg.NumSubproblems)
	shuffleParallel(rng, cfg, pool, a, budget)
}

// ParShuffleWithConfig is ParShuffle with caller-supplied tuning and
// work-stealing pool; only the Pool contract, defined in forkjoin.go, is
// fixed here, not how the pool itself schedules work.
func ParShuffleWithConfig[T any](rng SeedableSource64, cfg Config, pool Pool, a []T) {
	cfg.validate()
	budget := ceilLog2(cfg.NumSubproblems)
	shuffleParallel(rng, cfg, pool, a, budget)
}

// ParShuffleSeedWith adapts a plain Source64 into ParShuffle's
// SeedableSource64 requirement by seeding the package's own splittable
// RNG from one draw of rng, then running ParShuffle with it — a
// convenience wrapper for callers whose own RNG, e.g. a thread-local
// one, can't spawn independent children.
func ParShuffleSeedWith[T any](rng Source64, a []T) {
	ParShuffle(NewXoshiro256(rng.Uint64()), a)
}

// MergeShuffle shuffles a in place using the alternative merge-shuffle
// algorithm: split in two, shuffle each half, randomly merge. Not used
// by SeqShuffle/ParShuffle; provided for callers who specifically want
// this access pattern instead.
func MergeShuffle[T any](rng Source64, a []T) {
	mergeShuffle(rng, DefaultSequentialConfig(), a)
}

// ParMergeShuffle is MergeShuffle's parallel counterpart.
func ParMergeShuffle[T any](rng SeedableSource64, a []T) {
	cfg := DefaultParallelConfig(len(a))
	pool := NewPool(0)
	budget := ceilLog2(cfg.NumSubproblems)
	mergeShuffleParallel(rng, cfg, pool, a, budget)
}
