package ripshuffle

// mergeShuffle is an alternative top-level shuffle algorithm: split the
// input in two, shuffle each half independently (recursively, down to
// the same Fisher–Yates base case as ScatterShuffle), then randomly merge the
// two already-shuffled halves back into one uniformly shuffled whole.
func mergeShuffle[T any](rng Source64, cfg Config, a []T) {
	n := len(a)
	if n <= cfg.BaseCaseSize {
		fisherYates(rng, a, cfg)
		return
	}
	mid := n / 2
	mergeShuffle(rng, cfg, a[:mid])
	mergeShuffle(rng, cfg, a[mid:])
	randomMerge(rng, a, mid)
}

// mergeShuffleParallel is mergeShuffle's fork-join counterpart: the two
// recursive halves run under forkJoin with independently-seeded RNGs
// instead of sequentially.
func mergeShuffleParallel[T any](rng SeedableSource64, cfg Config, pool Pool, a []T, budget int) {
	n := len(a)
	if n <= cfg.BaseCaseSize || budget <= 0 {
		mergeShuffle(rng, cfg, a)
		return
	}
	mid := n / 2
	rightRNG := rng.NewChild()
	forkJoin(pool,
		func() { mergeShuffleParallel(rng, cfg, pool, a[:mid], budget-1) },
		func() { mergeShuffleParallel(rightRNG, cfg, pool, a[mid:], budget-1) },
	)
	randomMerge(rng, a, mid)
}

// randomMerge combines two already-uniformly-shuffled adjacent runs
// a[:mid] and a[mid:] into a single uniformly shuffled run, in place,
// via a "rough random merge, then finish with Fisher–Yates" pass: walk
// forward from the start, flipping a fair coin at each position to
// decide whether that slot keeps its current (left-run) element or is
// swapped with the next not-yet-placed right-run element. The coin
// phase stops the first time the coin picks an exhausted run; each
// element of the leftover suffix is then swapped with a uniformly
// chosen position at or before its own (Fisher–Yates insertion), which
// is the MergeShuffle algorithm's correction step (Bacher, Bodini,
// Hollender, Lumbroso, "Mergeshuffle").
func randomMerge[T any](rng Source64, a []T, mid int) {
	n := len(a)
	begin, m := 0, mid
	bits := NewBitSource(rng)
	for {
		if bits.Bool() {
			if m == n {
				break
			}
			a[begin], a[m] = a[m], a[begin]
			m++
		} else if begin == m {
			break
		}
		begin++
	}

	for left := begin; left < n; left++ {
		j := int(genIndex(rng, uint64(left+1)))
		a[left], a[j] = a[j], a[left]
	}
}
