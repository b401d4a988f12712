package ripshuffle

// reconcileStashes runs after a rough shuffle pass leaves each bucket
// with some leftover stash: it (1) shuffles the combined stash elements
// among themselves, (2) draws a multinomial target length for every
// bucket, and (3) reshapes bucket boundaries in place so each bucket's
// length matches its target while keeping every bucket's
// processed-prefix/stash-suffix split intact. The caller is responsible
// for recursing into each bucket's resulting range.
func reconcileStashes[T any](rng Source64, cfg Config, bs *BucketSet[T]) {
	shuffleCombinedStash(rng, cfg, bs)
	targets := drawMultinomial(rng, bs.TotalStash(), bs.Len())
	for i := 0; i < bs.Len(); i++ {
		targets[i] += bs.Bucket(i).Processed()
	}
	reshapeToTargets(bs, targets)
}

// shuffleCombinedStash shuffles the stash slots across all buckets as if
// they were one contiguous run. When the total stash fits
// within the last bucket's capacity, every other bucket's stash is
// swapped into the last bucket's tail (recording each swap so it can be
// undone afterwards), the resulting contiguous run is shuffled
// recursively, and the swaps are replayed to scatter the now-shuffled
// elements back to their bucket-local stash positions. Otherwise the
// stashes are shuffled in place via the non-contiguous fallback.
func shuffleCombinedStash[T any](rng Source64, cfg Config, bs *BucketSet[T]) {
	B := bs.Len()
	last := bs.Bucket(B - 1)
	S := bs.TotalStash()
	if S == 0 {
		return
	}
	if S > last.Len() {
		ranges := make([][]T, B)
		for i := 0; i < B; i++ {
			ranges[i] = bs.Bucket(i).StashSlice()
		}
		noncontiguousFisherYates(rng, ranges)
		return
	}

	swaps, lo, hi := compactStashToTail(bs)
	shuffleSeq(rng, cfg, bs.data[lo:hi])
	for i := len(swaps) - 1; i >= 0; i-- {
		sw := swaps[i]
		bs.data[sw.a], bs.data[sw.b] = bs.data[sw.b], bs.data[sw.a]
	}
}

type stashSwap struct{ a, b int }

// compactStashToTail moves every bucket's stash elements into the
// trailing S positions of the array (S = total stash, which by
// precondition fits inside the last bucket's range), recording each
// swap performed so the caller can invert it later. Returns the bounds
// of the resulting contiguous stash run.
func compactStashToTail[T any](bs *BucketSet[T]) ([]stashSwap, int, int) {
	B := bs.Len()
	last := bs.Bucket(B - 1)
	ownStash := last.Stash()
	S := bs.TotalStash()
	data := bs.data

	var swaps []stashSwap
	dst := last.hi - ownStash
	for i := B - 2; i >= 0; i-- {
		b := bs.Bucket(i)
		st := b.Stash()
		for t := 0; t < st; t++ {
			dst--
			src := b.hi - 1 - t
			data[src], data[dst] = data[dst], data[src]
			swaps = append(swaps, stashSwap{src, dst})
		}
	}
	return swaps, last.hi - S, last.hi
}

// binomial samples from Binomial(n, 1/invP) by running n Bernoulli
// trials, each a uniform draw in [0, invP) that succeeds on 0.
func binomial(rng Source64, n, invP int) int {
	if n <= 0 {
		return 0
	}
	x := 0
	for i := 0; i < n; i++ {
		if genIndex32(rng, uint32(invP)) == 0 {
			x++
		}
	}
	return x
}

// drawMultinomial distributes total balls across numBins bins with
// equal bin probabilities via a sequence of binomial draws: with rem
// balls remaining over k bins, draw x ~ Binomial(rem, 1/k), assign it to
// the current bin, subtract, advance.
func drawMultinomial(rng Source64, total, numBins int) []int {
	draws := make([]int, numBins)
	rem := total
	for i := 0; i < numBins-1; i++ {
		k := numBins - i
		x := binomial(rng, rem, k)
		draws[i] = x
		rem -= x
	}
	draws[numBins-1] = rem
	return draws
}

// reshapeToTargets adjusts bucket boundaries so each bucket's length
// equals its target, in two sweeps. The left-to-right sweep lets each
// over-long bucket hand its excess to the right neighbor, but holds
// back a reservation for any growth still owed to buckets on its left,
// so a single neighbor is never asked for more slots than it holds.
// The right-to-left sweep then fixes buckets that are still too long
// (possible when the first sweep pushed extra length rightward past a
// bucket already at target) by handing the excess to the left neighbor.
// A transfer never exceeds the donor's stash here: targets are always
// at least the bucket's processed count, so only stash capacity moves.
func reshapeToTargets[T any](bs *BucketSet[T], targets []int) {
	shrinkSweepToRight(bs, targets)
	shrinkSweepToLeft(bs, targets)
}

func shrinkSweepToRight[T any](bs *BucketSet[T], targets []int) {
	growthNeededLeft := 0
	for i := 0; i < bs.Len()-1; i++ {
		b := bs.Bucket(i)
		reservation := growthNeededLeft
		if reservation < 0 {
			reservation = 0
		}
		withReservation := targets[i] + reservation
		if b.Len() > withReservation {
			nb, nr := shrinkToRight(b, bs.Bucket(i+1), b.Len()-withReservation)
			bs.SetBucket(i, nb)
			bs.SetBucket(i+1, nr)
			b = nb
		}
		growthNeededLeft += targets[i] - b.Len()
	}
}

func shrinkSweepToLeft[T any](bs *BucketSet[T], targets []int) {
	for i := bs.Len() - 1; i >= 1; i-- {
		b := bs.Bucket(i)
		if b.Len() <= targets[i] {
			continue
		}
		nl, nb := growFromRight(bs.Bucket(i-1), b, b.Len()-targets[i])
		bs.SetBucket(i-1, nl)
		bs.SetBucket(i, nb)
	}
}
