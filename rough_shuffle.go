package ripshuffle

import "math/bits"

// roughShuffle partitions every element currently unprocessed across
// bs's buckets by repeatedly handing the current "active" bucket's
// frontier element to a uniformly random destination bucket, until any
// bucket's stash is exhausted. It alternates an accelerated,
// batched-and-prefetched inner loop with a per-swap-checked naive
// fallback once the remaining slack no longer covers a full batch.
func roughShuffle[T any](rng Source64, bs *BucketSet[T]) {
	for i := 0; i < bs.Len(); i++ {
		if bs.Bucket(i).Len() == 0 {
			return
		}
	}

	const active = 0
	logB := intLog2(bs.Len())
	s := 32 / logB
	if s < 1 {
		s = 1
	}
	if s > 32 {
		s = 32
	}
	bsrc := NewFixedBitSource(rng, uint(logB))

	for {
		if roughShuffleAnyFull(bs) {
			return
		}
		// Each call to the accelerated loop performs 2*s swaps per round
		// plus one bootstrap displacement of the active bucket, so the
		// round budget is planned against minStash-1: even if every
		// destination draw lands in the same bucket, its frontier cannot
		// run past its end.
		minStash := roughShuffleMinStash(bs)
		rounds := (minStash - 1) / (2 * s)
		if rounds < 1 {
			roughShuffleNaive(bs, bsrc, active)
			return
		}
		roughShuffleAccelerated(bs, rng, active, logB, s, rounds)
	}
}

func roughShuffleAnyFull[T any](bs *BucketSet[T]) bool {
	for i := 0; i < bs.Len(); i++ {
		if bs.Bucket(i).FullyProcessed() {
			return true
		}
	}
	return false
}

func roughShuffleMinStash[T any](bs *BucketSet[T]) int {
	min := bs.Bucket(0).Stash()
	for i := 1; i < bs.Len(); i++ {
		if s := bs.Bucket(i).Stash(); s < min {
			min = s
		}
	}
	return min
}

func intLog2(n int) int {
	return bits.TrailingZeros(uint(n))
}

// roughShuffleAccelerated runs `rounds` rounds of two unrolled batches
// of `s` swaps each. Each batch draws one 64-bit word, slices it into
// `s` destination-bucket indices of logB bits each, prefetches every
// destination's frontier slot, then performs the swaps. A single
// relayed "stash" local variable stands in for whatever element is
// currently in flight between buckets.
func roughShuffleAccelerated[T any](bs *BucketSet[T], rng Source64, active, logB, s, rounds int) {
	data := bs.data
	mask := uint64(1)<<uint(logB) - 1

	ab := bs.Bucket(active)
	reserved := ab.lo + ab.processed
	stash := data[reserved]
	ab.markProcessed(1)
	bs.SetBucket(active, ab)

	var destsArr [32]int
	dests := destsArr[:s]

	for r := 0; r < rounds; r++ {
		for batch := 0; batch < 2; batch++ {
			word := rng.Uint64()
			for i := 0; i < s; i++ {
				dests[i] = int((word >> uint(i*logB)) & mask)
			}
			for i := 0; i < s; i++ {
				b := bs.Bucket(dests[i])
				prefetch(data, b.lo+b.processed)
			}
			for i := 0; i < s; i++ {
				d := dests[i]
				b := bs.Bucket(d)
				if d == active {
					data[reserved] = stash
					reserved = b.lo + b.processed
					stash = data[reserved]
					b.markProcessed(1)
				} else {
					slot := b.lo + b.processed
					old := data[slot]
					data[slot] = stash
					stash = old
					b.markProcessed(1)
				}
				bs.SetBucket(d, b)
			}
		}
	}
	data[reserved] = stash
}

// roughShuffleNaive runs the per-swap-checked relay loop, stopping the
// instant any bucket fills. The element in flight comes from the active
// bucket's first unprocessed slot, which stays unprocessed until a draw
// picks the active bucket; on return the element still in flight is
// put back into that slot as stash.
func roughShuffleNaive[T any](bs *BucketSet[T], bsrc *FixedBitSource, active int) {
	if roughShuffleAnyFull(bs) {
		return
	}
	data := bs.data

	ab := bs.Bucket(active)
	reserved := ab.lo + ab.processed
	stash := data[reserved]

	for {
		d := int(bsrc.Next())
		b := bs.Bucket(d)
		if d == active {
			data[reserved] = stash
			b.markProcessed(1)
			if !b.FullyProcessed() {
				reserved = b.lo + b.processed
				stash = data[reserved]
			}
		} else {
			slot := b.lo + b.processed
			old := data[slot]
			data[slot] = stash
			stash = old
			b.markProcessed(1)
		}
		bs.SetBucket(d, b)
		if b.FullyProcessed() {
			data[reserved] = stash
			return
		}
	}
}
