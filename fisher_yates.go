package ripshuffle

// fisherYatesThreshold is the bucket length below which the plain
// unchecked-32 variant is used outright, skipping both the prefetch
// pipeline's bookkeeping and the 64-bit dispatch in genIndex.
const fisherYatesThreshold = 256

// fisherYates dispatches to the Fisher–Yates base-case variant best
// suited to a[0:len(a)], given cfg's prefetch settings: naive,
// software-prefetch-pipelined, or unchecked-32.
func fisherYates[T any](rng Source64, a []T, cfg Config) {
	if len(a) < 2 {
		return
	}
	if len(a) > fisherYatesThreshold && prefetchSupported && cfg.PrefetchWidth > 0 {
		prefetchedFisherYates(rng, a, cfg.PrefetchWidth)
		return
	}
	if len(a) <= lemireThreshold32 {
		uncheckedFisherYates32(rng, a)
		return
	}
	naiveFisherYates(rng, a)
}

// naiveFisherYates is the textbook in-place shuffle: for each position
// from the end down to 1, swap it with a uniformly random earlier (or
// equal) position. It makes no assumption about len(a) fitting in 32
// bits, so it always goes through genIndex's 32/64-bit dispatch.
func naiveFisherYates[T any](rng Source64, a []T) {
	for i := len(a) - 1; i >= 1; i-- {
		j := int(genIndex(rng, uint64(i+1)))
		a[i], a[j] = a[j], a[i]
	}
}

// uncheckedFisherYates32 is naiveFisherYates specialized to inputs
// known to fit within 32-bit index bounds, skipping genIndex's
// 64-bit-vs-32-bit size check on every iteration. The loop is unrolled
// two positions at a time so both index draws come out of one 64-bit
// word via genIndexPair32. Callers are responsible for only using it
// when len(a) fits the 32-bit sampler.
func uncheckedFisherYates32[T any](rng Source64, a []T) {
	i := len(a) - 1
	for ; i >= 2; i -= 2 {
		j0, j1 := genIndexPair32(rng, uint32(i+1), uint32(i))
		a[i], a[j0] = a[j0], a[i]
		a[i-1], a[j1] = a[j1], a[i-1]
	}
	if i == 1 {
		j := int(genIndex32(rng, 2))
		a[1], a[j] = a[j], a[1]
	}
}

// prefetchedFisherYates pipelines the random-index draws width steps
// ahead of the swaps that consume them, issuing a prefetch hint for
// each target slot as soon as its index is known so the cache line is
// more likely resident by the time the swap executes.
func prefetchedFisherYates[T any](rng Source64, a []T, width int) {
	n := len(a)
	if n < 2 {
		return
	}
	if width < 1 {
		width = 1
	}
	if width > n-1 {
		width = n - 1
	}

	ring := make([]int, width)
	head, filled, next := 0, 0, n-1

	draw := func() {
		j := int(genIndex(rng, uint64(next+1)))
		prefetch(a, j)
		ring[(head+filled)%width] = j
		filled++
		next--
	}
	for filled < width && next >= 1 {
		draw()
	}

	for i := n - 1; i >= 1; i-- {
		j := ring[head]
		head = (head + 1) % width
		filled--
		if next >= 1 {
			draw()
		}
		a[i], a[j] = a[j], a[i]
	}
}
