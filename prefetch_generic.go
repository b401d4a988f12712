//go:build !amd64

package ripshuffle

// prefetchSupported is always false off amd64: Go has no portable
// prefetch intrinsic, and without the x/sys/cpu feature gate we have no
// cheap way to tell whether a hint would pay for itself on this
// architecture. Correctness never depends on the hint, so losing it
// costs only throughput on large inputs.
var prefetchSupported = false
