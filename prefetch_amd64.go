//go:build amd64

package ripshuffle

import "golang.org/x/sys/cpu"

// prefetchSupported gates whether the rough shuffle and prefetched
// Fisher–Yates variant bother issuing a software prefetch hint at all.
// AVX2 support is used as a proxy for "recent enough amd64 core that the
// hint's bookkeeping cost is paid back by fewer cache misses".
var prefetchSupported = cpu.X86.HasAVX2
