//go:build arm64

package codec

// NEON (Advanced SIMD) is architecturally guaranteed on arm64, so there
// is nothing to probe; golang.org/x/sys/cpu does not populate ARM64
// feature bits on every OS (notably darwin), and the baseline is all the
// 128-bit kernels need.

func hasSSE2() bool { return false }

func hasAVX2() bool { return false }

func hasAVX512() bool { return false }

func hasNEON() bool { return true }
