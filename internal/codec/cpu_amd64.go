//go:build amd64

package codec

import (
	"golang.org/x/sys/cpu"
)

func hasSSE2() bool {
	// SSE2 is part of the amd64 baseline.
	return true
}

func hasAVX2() bool {
	return cpu.X86.HasAVX2
}

// hasAVX512 requires the F+BW+VL subset the 512-bit kernels assume.
func hasAVX512() bool {
	return cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL
}

func hasNEON() bool {
	return false
}
