//go:build !amd64 && !arm64

package codec

// No vector capability is assumed on other architectures; the scalar
// variant is always available.

func hasSSE2() bool { return false }

func hasAVX2() bool { return false }

func hasAVX512() bool { return false }

func hasNEON() bool { return false }
