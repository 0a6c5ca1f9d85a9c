package codec

// Impl is one self-contained codec variant: a set of batch kernels for a
// CPU instruction-set family plus the shared engines implemented as
// methods on it. Every variant implements the full operation set; they
// differ only in window width and availability.
type Impl struct {
	name      string
	priority  int
	available func() bool
	k         kernels
}

// Name returns the variant's instruction-set family name.
func (im *Impl) Name() string { return im.name }

// Priority returns the variant's selection rank; higher wins.
func (im *Impl) Priority() int { return im.priority }

// Available reports whether the host CPU supports this variant.
func (im *Impl) Available() bool { return im.available() }

func always() bool { return true }

var (
	scalarImpl = &Impl{name: "scalar", priority: 0, available: always, k: scalarKernels}
	sse2Impl   = &Impl{name: "sse2", priority: 20, available: hasSSE2, k: kernels128}
	neonImpl   = &Impl{name: "neon", priority: 20, available: hasNEON, k: kernels128}
	avx2Impl   = &Impl{name: "avx2", priority: 30, available: hasAVX2, k: kernels256}
	avx512Impl = &Impl{name: "avx512", priority: 40, available: hasAVX512, k: kernels512}
)
