package codec

import (
	"sync"
)

// implList holds every compiled-in variant in descending priority order.
// The dispatcher walks it once; the scalar variant terminates the walk
// because it is always available.
var implList = []*Impl{avx512Impl, avx2Impl, neonImpl, sse2Impl, scalarImpl}

var (
	selectOnce sync.Once
	active     *Impl
)

// Active returns the variant selected for this process: the first entry
// of implList whose feature set the host CPU reports. The selection is
// computed once, is immutable afterwards, and is safe to read from any
// number of goroutines.
func Active() *Impl {
	selectOnce.Do(func() {
		for _, im := range implList {
			if im.available() {
				active = im
				return
			}
		}
		active = scalarImpl
	})
	return active
}

// All returns every compiled-in variant in priority order. The variants
// are pure Go, so all of them are runnable on any host; tests use this to
// check cross-variant equivalence without going through Active.
func All() []*Impl {
	out := make([]*Impl, len(implList))
	copy(out, implList)
	return out
}

// ByName looks a variant up by its family name.
func ByName(name string) (*Impl, bool) {
	for _, im := range implList {
		if im.name == name {
			return im, true
		}
	}
	return nil, false
}

// Descriptor describes one variant for capability reporting.
type Descriptor struct {
	Name       string
	CompiledIn bool
	Available  bool
	Priority   int
	Selected   bool
}

// Descriptors returns one descriptor per compiled-in variant, in priority
// order. Exactly one descriptor is marked Selected.
func Descriptors() []Descriptor {
	sel := Active()
	out := make([]Descriptor, 0, len(implList))
	for _, im := range implList {
		out = append(out, Descriptor{
			Name:       im.name,
			CompiledIn: true,
			Available:  im.available(),
			Priority:   im.priority,
			Selected:   im == sel,
		})
	}
	return out
}
