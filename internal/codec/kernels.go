package codec

import (
	"github.com/biggeezerdevelopment/simdutf-go/internal/vector"
)

// kernels are the per-family batch predicates. Each returns the length in
// bytes of the prefix of b that passes the predicate, quantized to the
// family's window width; the engines fall back to the shared scalar core
// when a window fails. The scalar family has no window and always
// returns 0.
type kernels struct {
	width int

	// asciiRun: every byte has the high bit clear.
	asciiRun func(b []byte) int
	// utf16Run: no 16-bit unit (in the given byte order) is a surrogate.
	utf16Run func(b []byte, big bool) int
	// utf16ASCIIRun: every 16-bit unit is <= 0x7F.
	utf16ASCIIRun func(b []byte, big bool) int
	// utf32Run: every 32-bit unit is below 0x8000 (a conservative
	// single-unit predicate; larger valid units take the scalar path).
	utf32Run func(b []byte) int
}

func runZero(b []byte) int { return 0 }

func runZero16(b []byte, big bool) int { return 0 }

var scalarKernels = kernels{
	width:         0,
	asciiRun:      runZero,
	utf16Run:      runZero16,
	utf16ASCIIRun: runZero16,
	utf32Run:      runZero,
}

// SWAR lane patterns shared by all widths.
const (
	surrogateSelect = 0xF800F800F800F800 // top five bits of each 16-bit unit
	surrogateTag    = 0xD800D800D800D800
	asciiSelect16   = 0xFF80FF80FF80FF80 // bits above 0x7F in each 16-bit unit
	bmpLowSelect32  = 0xFFFF8000FFFF8000 // bits at or above 0x8000 in each 32-bit unit
)

// 128-bit kernels (SSE2 / NEON class).

func asciiRun128(b []byte) int {
	n := 0
	for len(b)-n >= vector.Width128 {
		if vector.LoadVec128(b[n:]).MoveMask() != 0 {
			break
		}
		n += vector.Width128
	}
	return n
}

func utf16Run128(b []byte, big bool) int {
	sel := vector.Broadcast128(surrogateSelect)
	tag := vector.Broadcast128(surrogateTag)
	n := 0
	for len(b)-n >= vector.Width128 {
		v := vector.LoadVec128(b[n:])
		if big {
			v = v.Swap16()
		}
		if v.And(sel).Xor(tag).HasZero16() {
			break
		}
		n += vector.Width128
	}
	return n
}

func utf16ASCIIRun128(b []byte, big bool) int {
	sel := vector.Broadcast128(asciiSelect16)
	n := 0
	for len(b)-n >= vector.Width128 {
		v := vector.LoadVec128(b[n:])
		if big {
			v = v.Swap16()
		}
		if !v.And(sel).IsZero() {
			break
		}
		n += vector.Width128
	}
	return n
}

func utf32Run128(b []byte) int {
	sel := vector.Broadcast128(bmpLowSelect32)
	n := 0
	for len(b)-n >= vector.Width128 {
		if !vector.LoadVec128(b[n:]).And(sel).IsZero() {
			break
		}
		n += vector.Width128
	}
	return n
}

var kernels128 = kernels{
	width:         vector.Width128,
	asciiRun:      asciiRun128,
	utf16Run:      utf16Run128,
	utf16ASCIIRun: utf16ASCIIRun128,
	utf32Run:      utf32Run128,
}

// 256-bit kernels (AVX2 class).

func asciiRun256(b []byte) int {
	n := 0
	for len(b)-n >= vector.Width256 {
		if vector.LoadVec256(b[n:]).MoveMask() != 0 {
			break
		}
		n += vector.Width256
	}
	return n
}

func utf16Run256(b []byte, big bool) int {
	sel := vector.Broadcast256(surrogateSelect)
	tag := vector.Broadcast256(surrogateTag)
	n := 0
	for len(b)-n >= vector.Width256 {
		v := vector.LoadVec256(b[n:])
		if big {
			v = v.Swap16()
		}
		if v.And(sel).Xor(tag).HasZero16() {
			break
		}
		n += vector.Width256
	}
	return n
}

func utf16ASCIIRun256(b []byte, big bool) int {
	sel := vector.Broadcast256(asciiSelect16)
	n := 0
	for len(b)-n >= vector.Width256 {
		v := vector.LoadVec256(b[n:])
		if big {
			v = v.Swap16()
		}
		if !v.And(sel).IsZero() {
			break
		}
		n += vector.Width256
	}
	return n
}

func utf32Run256(b []byte) int {
	sel := vector.Broadcast256(bmpLowSelect32)
	n := 0
	for len(b)-n >= vector.Width256 {
		if !vector.LoadVec256(b[n:]).And(sel).IsZero() {
			break
		}
		n += vector.Width256
	}
	return n
}

var kernels256 = kernels{
	width:         vector.Width256,
	asciiRun:      asciiRun256,
	utf16Run:      utf16Run256,
	utf16ASCIIRun: utf16ASCIIRun256,
	utf32Run:      utf32Run256,
}

// 512-bit kernels (AVX-512 class).

func asciiRun512(b []byte) int {
	n := 0
	for len(b)-n >= vector.Width512 {
		if vector.LoadVec512(b[n:]).MoveMask() != 0 {
			break
		}
		n += vector.Width512
	}
	return n
}

func utf16Run512(b []byte, big bool) int {
	sel := vector.Broadcast512(surrogateSelect)
	tag := vector.Broadcast512(surrogateTag)
	n := 0
	for len(b)-n >= vector.Width512 {
		v := vector.LoadVec512(b[n:])
		if big {
			v = v.Swap16()
		}
		if v.And(sel).Xor(tag).HasZero16() {
			break
		}
		n += vector.Width512
	}
	return n
}

func utf16ASCIIRun512(b []byte, big bool) int {
	sel := vector.Broadcast512(asciiSelect16)
	n := 0
	for len(b)-n >= vector.Width512 {
		v := vector.LoadVec512(b[n:])
		if big {
			v = v.Swap16()
		}
		if !v.And(sel).IsZero() {
			break
		}
		n += vector.Width512
	}
	return n
}

func utf32Run512(b []byte) int {
	sel := vector.Broadcast512(bmpLowSelect32)
	n := 0
	for len(b)-n >= vector.Width512 {
		if !vector.LoadVec512(b[n:]).And(sel).IsZero() {
			break
		}
		n += vector.Width512
	}
	return n
}

var kernels512 = kernels{
	width:         vector.Width512,
	asciiRun:      asciiRun512,
	utf16Run:      utf16Run512,
	utf16ASCIIRun: utf16ASCIIRun512,
	utf32Run:      utf32Run512,
}
