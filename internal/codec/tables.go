package codec

import (
	"encoding/binary"

	"github.com/biggeezerdevelopment/simdutf-go/internal/vector"
)

// windowBytes is the load width of the batch decoder; the end-of-code-point
// mask covers the first maskBits bytes so a 4-byte sequence starting at
// byte 11 can roll over to the next window instead of being split.
const (
	windowBytes = 16
	maskBits    = 12
)

// Hand-specialized high-frequency masks: windows holding only 1-, only
// 2-, or only 3-byte sequences.
const (
	maskAllOneByte    = 0xFFF // ends at every position
	maskAllTwoByte    = 0xAAA // ends at 1,3,5,7,9,11
	maskAllThreeByte  = 0x924 // ends at 2,5,8,11
	asciiWindowSelect = 0xFFF // low 12 bits of the byte high-bit mask
)

// windowEntry describes how a 12-bit end-of-code-point mask regroups the
// window: the byte length of each code point in order, how many code
// points the window completes, and how many source bytes it consumes.
type windowEntry struct {
	lens     [maskBits]uint8
	n        uint8
	consumed uint8
}

// windowTable is pure data derived from the mask alone; it is built once
// here and shared read-only by every variant and every goroutine.
var windowTable [1 << maskBits]windowEntry

func init() {
	for m := range windowTable {
		e := &windowTable[m]
		prev := -1
		for i := 0; i < maskBits; i++ {
			if m>>i&1 == 1 {
				e.lens[e.n] = uint8(i - prev)
				e.n++
				prev = i
			}
		}
		e.consumed = uint8(prev + 1)
	}
}

// contMask16 returns a 16-bit mask with bit i set when byte i of b is a
// UTF-8 continuation byte (0b10xxxxxx). b must hold at least 16 bytes.
func contMask16(b []byte) uint32 {
	return uint32(contMaskWord(binary.LittleEndian.Uint64(b)) |
		contMaskWord(binary.LittleEndian.Uint64(b[8:]))<<8)
}

// contMaskWord classifies the 8 bytes of w: a continuation byte has bit 7
// set and bit 6 clear.
func contMaskWord(w uint64) uint64 {
	hi := w & 0x8080808080808080
	bit6 := (w << 1) & 0x8080808080808080
	return vector.MoveMask64(hi &^ bit6)
}

// endOfCodePointMask12 computes, over the first 12 bytes of b, a bitmask
// whose bit i is set when byte i is the last byte of a code point: byte
// i+1 starts a new sequence. b must hold at least 16 bytes and b[0] must
// be a sequence start.
func endOfCodePointMask12(b []byte) uint32 {
	lead := ^contMask16(b)
	return (lead >> 1) & maskAllOneByte
}

// highBitMask12 returns the high-bit mask of the first 12 bytes.
func highBitMask12(b []byte) uint32 {
	return uint32(vector.MoveMask64(binary.LittleEndian.Uint64(b))|
		vector.MoveMask64(binary.LittleEndian.Uint64(b[8:]))<<8) & asciiWindowSelect
}

// decodeWindow decodes every complete code point in the first 12 bytes
// of b into cps, with envelope validation fused in. It returns the number
// of code points, the source bytes consumed, and whether the window could
// be decoded; on ok == false the caller falls back to the one-sequence
// scalar path, which classifies the exact error. b must hold at least 16
// bytes and start at a sequence boundary.
func decodeWindow(b []byte, cps *[maskBits]rune) (n, consumed int, ok bool) {
	mask := endOfCodePointMask12(b)

	switch mask {
	case maskAllOneByte:
		if highBitMask12(b) != 0 {
			break // a lone lead byte sits somewhere in the window
		}
		for i := 0; i < maskBits; i++ {
			cps[i] = rune(b[i])
		}
		return maskBits, maskBits, true

	case maskAllTwoByte:
		for i, k := 0, 0; i < maskBits; i, k = i+2, k+1 {
			if b[i]&0xE0 != 0xC0 {
				return 0, 0, false
			}
			c := rune(b[i]&0x1F)<<6 | rune(b[i+1]&0x3F)
			if c < 0x80 {
				return 0, 0, false
			}
			cps[k] = c
		}
		return 6, maskBits, true

	case maskAllThreeByte:
		for i, k := 0, 0; i < maskBits; i, k = i+3, k+1 {
			if b[i]&0xF0 != 0xE0 {
				return 0, 0, false
			}
			c := rune(b[i]&0x0F)<<12 | rune(b[i+1]&0x3F)<<6 | rune(b[i+2]&0x3F)
			if c < 0x800 || (c >= surrogateMin && c <= surrogateMax) {
				return 0, 0, false
			}
			cps[k] = c
		}
		return 4, maskBits, true
	}

	e := &windowTable[mask]
	if e.n == 0 {
		return 0, 0, false
	}
	pos := 0
	for k := 0; k < int(e.n); k++ {
		switch e.lens[k] {
		case 1:
			c := b[pos]
			if c >= 0x80 {
				return 0, 0, false
			}
			cps[k] = rune(c)
		case 2:
			if b[pos]&0xE0 != 0xC0 {
				return 0, 0, false
			}
			c := rune(b[pos]&0x1F)<<6 | rune(b[pos+1]&0x3F)
			if c < 0x80 {
				return 0, 0, false
			}
			cps[k] = c
		case 3:
			if b[pos]&0xF0 != 0xE0 {
				return 0, 0, false
			}
			c := rune(b[pos]&0x0F)<<12 | rune(b[pos+1]&0x3F)<<6 | rune(b[pos+2]&0x3F)
			if c < 0x800 || (c >= surrogateMin && c <= surrogateMax) {
				return 0, 0, false
			}
			cps[k] = c
		case 4:
			if b[pos]&0xF8 != 0xF0 {
				return 0, 0, false
			}
			c := rune(b[pos]&0x07)<<18 | rune(b[pos+1]&0x3F)<<12 |
				rune(b[pos+2]&0x3F)<<6 | rune(b[pos+3]&0x3F)
			if c < 0x10000 || c > maxCodePoint {
				return 0, 0, false
			}
			cps[k] = c
		default:
			// More than 4 continuation bytes in a row.
			return 0, 0, false
		}
		pos += int(e.lens[k])
	}
	return int(e.n), int(e.consumed), true
}
