package codec

import (
	"encoding/binary"

	"github.com/biggeezerdevelopment/simdutf-go/internal/vector"
)

// utf16Order bundles the byte-order codec with the flag the vector
// kernels key on.
type utf16Order struct {
	bo  binary.ByteOrder
	big bool
}

var (
	utf16LE = utf16Order{binary.LittleEndian, false}
	utf16BE = utf16Order{binary.BigEndian, true}
)

const (
	highSurrogateMin = 0xD800
	lowSurrogateMin  = 0xDC00
)

// putUTF16 writes cp as one unit or a surrogate pair and returns the
// units written.
func putUTF16(dst []byte, cp rune, ord utf16Order) int {
	if cp < 0x10000 {
		ord.bo.PutUint16(dst, uint16(cp))
		return 1
	}
	v := cp - 0x10000
	ord.bo.PutUint16(dst, uint16(highSurrogateMin+v>>10))
	ord.bo.PutUint16(dst[2:], uint16(lowSurrogateMin+v&0x3FF))
	return 2
}

func (im *Impl) validateUTF16(b []byte, ord utf16Order) Result {
	n := len(b) / 2
	if len(b)%2 != 0 {
		return failure(TruncatedSequence, n)
	}
	pos := 0
	for pos < n {
		pos += im.k.utf16Run(b[2*pos:], ord.big) / 2
		if pos >= n {
			break
		}
		u := ord.bo.Uint16(b[2*pos:])
		if u < surrogateMin || u > surrogateMax {
			pos++
			continue
		}
		if u >= lowSurrogateMin {
			// Low surrogate with no preceding high surrogate.
			return failure(LoneSurrogate, pos)
		}
		if pos+1 >= n {
			return failure(LoneSurrogate, pos)
		}
		if u2 := ord.bo.Uint16(b[2*pos+2:]); u2 < lowSurrogateMin || u2 > surrogateMax {
			return failure(LoneSurrogate, pos)
		}
		pos += 2
	}
	return success(n)
}

// ValidateUTF16LE reports whether b is well-formed UTF-16LE.
func (im *Impl) ValidateUTF16LE(b []byte) bool { return im.validateUTF16(b, utf16LE).Ok() }

// ValidateUTF16BE reports whether b is well-formed UTF-16BE.
func (im *Impl) ValidateUTF16BE(b []byte) bool { return im.validateUTF16(b, utf16BE).Ok() }

// ValidateUTF16LEWithErrors validates b, reporting unit offsets.
func (im *Impl) ValidateUTF16LEWithErrors(b []byte) Result { return im.validateUTF16(b, utf16LE) }

// ValidateUTF16BEWithErrors validates b, reporting unit offsets.
func (im *Impl) ValidateUTF16BEWithErrors(b []byte) Result { return im.validateUTF16(b, utf16BE) }

// emitASCIIFrom16 narrows an all-ASCII UTF-16 run to bytes, 8 units per
// step. len(src) must be a multiple of 16.
func emitASCIIFrom16(src, dst []byte, big bool) int {
	out := 0
	for i := 0; i+16 <= len(src); i += 16 {
		lo := binary.LittleEndian.Uint64(src[i:])
		hi := binary.LittleEndian.Uint64(src[i+8:])
		if big {
			lo >>= 8
			hi >>= 8
		}
		binary.LittleEndian.PutUint64(dst[out:], vector.Narrow16To8(lo, hi))
		out += 8
	}
	return out
}

// surrogatePair combines a high and low surrogate into a scalar value.
func surrogatePair(hi, lo uint16) rune {
	return 0x10000 + rune(hi-highSurrogateMin)<<10 + rune(lo-lowSurrogateMin)
}

func (im *Impl) convertUTF16ToUTF8(src, dst []byte, ord utf16Order, validate bool) Result {
	n := len(src) / 2
	if validate && len(src)%2 != 0 {
		return failure(TruncatedSequence, n)
	}
	pos, out := 0, 0
	for pos < n {
		if r := im.k.utf16ASCIIRun(src[2*pos:], ord.big); r > 0 {
			out += emitASCIIFrom16(src[2*pos:2*pos+r], dst[out:], ord.big)
			pos += r / 2
			continue
		}
		u := ord.bo.Uint16(src[2*pos:])
		switch {
		case u < 0x80:
			dst[out] = byte(u)
			out++
			pos++
		case u < 0x800:
			dst[out] = 0xC0 | byte(u>>6)
			dst[out+1] = 0x80 | byte(u)&0x3F
			out += 2
			pos++
		case u >= surrogateMin && u <= surrogateMax:
			if u >= lowSurrogateMin || pos+1 >= n {
				if validate {
					return failure(LoneSurrogate, pos)
				}
				pos++
				continue
			}
			u2 := ord.bo.Uint16(src[2*pos+2:])
			if u2 < lowSurrogateMin || u2 > surrogateMax {
				if validate {
					return failure(LoneSurrogate, pos)
				}
				pos++
				continue
			}
			out += putUTF8(dst[out:], surrogatePair(u, u2))
			pos += 2
		default:
			dst[out] = 0xE0 | byte(u>>12)
			dst[out+1] = 0x80 | byte(u>>6)&0x3F
			dst[out+2] = 0x80 | byte(u)&0x3F
			out += 3
			pos++
		}
	}
	return success(out)
}

func (im *Impl) convertUTF16ToUTF32(src, dst []byte, ord utf16Order, validate bool) Result {
	n := len(src) / 2
	if validate && len(src)%2 != 0 {
		return failure(TruncatedSequence, n)
	}
	pos, out := 0, 0
	for pos < n {
		if r := im.k.utf16Run(src[2*pos:], ord.big); r > 0 {
			for i := 0; i < r; i += 2 {
				binary.LittleEndian.PutUint32(dst[4*out:], uint32(ord.bo.Uint16(src[2*pos+i:])))
				out++
			}
			pos += r / 2
			continue
		}
		u := ord.bo.Uint16(src[2*pos:])
		if u < surrogateMin || u > surrogateMax {
			binary.LittleEndian.PutUint32(dst[4*out:], uint32(u))
			out++
			pos++
			continue
		}
		if u >= lowSurrogateMin || pos+1 >= n {
			if validate {
				return failure(LoneSurrogate, pos)
			}
			pos++
			continue
		}
		u2 := ord.bo.Uint16(src[2*pos+2:])
		if u2 < lowSurrogateMin || u2 > surrogateMax {
			if validate {
				return failure(LoneSurrogate, pos)
			}
			pos++
			continue
		}
		binary.LittleEndian.PutUint32(dst[4*out:], uint32(surrogatePair(u, u2)))
		out++
		pos += 2
	}
	return success(out)
}

// ConvertUTF16LEToUTF8 transcodes UTF-16LE to UTF-8, validating src.
func (im *Impl) ConvertUTF16LEToUTF8(src, dst []byte) Result {
	return im.convertUTF16ToUTF8(src, dst, utf16LE, true)
}

// ConvertUTF16BEToUTF8 transcodes UTF-16BE to UTF-8, validating src.
func (im *Impl) ConvertUTF16BEToUTF8(src, dst []byte) Result {
	return im.convertUTF16ToUTF8(src, dst, utf16BE, true)
}

// ConvertUTF16LEToUTF32 transcodes UTF-16LE to UTF-32, validating src.
func (im *Impl) ConvertUTF16LEToUTF32(src, dst []byte) Result {
	return im.convertUTF16ToUTF32(src, dst, utf16LE, true)
}

// ConvertUTF16BEToUTF32 transcodes UTF-16BE to UTF-32, validating src.
func (im *Impl) ConvertUTF16BEToUTF32(src, dst []byte) Result {
	return im.convertUTF16ToUTF32(src, dst, utf16BE, true)
}

// ConvertValidUTF16LEToUTF8 transcodes already-validated UTF-16LE.
func (im *Impl) ConvertValidUTF16LEToUTF8(src, dst []byte) Result {
	return im.convertUTF16ToUTF8(src, dst, utf16LE, false)
}

// ConvertValidUTF16BEToUTF8 transcodes already-validated UTF-16BE.
func (im *Impl) ConvertValidUTF16BEToUTF8(src, dst []byte) Result {
	return im.convertUTF16ToUTF8(src, dst, utf16BE, false)
}

// ConvertValidUTF16LEToUTF32 transcodes already-validated UTF-16LE.
func (im *Impl) ConvertValidUTF16LEToUTF32(src, dst []byte) Result {
	return im.convertUTF16ToUTF32(src, dst, utf16LE, false)
}

// ConvertValidUTF16BEToUTF32 transcodes already-validated UTF-16BE.
func (im *Impl) ConvertValidUTF16BEToUTF32(src, dst []byte) Result {
	return im.convertUTF16ToUTF32(src, dst, utf16BE, false)
}

// ChangeEndiannessUTF16 swaps the byte order of every 16-bit unit without
// reinterpreting values. src and dst may not overlap.
func (im *Impl) ChangeEndiannessUTF16(src, dst []byte) Result {
	n := len(src) / 2
	if len(src)%2 != 0 {
		return failure(TruncatedSequence, n)
	}
	pos := 0
	if im.k.width > 0 {
		for len(src)-pos >= vector.Width128 {
			vector.LoadVec128(src[pos:]).Swap16().Store(dst[pos:])
			pos += vector.Width128
		}
	}
	for pos < len(src) {
		dst[pos] = src[pos+1]
		dst[pos+1] = src[pos]
		pos += 2
	}
	return success(n)
}

func (im *Impl) countUTF16(b []byte, ord utf16Order) int {
	count := 0
	for i := 0; i+2 <= len(b); i += 2 {
		if u := ord.bo.Uint16(b[i:]); u&0xFC00 != lowSurrogateMin {
			count++
		}
	}
	return count
}

// CountUTF16LE returns the number of code points in well-formed UTF-16LE.
func (im *Impl) CountUTF16LE(b []byte) int { return im.countUTF16(b, utf16LE) }

// CountUTF16BE returns the number of code points in well-formed UTF-16BE.
func (im *Impl) CountUTF16BE(b []byte) int { return im.countUTF16(b, utf16BE) }

func (im *Impl) utf8LengthFromUTF16(b []byte, ord utf16Order) int {
	bytes := 0
	for i := 0; i+2 <= len(b); i += 2 {
		u := ord.bo.Uint16(b[i:])
		switch {
		case u < 0x80:
			bytes++
		case u < 0x800:
			bytes += 2
		case u >= highSurrogateMin && u < lowSurrogateMin:
			// The pair's four bytes are charged to the high surrogate.
			bytes += 4
		case u >= lowSurrogateMin && u <= surrogateMax:
			// Charged to the preceding high surrogate.
		default:
			bytes += 3
		}
	}
	return bytes
}

// UTF8LengthFromUTF16LE returns the UTF-8 byte count for well-formed
// UTF-16LE input.
func (im *Impl) UTF8LengthFromUTF16LE(b []byte) int { return im.utf8LengthFromUTF16(b, utf16LE) }

// UTF8LengthFromUTF16BE returns the UTF-8 byte count for well-formed
// UTF-16BE input.
func (im *Impl) UTF8LengthFromUTF16BE(b []byte) int { return im.utf8LengthFromUTF16(b, utf16BE) }

// UTF32LengthFromUTF16LE returns the UTF-32 unit count, which equals the
// code point count.
func (im *Impl) UTF32LengthFromUTF16LE(b []byte) int { return im.countUTF16(b, utf16LE) }

// UTF32LengthFromUTF16BE returns the UTF-32 unit count, which equals the
// code point count.
func (im *Impl) UTF32LengthFromUTF16BE(b []byte) int { return im.countUTF16(b, utf16BE) }
