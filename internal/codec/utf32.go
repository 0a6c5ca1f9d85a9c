package codec

import (
	"encoding/binary"
)

func validUTF32Unit(u uint32) bool {
	return u <= maxCodePoint && (u < surrogateMin || u > surrogateMax)
}

// ValidateUTF32 reports whether b is well-formed little-endian UTF-32.
func (im *Impl) ValidateUTF32(b []byte) bool {
	return im.ValidateUTF32WithErrors(b).Ok()
}

// ValidateUTF32WithErrors validates b, reporting 32-bit unit offsets.
func (im *Impl) ValidateUTF32WithErrors(b []byte) Result {
	n := len(b) / 4
	if len(b)%4 != 0 {
		return failure(TruncatedSequence, n)
	}
	pos := 0
	for pos < n {
		pos += im.k.utf32Run(b[4*pos:]) / 4
		if pos >= n {
			break
		}
		if !validUTF32Unit(binary.LittleEndian.Uint32(b[4*pos:])) {
			return failure(OverlongOrOutOfRange, pos)
		}
		pos++
	}
	return success(n)
}

func (im *Impl) convertUTF32ToUTF8(src, dst []byte, validate bool) Result {
	n := len(src) / 4
	if validate && len(src)%4 != 0 {
		return failure(TruncatedSequence, n)
	}
	out := 0
	for pos := 0; pos < n; pos++ {
		u := binary.LittleEndian.Uint32(src[4*pos:])
		if !validUTF32Unit(u) {
			if validate {
				return failure(OverlongOrOutOfRange, pos)
			}
			u &= maxCodePoint
		}
		out += putUTF8(dst[out:], rune(u))
	}
	return success(out)
}

func (im *Impl) convertUTF32ToUTF16(src, dst []byte, ord utf16Order, validate bool) Result {
	n := len(src) / 4
	if validate && len(src)%4 != 0 {
		return failure(TruncatedSequence, n)
	}
	out := 0
	for pos := 0; pos < n; pos++ {
		u := binary.LittleEndian.Uint32(src[4*pos:])
		if !validUTF32Unit(u) {
			if validate {
				return failure(OverlongOrOutOfRange, pos)
			}
			u &= maxCodePoint
		}
		out += putUTF16(dst[2*out:], rune(u), ord)
	}
	return success(out)
}

// ConvertUTF32ToUTF8 transcodes UTF-32 to UTF-8, validating src.
func (im *Impl) ConvertUTF32ToUTF8(src, dst []byte) Result {
	return im.convertUTF32ToUTF8(src, dst, true)
}

// ConvertUTF32ToUTF16LE transcodes UTF-32 to UTF-16LE, validating src.
func (im *Impl) ConvertUTF32ToUTF16LE(src, dst []byte) Result {
	return im.convertUTF32ToUTF16(src, dst, utf16LE, true)
}

// ConvertUTF32ToUTF16BE transcodes UTF-32 to UTF-16BE, validating src.
func (im *Impl) ConvertUTF32ToUTF16BE(src, dst []byte) Result {
	return im.convertUTF32ToUTF16(src, dst, utf16BE, true)
}

// ConvertValidUTF32ToUTF8 transcodes already-validated UTF-32.
func (im *Impl) ConvertValidUTF32ToUTF8(src, dst []byte) Result {
	return im.convertUTF32ToUTF8(src, dst, false)
}

// ConvertValidUTF32ToUTF16LE transcodes already-validated UTF-32.
func (im *Impl) ConvertValidUTF32ToUTF16LE(src, dst []byte) Result {
	return im.convertUTF32ToUTF16(src, dst, utf16LE, false)
}

// ConvertValidUTF32ToUTF16BE transcodes already-validated UTF-32.
func (im *Impl) ConvertValidUTF32ToUTF16BE(src, dst []byte) Result {
	return im.convertUTF32ToUTF16(src, dst, utf16BE, false)
}

// CountUTF32 returns the number of code points: one per 32-bit unit.
func (im *Impl) CountUTF32(b []byte) int { return len(b) / 4 }

// UTF8LengthFromUTF32 returns the UTF-8 byte count for well-formed
// UTF-32 input.
func (im *Impl) UTF8LengthFromUTF32(b []byte) int {
	bytes := 0
	for i := 0; i+4 <= len(b); i += 4 {
		switch u := binary.LittleEndian.Uint32(b[i:]); {
		case u < 0x80:
			bytes++
		case u < 0x800:
			bytes += 2
		case u < 0x10000:
			bytes += 3
		default:
			bytes += 4
		}
	}
	return bytes
}

// UTF16LengthFromUTF32 returns the UTF-16 unit count for well-formed
// UTF-32 input: one unit below 0x10000, two for a surrogate pair.
func (im *Impl) UTF16LengthFromUTF32(b []byte) int {
	units := 0
	for i := 0; i+4 <= len(b); i += 4 {
		units++
		if binary.LittleEndian.Uint32(b[i:]) >= 0x10000 {
			units++
		}
	}
	return units
}
