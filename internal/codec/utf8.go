package codec

import (
	"encoding/binary"
	"math/bits"

	"github.com/biggeezerdevelopment/simdutf-go/internal/vector"
)

const (
	maxCodePoint = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// decodeSequence decodes the UTF-8 sequence starting at b[0] and
// classifies the first violation it meets. Structural checks (lead class,
// continuation markers, truncation) run before range checks, so a
// truncated overlong prefix reports TruncatedSequence, matching the
// left-to-right first-error policy.
func decodeSequence(b []byte) (cp rune, size int, kind ErrorKind) {
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return rune(c0), 1, NoError

	case c0 < 0xC0:
		// A continuation byte cannot start a sequence.
		return 0, 0, InvalidLeadUnit

	case c0 < 0xE0:
		if len(b) < 2 {
			return 0, 0, TruncatedSequence
		}
		if b[1]&0xC0 != 0x80 {
			return 0, 0, InvalidContinuationUnit
		}
		cp = rune(c0&0x1F)<<6 | rune(b[1]&0x3F)
		if cp < 0x80 {
			return 0, 0, OverlongOrOutOfRange
		}
		return cp, 2, NoError

	case c0 < 0xF0:
		for i := 1; i < 3; i++ {
			if i >= len(b) {
				return 0, 0, TruncatedSequence
			}
			if b[i]&0xC0 != 0x80 {
				return 0, 0, InvalidContinuationUnit
			}
		}
		cp = rune(c0&0x0F)<<12 | rune(b[1]&0x3F)<<6 | rune(b[2]&0x3F)
		if cp < 0x800 || (cp >= surrogateMin && cp <= surrogateMax) {
			return 0, 0, OverlongOrOutOfRange
		}
		return cp, 3, NoError

	case c0 < 0xF8:
		for i := 1; i < 4; i++ {
			if i >= len(b) {
				return 0, 0, TruncatedSequence
			}
			if b[i]&0xC0 != 0x80 {
				return 0, 0, InvalidContinuationUnit
			}
		}
		cp = rune(c0&0x07)<<18 | rune(b[1]&0x3F)<<12 | rune(b[2]&0x3F)<<6 | rune(b[3]&0x3F)
		if cp < 0x10000 || cp > maxCodePoint {
			return 0, 0, OverlongOrOutOfRange
		}
		return cp, 4, NoError
	}
	// 0xF8..0xFF cannot start any sequence.
	return 0, 0, InvalidLeadUnit
}

// decodeSequenceFast decodes one sequence without validation, for the
// convert-valid paths. It never reads past b; on malformed input the
// result is unspecified but size is always in [1, len(b)].
func decodeSequenceFast(b []byte) (cp rune, size int) {
	c0 := b[0]
	switch {
	case c0 < 0x80:
		return rune(c0), 1
	case c0 < 0xE0:
		size = 2
	case c0 < 0xF0:
		size = 3
	default:
		size = 4
	}
	if size > len(b) {
		size = len(b)
	}
	cp = rune(c0 & (0x7F >> uint(size)))
	for i := 1; i < size; i++ {
		cp = cp<<6 | rune(b[i]&0x3F)
	}
	return cp, size
}

// putUTF8 writes cp's minimal-length UTF-8 form and returns the bytes
// written. cp must be a valid scalar value.
func putUTF8(dst []byte, cp rune) int {
	switch {
	case cp < 0x80:
		dst[0] = byte(cp)
		return 1
	case cp < 0x800:
		dst[0] = 0xC0 | byte(cp>>6)
		dst[1] = 0x80 | byte(cp)&0x3F
		return 2
	case cp < 0x10000:
		dst[0] = 0xE0 | byte(cp>>12)
		dst[1] = 0x80 | byte(cp>>6)&0x3F
		dst[2] = 0x80 | byte(cp)&0x3F
		return 3
	default:
		dst[0] = 0xF0 | byte(cp>>18)
		dst[1] = 0x80 | byte(cp>>12)&0x3F
		dst[2] = 0x80 | byte(cp>>6)&0x3F
		dst[3] = 0x80 | byte(cp)&0x3F
		return 4
	}
}

// ValidateUTF8 reports whether b is well-formed UTF-8.
func (im *Impl) ValidateUTF8(b []byte) bool {
	return im.ValidateUTF8WithErrors(b).Ok()
}

// ValidateUTF8WithErrors validates b and reports the byte offset of the
// first invalid sequence.
func (im *Impl) ValidateUTF8WithErrors(b []byte) Result {
	pos, n := 0, len(b)
	for pos < n {
		pos += im.k.asciiRun(b[pos:])
		if pos >= n {
			break
		}
		if b[pos] < 0x80 {
			pos++
			continue
		}
		_, size, kind := decodeSequence(b[pos:])
		if kind != NoError {
			return failure(kind, pos)
		}
		pos += size
	}
	return success(n)
}

// emitASCII16 widens an all-ASCII run to 16-bit units, 8 bytes per step.
// len(src) must be a multiple of 8. ASCII units fit in the low byte, so
// the big-endian layout is a plain shift within each lane.
func emitASCII16(src, dst []byte, big bool) int {
	for i := 0; i+8 <= len(src); i += 8 {
		lo, hi := vector.Widen8To16(binary.LittleEndian.Uint64(src[i:]))
		if big {
			lo <<= 8
			hi <<= 8
		}
		binary.LittleEndian.PutUint64(dst[2*i:], lo)
		binary.LittleEndian.PutUint64(dst[2*i+8:], hi)
	}
	return len(src)
}

func (im *Impl) convertUTF8ToUTF16(src, dst []byte, ord utf16Order, validate bool) Result {
	var cps [maskBits]rune
	pos, out, n := 0, 0, len(src)
	for pos < n {
		if r := im.k.asciiRun(src[pos:]); r > 0 {
			out += emitASCII16(src[pos:pos+r], dst[2*out:], ord.big)
			pos += r
			continue
		}
		if im.k.width > 0 && n-pos >= windowBytes {
			if ncp, consumed, ok := decodeWindow(src[pos:], &cps); ok {
				for _, cp := range cps[:ncp] {
					out += putUTF16(dst[2*out:], cp, ord)
				}
				pos += consumed
				continue
			}
		}
		if validate {
			cp, size, kind := decodeSequence(src[pos:])
			if kind != NoError {
				return failure(kind, pos)
			}
			out += putUTF16(dst[2*out:], cp, ord)
			pos += size
		} else {
			cp, size := decodeSequenceFast(src[pos:])
			out += putUTF16(dst[2*out:], cp&maxCodePoint, ord)
			pos += size
		}
	}
	return success(out)
}

func (im *Impl) convertUTF8ToUTF32(src, dst []byte, validate bool) Result {
	var cps [maskBits]rune
	pos, out, n := 0, 0, len(src)
	for pos < n {
		if r := im.k.asciiRun(src[pos:]); r > 0 {
			for _, c := range src[pos : pos+r] {
				binary.LittleEndian.PutUint32(dst[4*out:], uint32(c))
				out++
			}
			pos += r
			continue
		}
		if im.k.width > 0 && n-pos >= windowBytes {
			if ncp, consumed, ok := decodeWindow(src[pos:], &cps); ok {
				for _, cp := range cps[:ncp] {
					binary.LittleEndian.PutUint32(dst[4*out:], uint32(cp))
					out++
				}
				pos += consumed
				continue
			}
		}
		if validate {
			cp, size, kind := decodeSequence(src[pos:])
			if kind != NoError {
				return failure(kind, pos)
			}
			binary.LittleEndian.PutUint32(dst[4*out:], uint32(cp))
			out++
			pos += size
		} else {
			cp, size := decodeSequenceFast(src[pos:])
			binary.LittleEndian.PutUint32(dst[4*out:], uint32(cp&maxCodePoint))
			out++
			pos += size
		}
	}
	return success(out)
}

// ConvertUTF8ToUTF16LE transcodes UTF-8 to UTF-16LE, validating src.
func (im *Impl) ConvertUTF8ToUTF16LE(src, dst []byte) Result {
	return im.convertUTF8ToUTF16(src, dst, utf16LE, true)
}

// ConvertUTF8ToUTF16BE transcodes UTF-8 to UTF-16BE, validating src.
func (im *Impl) ConvertUTF8ToUTF16BE(src, dst []byte) Result {
	return im.convertUTF8ToUTF16(src, dst, utf16BE, true)
}

// ConvertUTF8ToUTF32 transcodes UTF-8 to UTF-32, validating src.
func (im *Impl) ConvertUTF8ToUTF32(src, dst []byte) Result {
	return im.convertUTF8ToUTF32(src, dst, true)
}

// ConvertValidUTF8ToUTF16LE transcodes already-validated UTF-8.
func (im *Impl) ConvertValidUTF8ToUTF16LE(src, dst []byte) Result {
	return im.convertUTF8ToUTF16(src, dst, utf16LE, false)
}

// ConvertValidUTF8ToUTF16BE transcodes already-validated UTF-8.
func (im *Impl) ConvertValidUTF8ToUTF16BE(src, dst []byte) Result {
	return im.convertUTF8ToUTF16(src, dst, utf16BE, false)
}

// ConvertValidUTF8ToUTF32 transcodes already-validated UTF-8.
func (im *Impl) ConvertValidUTF8ToUTF32(src, dst []byte) Result {
	return im.convertUTF8ToUTF32(src, dst, false)
}

// CountUTF8 returns the number of code points in well-formed UTF-8: the
// number of non-continuation bytes, counted with the same byte
// classification the batch decoder's masks are built from.
func (im *Impl) CountUTF8(b []byte) int {
	count, i := 0, 0
	if im.k.width > 0 {
		for ; i+8 <= len(b); i += 8 {
			w := binary.LittleEndian.Uint64(b[i:])
			count += 8 - bits.OnesCount64(contMaskWord(w))
		}
	}
	for ; i < len(b); i++ {
		if b[i]&0xC0 != 0x80 {
			count++
		}
	}
	return count
}

// fourByteLeadCountWord counts bytes with high nibble 0xF, i.e. leads of
// 4-byte sequences. Shift contamination across bytes stays above bit 0,
// which the final mask discards.
func fourByteLeadCountWord(w uint64) int {
	x := (w >> 4) & 0x0F0F0F0F0F0F0F0F
	y := x & (x >> 1) & (x >> 2) & (x >> 3) & 0x0101010101010101
	return bits.OnesCount64(y)
}

// UTF16LengthFromUTF8 returns the number of 16-bit units the UTF-16 form
// of well-formed UTF-8 b requires: one per code point plus one extra per
// 4-byte sequence (surrogate pair).
func (im *Impl) UTF16LengthFromUTF8(b []byte) int {
	units, i := 0, 0
	if im.k.width > 0 {
		for ; i+8 <= len(b); i += 8 {
			w := binary.LittleEndian.Uint64(b[i:])
			units += 8 - bits.OnesCount64(contMaskWord(w)) + fourByteLeadCountWord(w)
		}
	}
	for ; i < len(b); i++ {
		if b[i]&0xC0 != 0x80 {
			units++
		}
		if b[i] >= 0xF0 {
			units++
		}
	}
	return units
}

// UTF32LengthFromUTF8 returns the number of 32-bit units required, which
// equals the code point count.
func (im *Impl) UTF32LengthFromUTF8(b []byte) int {
	return im.CountUTF8(b)
}
