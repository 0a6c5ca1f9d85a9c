package codec

import (
	"encoding/binary"
	"strings"
)

// Encoding identifies one of the supported Unicode encodings.
type Encoding uint8

const (
	UTF8 Encoding = 1 << iota
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	}
	return "unknown"
}

// EncodingSet is a bitmask of candidate encodings.
type EncodingSet uint8

// Has reports whether e is in the set.
func (s EncodingSet) Has(e Encoding) bool { return s&EncodingSet(e) != 0 }

func (s EncodingSet) String() string {
	if s == 0 {
		return "none"
	}
	var names []string
	for _, e := range []Encoding{UTF8, UTF16LE, UTF16BE, UTF32LE, UTF32BE} {
		if s.Has(e) {
			names = append(names, e.String())
		}
	}
	return strings.Join(names, "|")
}

// Byte-order marks. UTF-32LE must be checked before UTF-16LE: FF FE 00 00
// is both a UTF-32LE BOM and a UTF-16LE BOM followed by a NUL.
var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF32LE = []byte{0xFF, 0xFE, 0x00, 0x00}
	bomUTF32BE = []byte{0x00, 0x00, 0xFE, 0xFF}
)

func hasPrefix(b, p []byte) bool {
	if len(b) < len(p) {
		return false
	}
	for i := range p {
		if b[i] != p[i] {
			return false
		}
	}
	return true
}

// bomEncoding returns the encoding a leading BOM announces, or 0.
func bomEncoding(b []byte) Encoding {
	switch {
	case hasPrefix(b, bomUTF32LE):
		return UTF32LE
	case hasPrefix(b, bomUTF32BE):
		return UTF32BE
	case hasPrefix(b, bomUTF16LE):
		return UTF16LE
	case hasPrefix(b, bomUTF16BE):
		return UTF16BE
	case hasPrefix(b, bomUTF8):
		return UTF8
	}
	return 0
}

// TrimBOM strips e's byte-order mark from the front of b, if present.
func TrimBOM(b []byte, e Encoding) []byte {
	var bom []byte
	switch e {
	case UTF8:
		bom = bomUTF8
	case UTF16LE:
		bom = bomUTF16LE
	case UTF16BE:
		bom = bomUTF16BE
	case UTF32LE:
		bom = bomUTF32LE
	case UTF32BE:
		bom = bomUTF32BE
	}
	if hasPrefix(b, bom) {
		return b[len(bom):]
	}
	return b
}

// validUTF32BE is only used by detection; big-endian UTF-32 has no
// conversion entry points.
func validUTF32BE(b []byte) bool {
	if len(b)%4 != 0 {
		return false
	}
	for i := 0; i+4 <= len(b); i += 4 {
		if !validUTF32Unit(binary.BigEndian.Uint32(b[i:])) {
			return false
		}
	}
	return true
}

// DetectEncodings guesses which encodings b could be in. A leading BOM is
// taken as authoritative for the candidate list; otherwise every encoding
// under whose rules b validates is a candidate. Best-effort only: callers
// must still validate under the encoding they pick.
func (im *Impl) DetectEncodings(b []byte) EncodingSet {
	if e := bomEncoding(b); e != 0 {
		return EncodingSet(e)
	}
	var s EncodingSet
	if im.ValidateUTF8(b) {
		s |= EncodingSet(UTF8)
	}
	if len(b)%2 == 0 {
		if im.ValidateUTF16LE(b) {
			s |= EncodingSet(UTF16LE)
		}
		if im.ValidateUTF16BE(b) {
			s |= EncodingSet(UTF16BE)
		}
	}
	if len(b)%4 == 0 {
		if im.ValidateUTF32(b) {
			s |= EncodingSet(UTF32LE)
		}
		if validUTF32BE(b) {
			s |= EncodingSet(UTF32BE)
		}
	}
	return s
}
