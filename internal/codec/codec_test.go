package codec

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

// randomValidUTF8 builds a well-formed buffer mixing all sequence
// lengths, biased toward ASCII the way real text is.
func randomValidUTF8(rng *rand.Rand, nRunes int) []byte {
	var sb strings.Builder
	for i := 0; i < nRunes; i++ {
		var r rune
		switch rng.Intn(10) {
		case 0:
			r = rune(0x80 + rng.Intn(0x800-0x80))
		case 1:
			r = rune(0x800 + rng.Intn(0xD800-0x800))
		case 2:
			r = rune(0xE000 + rng.Intn(0x10000-0xE000))
		case 3:
			r = rune(0x10000 + rng.Intn(0x110000-0x10000))
		default:
			r = rune(rng.Intn(0x80))
		}
		sb.WriteRune(r)
	}
	return []byte(sb.String())
}

func TestDecodeSequence(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		cp   rune
		size int
		kind ErrorKind
	}{
		{"ascii", []byte{0x41}, 'A', 1, NoError},
		{"two byte", []byte{0xC3, 0xA9}, 0xE9, 2, NoError},
		{"three byte", []byte{0xE2, 0x82, 0xAC}, 0x20AC, 3, NoError},
		{"four byte", []byte{0xF0, 0x9F, 0x98, 0x80}, 0x1F600, 4, NoError},
		{"max code point", []byte{0xF4, 0x8F, 0xBF, 0xBF}, 0x10FFFF, 4, NoError},
		{"continuation as lead", []byte{0x80}, 0, 0, InvalidLeadUnit},
		{"overlong nul", []byte{0xC0, 0x80}, 0, 0, OverlongOrOutOfRange},
		{"overlong three byte", []byte{0xE0, 0x80, 0x80}, 0, 0, OverlongOrOutOfRange},
		{"overlong four byte", []byte{0xF0, 0x80, 0x80, 0x80}, 0, 0, OverlongOrOutOfRange},
		{"truncated two byte", []byte{0xC3}, 0, 0, TruncatedSequence},
		{"truncated three byte", []byte{0xE0, 0x80}, 0, 0, TruncatedSequence},
		{"truncated four byte", []byte{0xF0, 0x9F, 0x98}, 0, 0, TruncatedSequence},
		{"bad continuation", []byte{0xE2, 0x41, 0xAC}, 0, 0, InvalidContinuationUnit},
		{"surrogate", []byte{0xED, 0xA0, 0x80}, 0, 0, OverlongOrOutOfRange},
		{"beyond max", []byte{0xF4, 0x90, 0x80, 0x80}, 0, 0, OverlongOrOutOfRange},
		{"invalid lead 0xF8", []byte{0xF8, 0x80, 0x80, 0x80, 0x80}, 0, 0, InvalidLeadUnit},
		{"invalid lead 0xFF", []byte{0xFF}, 0, 0, InvalidLeadUnit},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cp, size, kind := decodeSequence(tc.in)
			if kind != tc.kind {
				t.Fatalf("kind = %v, want %v", kind, tc.kind)
			}
			if kind == NoError && (cp != tc.cp || size != tc.size) {
				t.Fatalf("decoded (%#x, %d), want (%#x, %d)", cp, size, tc.cp, tc.size)
			}
		})
	}
}

func TestDecodeSequenceMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for iter := 0; iter < 500; iter++ {
		b := randomValidUTF8(rng, 32)
		pos := 0
		for pos < len(b) {
			wantCP, wantSize := utf8.DecodeRune(b[pos:])
			cp, size, kind := decodeSequence(b[pos:])
			if kind != NoError {
				t.Fatalf("valid input rejected at %d: %v (% x)", pos, kind, b)
			}
			if cp != wantCP || size != wantSize {
				t.Fatalf("at %d decoded (%#x, %d), stdlib (%#x, %d)", pos, cp, size, wantCP, wantSize)
			}
			pos += size
		}
	}
}

func TestValidateUTF8FirstError(t *testing.T) {
	tests := []struct {
		name   string
		in     []byte
		kind   ErrorKind
		offset int
	}{
		{"overlong at 0", []byte{0xC0, 0x80}, OverlongOrOutOfRange, 0},
		{"truncated at 0", []byte{0xE0, 0x80}, TruncatedSequence, 0},
		{"error after ascii", append([]byte("hello"), 0xFF), InvalidLeadUnit, 5},
		{"first of two errors", []byte{0x41, 0x80, 0x42, 0xFF}, InvalidLeadUnit, 1},
		{"error after long ascii run", append([]byte(strings.Repeat("x", 100)), 0x80), InvalidLeadUnit, 100},
		{"truncated at end of valid text", append([]byte("héllo"), 0xE2, 0x82), TruncatedSequence, 6},
	}
	for _, im := range All() {
		for _, tc := range tests {
			t.Run(im.Name()+"/"+tc.name, func(t *testing.T) {
				r := im.ValidateUTF8WithErrors(tc.in)
				if r.Ok() {
					t.Fatalf("accepted invalid input")
				}
				if r.Err != tc.kind || r.Offset != tc.offset {
					t.Fatalf("got (%v, %d), want (%v, %d)", r.Err, r.Offset, tc.kind, tc.offset)
				}
				if im.ValidateUTF8(tc.in) {
					t.Fatalf("fast form disagrees with error form")
				}
			})
		}
	}
}

func TestValidateUTF8AgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, im := range All() {
		t.Run(im.Name(), func(t *testing.T) {
			for iter := 0; iter < 300; iter++ {
				b := randomValidUTF8(rng, 200)
				// Mutate half the iterations to exercise rejection.
				if iter%2 == 1 && len(b) > 0 {
					b[rng.Intn(len(b))] = byte(0x80 + rng.Intn(0x80))
				}
				if got, want := im.ValidateUTF8(b), utf8.Valid(b); got != want {
					t.Fatalf("ValidateUTF8 = %v, stdlib = %v for % x", got, want, b)
				}
			}
		})
	}
}

func TestValidateUTF16(t *testing.T) {
	tests := []struct {
		name   string
		units  []uint16
		kind   ErrorKind
		offset int
	}{
		{"empty", nil, NoError, 0},
		{"bmp", []uint16{0x41, 0x20AC, 0xD7FF, 0xE000}, NoError, 0},
		{"pair", []uint16{0xD83D, 0xDE00}, NoError, 0},
		{"lone high at end", []uint16{0xD800}, LoneSurrogate, 0},
		{"lone high mid", []uint16{0x41, 0xD800, 0x42}, LoneSurrogate, 1},
		{"lone low", []uint16{0xDC00}, LoneSurrogate, 0},
		{"low before high", []uint16{0xDC00, 0xD800}, LoneSurrogate, 0},
		{"high high", []uint16{0xD800, 0xD801, 0xDC00}, LoneSurrogate, 0},
	}
	for _, im := range All() {
		for _, tc := range tests {
			t.Run(im.Name()+"/"+tc.name, func(t *testing.T) {
				le := unitsLE(tc.units)
				be := unitsBE(tc.units)
				for _, c := range []struct {
					r  Result
					ok bool
				}{
					{im.ValidateUTF16LEWithErrors(le), im.ValidateUTF16LE(le)},
					{im.ValidateUTF16BEWithErrors(be), im.ValidateUTF16BE(be)},
				} {
					if c.r.Err != tc.kind {
						t.Fatalf("kind = %v, want %v", c.r.Err, tc.kind)
					}
					if tc.kind != NoError && c.r.Offset != tc.offset {
						t.Fatalf("offset = %d, want %d", c.r.Offset, tc.offset)
					}
					if c.ok != (tc.kind == NoError) {
						t.Fatalf("fast form disagrees with error form")
					}
				}
			})
		}
	}
}

func TestValidateUTF16OddLength(t *testing.T) {
	im := Active()
	r := im.ValidateUTF16LEWithErrors([]byte{0x41, 0x00, 0x42})
	if r.Err != TruncatedSequence || r.Offset != 1 {
		t.Fatalf("odd length: got (%v, %d), want (%v, 1)", r.Err, r.Offset, TruncatedSequence)
	}
}

func TestValidateUTF32TruncatedLength(t *testing.T) {
	im := Active()
	r := im.ValidateUTF32WithErrors([]byte{0x41, 0x00, 0x00, 0x00, 0x42})
	if r.Err != TruncatedSequence || r.Offset != 1 {
		t.Fatalf("trailing bytes: got (%v, %d), want (%v, 1)", r.Err, r.Offset, TruncatedSequence)
	}
}

func TestValidateUTF32(t *testing.T) {
	tests := []struct {
		name   string
		units  []uint32
		kind   ErrorKind
		offset int
	}{
		{"valid", []uint32{0x41, 0x20AC, 0x1F600, 0x10FFFF}, NoError, 0},
		{"surrogate", []uint32{0x41, 0xD800}, OverlongOrOutOfRange, 1},
		{"beyond max", []uint32{0x110000}, OverlongOrOutOfRange, 0},
		{"huge", []uint32{0xFFFFFFFF}, OverlongOrOutOfRange, 0},
	}
	for _, im := range All() {
		for _, tc := range tests {
			t.Run(im.Name()+"/"+tc.name, func(t *testing.T) {
				b := units32(tc.units)
				r := im.ValidateUTF32WithErrors(b)
				if r.Err != tc.kind {
					t.Fatalf("kind = %v, want %v", r.Err, tc.kind)
				}
				if tc.kind != NoError && r.Offset != tc.offset {
					t.Fatalf("offset = %d, want %d", r.Offset, tc.offset)
				}
			})
		}
	}
}

func TestDetectEncodings(t *testing.T) {
	im := Active()
	tests := []struct {
		name string
		in   []byte
		want Encoding // must be present
	}{
		{"utf8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, UTF8},
		{"utf16le bom", []byte{0xFF, 0xFE, 0x41, 0x00}, UTF16LE},
		{"utf16be bom", []byte{0xFE, 0xFF, 0x00, 0x41}, UTF16BE},
		{"utf32le bom", []byte{0xFF, 0xFE, 0x00, 0x00, 0x41, 0x00, 0x00, 0x00}, UTF32LE},
		{"utf32be bom", []byte{0x00, 0x00, 0xFE, 0xFF, 0x00, 0x00, 0x00, 0x41}, UTF32BE},
		{"plain ascii", []byte("plain text"), UTF8},
		{"utf32 text", units32([]uint32{0x1F600, 0x41}), UTF32LE},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := im.DetectEncodings(tc.in)
			if !s.Has(tc.want) {
				t.Fatalf("DetectEncodings(% x) = %v, missing %v", tc.in, s, tc.want)
			}
		})
	}

	if s := im.DetectEncodings([]byte{0xFF, 0xFF, 0xFF}); s != 0 {
		t.Fatalf("garbage detected as %v", s)
	}
}

func TestTrimBOM(t *testing.T) {
	b := []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}
	if got := string(TrimBOM(b, UTF8)); got != "hi" {
		t.Fatalf("TrimBOM = %q", got)
	}
	// No BOM, nothing trimmed.
	if got := string(TrimBOM([]byte("hi"), UTF8)); got != "hi" {
		t.Fatalf("TrimBOM without BOM = %q", got)
	}
	// Wrong encoding's BOM is left alone.
	if got := TrimBOM(b, UTF16LE); len(got) != len(b) {
		t.Fatalf("TrimBOM with mismatched encoding trimmed %d bytes", len(b)-len(got))
	}
}
