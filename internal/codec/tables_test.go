package codec

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestWindowTableInvariants(t *testing.T) {
	for m := range windowTable {
		e := &windowTable[m]
		if int(e.n) != bits.OnesCount(uint(m)) {
			t.Fatalf("mask %#x: n = %d, want %d", m, e.n, bits.OnesCount(uint(m)))
		}
		sum := 0
		for k := 0; k < int(e.n); k++ {
			if e.lens[k] == 0 {
				t.Fatalf("mask %#x: zero-length code point %d", m, k)
			}
			sum += int(e.lens[k])
		}
		if sum != int(e.consumed) {
			t.Fatalf("mask %#x: lengths sum to %d, consumed = %d", m, sum, e.consumed)
		}
		if m != 0 && int(e.consumed) != bits.Len(uint(m)) {
			t.Fatalf("mask %#x: consumed = %d, want %d", m, e.consumed, bits.Len(uint(m)))
		}
	}
}

// The specialized masks in decodeWindow are hand-derived; check them
// against the general table entries they shadow.
func TestSpecializedMasks(t *testing.T) {
	checks := []struct {
		mask     uint32
		n        int
		eachLen  uint8
		consumed int
	}{
		{maskAllOneByte, 12, 1, 12},
		{maskAllTwoByte, 6, 2, 12},
		{maskAllThreeByte, 4, 3, 12},
	}
	for _, c := range checks {
		e := &windowTable[c.mask]
		if int(e.n) != c.n || int(e.consumed) != c.consumed {
			t.Fatalf("mask %#x: table has n=%d consumed=%d, specialization assumes n=%d consumed=%d",
				c.mask, e.n, e.consumed, c.n, c.consumed)
		}
		for k := 0; k < c.n; k++ {
			if e.lens[k] != c.eachLen {
				t.Fatalf("mask %#x: lens[%d] = %d, want %d", c.mask, k, e.lens[k], c.eachLen)
			}
		}
	}
}

// decodeWindow must agree with the one-sequence scalar decoder on every
// window of well-formed text, regardless of how code points straddle the
// window boundary.
func TestDecodeWindowMatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	var cps [maskBits]rune
	for iter := 0; iter < 1000; iter++ {
		b := randomValidUTF8(rng, 40)
		pos := 0
		for pos+windowBytes <= len(b) {
			n, consumed, ok := decodeWindow(b[pos:], &cps)
			if !ok {
				t.Fatalf("decodeWindow failed on valid input at %d (% x)", pos, b[pos:pos+windowBytes])
			}
			p := pos
			for k := 0; k < n; k++ {
				cp, size, kind := decodeSequence(b[p:])
				if kind != NoError {
					t.Fatalf("scalar rejected valid input at %d: %v", p, kind)
				}
				if cp != cps[k] {
					t.Fatalf("window cp %d = %#x, scalar = %#x", k, cps[k], cp)
				}
				p += size
			}
			if p-pos != consumed {
				t.Fatalf("window consumed %d, scalar consumed %d", consumed, p-pos)
			}
			pos = p
		}
	}
}

// Malformed windows must refuse to decode rather than emit wrong output;
// the engines then re-run the scalar decoder for exact diagnostics.
func TestDecodeWindowRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"overlong pair run", []byte{0xC0, 0x80, 0xC0, 0x80, 0xC0, 0x80, 0xC0, 0x80, 0xC0, 0x80, 0xC0, 0x80, 0x41, 0x41, 0x41, 0x41}},
		{"surrogate three byte", []byte{0xED, 0xA0, 0x80, 0xED, 0xA0, 0x80, 0xED, 0xA0, 0x80, 0xED, 0xA0, 0x80, 0x41, 0x41, 0x41, 0x41}},
		{"lead in ascii window", []byte{0x41, 0x41, 0x41, 0xC3, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41}},
		{"five continuations", []byte{0xF0, 0x80, 0x80, 0x80, 0x80, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41, 0x41}},
	}
	var cps [maskBits]rune
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, ok := decodeWindow(tc.in, &cps); ok {
				t.Fatalf("malformed window decoded")
			}
		})
	}
}
