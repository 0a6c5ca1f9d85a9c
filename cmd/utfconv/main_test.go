package main

import (
	"testing"

	"github.com/biggeezerdevelopment/simdutf-go/internal/codec"
)

// Lossy transcoding must survive arbitrary malformed input: the strict
// length estimators under-count bytes they would never see in
// well-formed text (a stray continuation byte is charged zero UTF-16
// units but still produces one), so the lossy path sizes by worst case.
func TestTranscodeLossyMalformed(t *testing.T) {
	impl := codec.Active()

	cases := []struct {
		name string
		from codec.Encoding
		in   []byte
	}{
		{"lone continuation", codec.UTF8, []byte{0x80}},
		{"continuation run", codec.UTF8, []byte{0x80, 0x80, 0x80, 0x80}},
		{"continuation after ascii", codec.UTF8, []byte{0x41, 0x80, 0x42}},
		{"truncated three-byte", codec.UTF8, []byte{0xE2, 0x82}},
		{"truncated four-byte", codec.UTF8, []byte{0xF0, 0x9F, 0x98}},
		{"bad lead", codec.UTF8, []byte{0xFF, 0x41}},
		{"lone high surrogate", codec.UTF16LE, []byte{0x00, 0xD8}},
		{"lone low surrogate", codec.UTF16LE, []byte{0x00, 0xDC, 0x41, 0x00}},
		{"odd length", codec.UTF16LE, []byte{0x41, 0x00, 0x42}},
		{"out of range", codec.UTF32LE, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"surrogate unit", codec.UTF32LE, []byte{0x00, 0xD8, 0x00, 0x00}},
	}

	targets := map[codec.Encoding][]codec.Encoding{
		codec.UTF8:    {codec.UTF16LE, codec.UTF16BE, codec.UTF32LE},
		codec.UTF16LE: {codec.UTF8, codec.UTF32LE},
		codec.UTF32LE: {codec.UTF8, codec.UTF16LE, codec.UTF16BE},
	}

	for _, tc := range cases {
		for _, to := range targets[tc.from] {
			t.Run(tc.name+"/to "+to.String(), func(t *testing.T) {
				if _, err := transcode(impl, tc.from, to, tc.in, false); err == nil {
					t.Fatal("strict mode accepted malformed input")
				}
				out, err := transcode(impl, tc.from, to, tc.in, true)
				if err != nil {
					t.Fatalf("lossy mode failed: %v", err)
				}
				if unit := unitSize(to); len(out)%unit != 0 {
					t.Fatalf("lossy output length %d not a multiple of %d", len(out), unit)
				}
			})
		}
	}
}

func unitSize(e codec.Encoding) int {
	switch e {
	case codec.UTF16LE, codec.UTF16BE:
		return 2
	case codec.UTF32LE:
		return 4
	default:
		return 1
	}
}

func TestTranscodeStrictRoundTrip(t *testing.T) {
	impl := codec.Active()
	text := []byte("grüße, 世界 🌍")

	u16, err := transcode(impl, codec.UTF8, codec.UTF16LE, text, false)
	if err != nil {
		t.Fatal(err)
	}
	back, err := transcode(impl, codec.UTF16LE, codec.UTF8, u16, false)
	if err != nil {
		t.Fatal(err)
	}
	if string(back) != string(text) {
		t.Fatalf("round trip mismatch: %q", back)
	}

	be, err := transcode(impl, codec.UTF16LE, codec.UTF16BE, u16, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(be) != len(u16) {
		t.Fatalf("endianness swap changed length: %d vs %d", len(be), len(u16))
	}
}
