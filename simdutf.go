// Package simdutf validates and transcodes buffers between UTF-8,
// UTF-16 (little or big endian) and UTF-32 at batch speed.
//
// All buffers are byte spans with explicit lengths: UTF-16 buffers hold
// 16-bit code units in the byte order named by the entry point, UTF-32
// buffers hold little-endian 32-bit units. The engine never reads past
// the given length, never mutates input, and writes only what a Result
// reports as written.
//
// Each public operation forwards to the most capable implementation
// variant the host CPU supports, selected once per process. Conversion
// destinations must be sized with the matching length function; an
// undersized destination is a caller contract violation, not a
// recoverable error. Every call is stateless past the one-time variant
// selection, so any number of calls may run concurrently on independent
// buffers.
package simdutf

import (
	"github.com/biggeezerdevelopment/simdutf-go/internal/codec"
)

// Implementation returns the name of the variant selected for this
// process (e.g. "avx2", "neon", "scalar").
func Implementation() string {
	return codec.Active().Name()
}

// Implementations describes every compiled-in variant in priority order;
// exactly one is marked Selected.
func Implementations() []Descriptor {
	return codec.Descriptors()
}

// ValidateUTF8 reports whether b is well-formed UTF-8.
func ValidateUTF8(b []byte) bool { return codec.Active().ValidateUTF8(b) }

// ValidateUTF8WithErrors validates b; on failure the Result carries the
// error kind and the byte offset of the first invalid sequence.
func ValidateUTF8WithErrors(b []byte) Result { return codec.Active().ValidateUTF8WithErrors(b) }

// ValidateUTF16LE reports whether b is well-formed UTF-16LE.
func ValidateUTF16LE(b []byte) bool { return codec.Active().ValidateUTF16LE(b) }

// ValidateUTF16BE reports whether b is well-formed UTF-16BE.
func ValidateUTF16BE(b []byte) bool { return codec.Active().ValidateUTF16BE(b) }

// ValidateUTF16LEWithErrors validates b; offsets are 16-bit unit indices.
func ValidateUTF16LEWithErrors(b []byte) Result { return codec.Active().ValidateUTF16LEWithErrors(b) }

// ValidateUTF16BEWithErrors validates b; offsets are 16-bit unit indices.
func ValidateUTF16BEWithErrors(b []byte) Result { return codec.Active().ValidateUTF16BEWithErrors(b) }

// ValidateUTF32 reports whether b is well-formed UTF-32.
func ValidateUTF32(b []byte) bool { return codec.Active().ValidateUTF32(b) }

// ValidateUTF32WithErrors validates b; offsets are 32-bit unit indices.
func ValidateUTF32WithErrors(b []byte) Result { return codec.Active().ValidateUTF32WithErrors(b) }

// ConvertUTF8ToUTF16LE transcodes src into dst, which must hold at least
// UTF16LengthFromUTF8(src) units. Count is in 16-bit units.
func ConvertUTF8ToUTF16LE(src, dst []byte) Result {
	return codec.Active().ConvertUTF8ToUTF16LE(src, dst)
}

// ConvertUTF8ToUTF16BE is ConvertUTF8ToUTF16LE with big-endian output.
func ConvertUTF8ToUTF16BE(src, dst []byte) Result {
	return codec.Active().ConvertUTF8ToUTF16BE(src, dst)
}

// ConvertUTF8ToUTF32 transcodes src into dst, which must hold at least
// UTF32LengthFromUTF8(src) units. Count is in 32-bit units.
func ConvertUTF8ToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertUTF8ToUTF32(src, dst)
}

// ConvertUTF16LEToUTF8 transcodes src into dst, which must hold at least
// UTF8LengthFromUTF16LE(src) bytes. Count is in bytes.
func ConvertUTF16LEToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertUTF16LEToUTF8(src, dst)
}

// ConvertUTF16BEToUTF8 is ConvertUTF16LEToUTF8 for big-endian input.
func ConvertUTF16BEToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertUTF16BEToUTF8(src, dst)
}

// ConvertUTF16LEToUTF32 transcodes src into dst, which must hold at
// least UTF32LengthFromUTF16LE(src) units. Count is in 32-bit units.
func ConvertUTF16LEToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertUTF16LEToUTF32(src, dst)
}

// ConvertUTF16BEToUTF32 is ConvertUTF16LEToUTF32 for big-endian input.
func ConvertUTF16BEToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertUTF16BEToUTF32(src, dst)
}

// ConvertUTF32ToUTF8 transcodes src into dst, which must hold at least
// UTF8LengthFromUTF32(src) bytes. Count is in bytes.
func ConvertUTF32ToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertUTF32ToUTF8(src, dst)
}

// ConvertUTF32ToUTF16LE transcodes src into dst, which must hold at
// least UTF16LengthFromUTF32(src) units. Count is in 16-bit units.
func ConvertUTF32ToUTF16LE(src, dst []byte) Result {
	return codec.Active().ConvertUTF32ToUTF16LE(src, dst)
}

// ConvertUTF32ToUTF16BE is ConvertUTF32ToUTF16LE with big-endian output.
func ConvertUTF32ToUTF16BE(src, dst []byte) Result {
	return codec.Active().ConvertUTF32ToUTF16BE(src, dst)
}

// ChangeEndiannessUTF16 swaps the byte order of every 16-bit unit in src
// into dst. src and dst must not overlap.
func ChangeEndiannessUTF16(src, dst []byte) Result {
	return codec.Active().ChangeEndiannessUTF16(src, dst)
}

// ConvertValidUTF8ToUTF16LE transcodes src without validating it. The
// caller guarantees src is well-formed; output on malformed input is
// unspecified (but the call never reads or writes out of bounds).
func ConvertValidUTF8ToUTF16LE(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF8ToUTF16LE(src, dst)
}

// ConvertValidUTF8ToUTF16BE is the non-validating twin of
// ConvertUTF8ToUTF16BE.
func ConvertValidUTF8ToUTF16BE(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF8ToUTF16BE(src, dst)
}

// ConvertValidUTF8ToUTF32 is the non-validating twin of
// ConvertUTF8ToUTF32.
func ConvertValidUTF8ToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF8ToUTF32(src, dst)
}

// ConvertValidUTF16LEToUTF8 is the non-validating twin of
// ConvertUTF16LEToUTF8.
func ConvertValidUTF16LEToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF16LEToUTF8(src, dst)
}

// ConvertValidUTF16BEToUTF8 is the non-validating twin of
// ConvertUTF16BEToUTF8.
func ConvertValidUTF16BEToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF16BEToUTF8(src, dst)
}

// ConvertValidUTF16LEToUTF32 is the non-validating twin of
// ConvertUTF16LEToUTF32.
func ConvertValidUTF16LEToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF16LEToUTF32(src, dst)
}

// ConvertValidUTF16BEToUTF32 is the non-validating twin of
// ConvertUTF16BEToUTF32.
func ConvertValidUTF16BEToUTF32(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF16BEToUTF32(src, dst)
}

// ConvertValidUTF32ToUTF8 is the non-validating twin of
// ConvertUTF32ToUTF8.
func ConvertValidUTF32ToUTF8(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF32ToUTF8(src, dst)
}

// ConvertValidUTF32ToUTF16LE is the non-validating twin of
// ConvertUTF32ToUTF16LE.
func ConvertValidUTF32ToUTF16LE(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF32ToUTF16LE(src, dst)
}

// ConvertValidUTF32ToUTF16BE is the non-validating twin of
// ConvertUTF32ToUTF16BE.
func ConvertValidUTF32ToUTF16BE(src, dst []byte) Result {
	return codec.Active().ConvertValidUTF32ToUTF16BE(src, dst)
}

// CountUTF8 returns the number of code points in well-formed UTF-8.
func CountUTF8(b []byte) int { return codec.Active().CountUTF8(b) }

// CountUTF16LE returns the number of code points in well-formed UTF-16LE.
func CountUTF16LE(b []byte) int { return codec.Active().CountUTF16LE(b) }

// CountUTF16BE returns the number of code points in well-formed UTF-16BE.
func CountUTF16BE(b []byte) int { return codec.Active().CountUTF16BE(b) }

// CountUTF32 returns the number of code points in well-formed UTF-32.
func CountUTF32(b []byte) int { return codec.Active().CountUTF32(b) }

// UTF16LengthFromUTF8 returns the 16-bit unit count ConvertUTF8ToUTF16*
// will write for well-formed b.
func UTF16LengthFromUTF8(b []byte) int { return codec.Active().UTF16LengthFromUTF8(b) }

// UTF32LengthFromUTF8 returns the 32-bit unit count ConvertUTF8ToUTF32
// will write for well-formed b.
func UTF32LengthFromUTF8(b []byte) int { return codec.Active().UTF32LengthFromUTF8(b) }

// UTF8LengthFromUTF16LE returns the byte count ConvertUTF16LEToUTF8 will
// write for well-formed b.
func UTF8LengthFromUTF16LE(b []byte) int { return codec.Active().UTF8LengthFromUTF16LE(b) }

// UTF8LengthFromUTF16BE returns the byte count ConvertUTF16BEToUTF8 will
// write for well-formed b.
func UTF8LengthFromUTF16BE(b []byte) int { return codec.Active().UTF8LengthFromUTF16BE(b) }

// UTF32LengthFromUTF16LE returns the 32-bit unit count
// ConvertUTF16LEToUTF32 will write for well-formed b.
func UTF32LengthFromUTF16LE(b []byte) int { return codec.Active().UTF32LengthFromUTF16LE(b) }

// UTF32LengthFromUTF16BE returns the 32-bit unit count
// ConvertUTF16BEToUTF32 will write for well-formed b.
func UTF32LengthFromUTF16BE(b []byte) int { return codec.Active().UTF32LengthFromUTF16BE(b) }

// UTF8LengthFromUTF32 returns the byte count ConvertUTF32ToUTF8 will
// write for well-formed b.
func UTF8LengthFromUTF32(b []byte) int { return codec.Active().UTF8LengthFromUTF32(b) }

// UTF16LengthFromUTF32 returns the 16-bit unit count
// ConvertUTF32ToUTF16* will write for well-formed b.
func UTF16LengthFromUTF32(b []byte) int { return codec.Active().UTF16LengthFromUTF32(b) }
