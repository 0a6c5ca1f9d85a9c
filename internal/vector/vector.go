// Package vector provides fixed-width register values and the primitive
// operations the codec kernels are written against.
//
// Registers are modeled as little-endian uint64 lanes (SWAR): Vec128 maps
// to a 128-bit register, Vec256 to 256-bit, Vec512 to 512-bit. Every
// operation is branch-free per lane so the kernels built on top stay
// O(1) per window regardless of content.
package vector

import (
	"encoding/binary"
)

const (
	// Width128 is the byte width of a Vec128 window.
	Width128 = 16
	// Width256 is the byte width of a Vec256 window.
	Width256 = 32
	// Width512 is the byte width of a Vec512 window.
	Width512 = 64
)

// Vec128 is a 128-bit register: two little-endian uint64 lanes.
type Vec128 [2]uint64

// Vec256 is a 256-bit register: four little-endian uint64 lanes.
type Vec256 [4]uint64

// Vec512 is a 512-bit register: eight little-endian uint64 lanes.
type Vec512 [8]uint64

// LoadVec128 reads 16 bytes from b. b must hold at least 16 bytes.
func LoadVec128(b []byte) Vec128 {
	return Vec128{
		binary.LittleEndian.Uint64(b),
		binary.LittleEndian.Uint64(b[8:]),
	}
}

// LoadVec256 reads 32 bytes from b. b must hold at least 32 bytes.
func LoadVec256(b []byte) Vec256 {
	return Vec256{
		binary.LittleEndian.Uint64(b),
		binary.LittleEndian.Uint64(b[8:]),
		binary.LittleEndian.Uint64(b[16:]),
		binary.LittleEndian.Uint64(b[24:]),
	}
}

// LoadVec512 reads 64 bytes from b. b must hold at least 64 bytes.
func LoadVec512(b []byte) Vec512 {
	var v Vec512
	for i := range v {
		v[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
	return v
}

// Store writes the register to dst. dst must hold at least 16 bytes.
func (v Vec128) Store(dst []byte) {
	binary.LittleEndian.PutUint64(dst, v[0])
	binary.LittleEndian.PutUint64(dst[8:], v[1])
}

// Store writes the register to dst. dst must hold at least 32 bytes.
func (v Vec256) Store(dst []byte) {
	for i, w := range v {
		binary.LittleEndian.PutUint64(dst[8*i:], w)
	}
}

// Store writes the register to dst. dst must hold at least 64 bytes.
func (v Vec512) Store(dst []byte) {
	for i, w := range v {
		binary.LittleEndian.PutUint64(dst[8*i:], w)
	}
}

// Broadcast128 fills every lane with the same 64-bit pattern.
func Broadcast128(pattern uint64) Vec128 { return Vec128{pattern, pattern} }

// Broadcast256 fills every lane with the same 64-bit pattern.
func Broadcast256(pattern uint64) Vec256 {
	return Vec256{pattern, pattern, pattern, pattern}
}

// Broadcast512 fills every lane with the same 64-bit pattern.
func Broadcast512(pattern uint64) Vec512 {
	var v Vec512
	for i := range v {
		v[i] = pattern
	}
	return v
}

// Or returns the bitwise OR of two registers.
func (v Vec128) Or(w Vec128) Vec128 { return Vec128{v[0] | w[0], v[1] | w[1]} }

// And returns the bitwise AND of two registers.
func (v Vec128) And(w Vec128) Vec128 { return Vec128{v[0] & w[0], v[1] & w[1]} }

// Xor returns the bitwise XOR of two registers.
func (v Vec128) Xor(w Vec128) Vec128 { return Vec128{v[0] ^ w[0], v[1] ^ w[1]} }

// AndNot returns v AND NOT w.
func (v Vec128) AndNot(w Vec128) Vec128 { return Vec128{v[0] &^ w[0], v[1] &^ w[1]} }

// IsZero reports whether every lane is zero.
func (v Vec128) IsZero() bool { return v[0]|v[1] == 0 }

// Or returns the bitwise OR of two registers.
func (v Vec256) Or(w Vec256) Vec256 {
	return Vec256{v[0] | w[0], v[1] | w[1], v[2] | w[2], v[3] | w[3]}
}

// And returns the bitwise AND of two registers.
func (v Vec256) And(w Vec256) Vec256 {
	return Vec256{v[0] & w[0], v[1] & w[1], v[2] & w[2], v[3] & w[3]}
}

// Xor returns the bitwise XOR of two registers.
func (v Vec256) Xor(w Vec256) Vec256 {
	return Vec256{v[0] ^ w[0], v[1] ^ w[1], v[2] ^ w[2], v[3] ^ w[3]}
}

// AndNot returns v AND NOT w.
func (v Vec256) AndNot(w Vec256) Vec256 {
	return Vec256{v[0] &^ w[0], v[1] &^ w[1], v[2] &^ w[2], v[3] &^ w[3]}
}

// IsZero reports whether every lane is zero.
func (v Vec256) IsZero() bool { return v[0]|v[1]|v[2]|v[3] == 0 }

// Or returns the bitwise OR of two registers.
func (v Vec512) Or(w Vec512) Vec512 {
	var r Vec512
	for i := range r {
		r[i] = v[i] | w[i]
	}
	return r
}

// And returns the bitwise AND of two registers.
func (v Vec512) And(w Vec512) Vec512 {
	var r Vec512
	for i := range r {
		r[i] = v[i] & w[i]
	}
	return r
}

// Xor returns the bitwise XOR of two registers.
func (v Vec512) Xor(w Vec512) Vec512 {
	var r Vec512
	for i := range r {
		r[i] = v[i] ^ w[i]
	}
	return r
}

// AndNot returns v AND NOT w.
func (v Vec512) AndNot(w Vec512) Vec512 {
	var r Vec512
	for i := range r {
		r[i] = v[i] &^ w[i]
	}
	return r
}

// IsZero reports whether every lane is zero.
func (v Vec512) IsZero() bool {
	var acc uint64
	for _, w := range v {
		acc |= w
	}
	return acc == 0
}

// MoveMask returns the high bit of each of the 16 bytes as a bitmask,
// byte 0 in bit 0.
func (v Vec128) MoveMask() uint64 {
	return moveMaskWord(v[0]) | moveMaskWord(v[1])<<8
}

// MoveMask returns the high bit of each of the 32 bytes as a bitmask.
func (v Vec256) MoveMask() uint64 {
	return moveMaskWord(v[0]) | moveMaskWord(v[1])<<8 |
		moveMaskWord(v[2])<<16 | moveMaskWord(v[3])<<24
}

// MoveMask returns the high bit of each of the 64 bytes as a bitmask.
func (v Vec512) MoveMask() uint64 {
	var m uint64
	for i, w := range v {
		m |= moveMaskWord(w) << (8 * i)
	}
	return m
}

// Swap16 reverses the byte order within every 16-bit unit.
func (v Vec128) Swap16() Vec128 {
	return Vec128{swap16Word(v[0]), swap16Word(v[1])}
}

// Swap16 reverses the byte order within every 16-bit unit.
func (v Vec256) Swap16() Vec256 {
	return Vec256{swap16Word(v[0]), swap16Word(v[1]), swap16Word(v[2]), swap16Word(v[3])}
}

// Swap16 reverses the byte order within every 16-bit unit.
func (v Vec512) Swap16() Vec512 {
	var r Vec512
	for i, w := range v {
		r[i] = swap16Word(w)
	}
	return r
}

// HasZero16 reports whether any 16-bit unit is zero.
func (v Vec128) HasZero16() bool {
	return hasZero16Word(v[0]) || hasZero16Word(v[1])
}

// HasZero16 reports whether any 16-bit unit is zero.
func (v Vec256) HasZero16() bool {
	return hasZero16Word(v[0]) || hasZero16Word(v[1]) ||
		hasZero16Word(v[2]) || hasZero16Word(v[3])
}

// HasZero16 reports whether any 16-bit unit is zero.
func (v Vec512) HasZero16() bool {
	for _, w := range v {
		if hasZero16Word(w) {
			return true
		}
	}
	return false
}

// MoveMask64 gathers bit 7 of each byte of a single 64-bit lane into the
// low 8 bits. Exposed for kernels that classify bytes word-wise.
func MoveMask64(w uint64) uint64 { return moveMaskWord(w) }

// moveMaskWord gathers bit 7 of each byte of w into the low 8 bits.
// The multiply constant routes byte j's high bit to bit 56+j; the
// positions 7(k+1)+8j are pairwise distinct so no carries occur.
func moveMaskWord(w uint64) uint64 {
	x := (w >> 7) & 0x0101010101010101
	return (x * 0x0102040810204080) >> 56
}

func swap16Word(w uint64) uint64 {
	return (w&0xFF00FF00FF00FF00)>>8 | (w&0x00FF00FF00FF00FF)<<8
}

// hasZero16Word is the 16-bit-lane variant of the classic SWAR
// zero-byte test.
func hasZero16Word(w uint64) bool {
	return (w-0x0001000100010001)&^w&0x8000800080008000 != 0
}

// Widen8To16 spreads the 8 bytes of w into 8 little-endian 16-bit units
// with zero high bytes: lo holds bytes 0-3, hi bytes 4-7.
func Widen8To16(w uint64) (lo, hi uint64) {
	lo = spread4(w & 0xFFFFFFFF)
	hi = spread4(w >> 32)
	return lo, hi
}

// Narrow16To8 packs 8 little-endian 16-bit units whose high bytes are
// zero back into 8 bytes. The inverse of Widen8To16 for in-range input.
func Narrow16To8(lo, hi uint64) uint64 {
	return pack4(lo) | pack4(hi)<<32
}

func spread4(x uint64) uint64 {
	x = (x | x<<16) & 0x0000FFFF0000FFFF
	x = (x | x<<8) & 0x00FF00FF00FF00FF
	return x
}

func pack4(x uint64) uint64 {
	x &= 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	x = (x | x>>16) & 0x00000000FFFFFFFF
	return x
}
