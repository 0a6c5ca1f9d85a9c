package codec

import (
	"encoding/binary"
)

func unitsLE(units []uint16) []byte {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func unitsBE(units []uint16) []byte {
	b := make([]byte, 2*len(units))
	for i, u := range units {
		binary.BigEndian.PutUint16(b[2*i:], u)
	}
	return b
}

func units32(units []uint32) []byte {
	b := make([]byte, 4*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint32(b[4*i:], u)
	}
	return b
}
