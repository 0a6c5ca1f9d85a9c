package simdutf

import (
	"github.com/biggeezerdevelopment/simdutf-go/internal/codec"
)

// Encoding identifies one of the supported Unicode encodings.
type Encoding = codec.Encoding

// EncodingSet is a bitmask of candidate encodings.
type EncodingSet = codec.EncodingSet

const (
	UTF8    = codec.UTF8
	UTF16LE = codec.UTF16LE
	UTF16BE = codec.UTF16BE
	UTF32LE = codec.UTF32LE
	UTF32BE = codec.UTF32BE
)

// DetectEncodings guesses which encodings b could be in, from its
// byte-order mark if present, otherwise from validity under each
// encoding's rules. It is a best-effort hint: callers must still
// validate under the encoding they choose.
func DetectEncodings(b []byte) EncodingSet {
	return codec.Active().DetectEncodings(b)
}

// TrimBOM strips e's byte-order mark from the front of b, if present.
func TrimBOM(b []byte, e Encoding) []byte {
	return codec.TrimBOM(b, e)
}
