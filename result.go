package simdutf

import (
	"github.com/biggeezerdevelopment/simdutf-go/internal/codec"
)

// Result reports the outcome of a validation or conversion; see
// codec.Result for field semantics. Offsets are code-unit indices of the
// source encoding and follow a strict first-offset-wins policy.
type Result = codec.Result

// ErrorKind classifies validation failures.
type ErrorKind = codec.ErrorKind

// Descriptor describes one implementation variant.
type Descriptor = codec.Descriptor

const (
	NoError                 = codec.NoError
	TruncatedSequence       = codec.TruncatedSequence
	InvalidLeadUnit         = codec.InvalidLeadUnit
	InvalidContinuationUnit = codec.InvalidContinuationUnit
	OverlongOrOutOfRange    = codec.OverlongOrOutOfRange
	LoneSurrogate           = codec.LoneSurrogate
)
