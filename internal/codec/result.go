package codec

// ErrorKind classifies why a buffer failed validation or conversion.
type ErrorKind uint8

const (
	// NoError means the operation completed on well-formed input.
	NoError ErrorKind = iota
	// TruncatedSequence means the input ends in the middle of a
	// multi-unit sequence.
	TruncatedSequence
	// InvalidLeadUnit means a unit cannot start any sequence.
	InvalidLeadUnit
	// InvalidContinuationUnit means a continuation unit is missing its
	// marker bits.
	InvalidContinuationUnit
	// OverlongOrOutOfRange means the decoded value is outside the legal
	// envelope for its encoded length: overlong forms, surrogate code
	// points in UTF-8/UTF-32, and values beyond 0x10FFFF.
	OverlongOrOutOfRange
	// LoneSurrogate means a UTF-16 surrogate unit without its pair.
	LoneSurrogate
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case TruncatedSequence:
		return "truncated sequence"
	case InvalidLeadUnit:
		return "invalid lead unit"
	case InvalidContinuationUnit:
		return "invalid continuation unit"
	case OverlongOrOutOfRange:
		return "overlong or out-of-range"
	case LoneSurrogate:
		return "lone surrogate"
	}
	return "unknown"
}

// Result reports the outcome of a validation or conversion call.
//
// On success Err is NoError and Count holds the number of code units
// written (conversions) or validated (validations). On failure Offset
// holds the source code-unit index of the first offending unit, scanning
// left to right; every variant reports the same offset for the same
// input.
type Result struct {
	Count  int
	Err    ErrorKind
	Offset int
}

// Ok reports whether the operation succeeded.
func (r Result) Ok() bool { return r.Err == NoError }

func success(count int) Result { return Result{Count: count} }

func failure(kind ErrorKind, offset int) Result {
	return Result{Err: kind, Offset: offset}
}
