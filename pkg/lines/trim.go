package lines

// Direction selects which end of a span Trim narrows.
type Direction int

const (
	// Forward skips non-alphabetic bytes at the start of a span.
	Forward Direction = iota

	// Backward skips non-alphabetic bytes at the end of a span.
	Backward
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// Trim returns the part of s left after skipping non-alphabetic bytes from
// one end. Forward trims the start, Backward trims the end. A span without
// any letters yields a zero-length span.
func Trim(buf []byte, s Span, dir Direction) Span {
	checkSpan(buf, s)

	start, end := s.Start, s.End()

	switch dir {
	case Forward:
		for start < end && !IsAlpha(buf[start]) {
			start++
		}
	case Backward:
		for end > start && !IsAlpha(buf[end-1]) {
			end--
		}
	}

	return Span{Start: start, Len: end - start}
}
