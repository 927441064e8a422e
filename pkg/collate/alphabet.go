package collate

import "github.com/yaklabco/rhymesort/pkg/lines"

// Alphabetic returns the alphabetic comparison over buf.
func Alphabetic(buf []byte) Func {
	return func(a, b lines.Span) int {
		return CompareAlphabetic(buf, a, b)
	}
}

// CompareAlphabetic compares two lines of buf from their first letter onward.
func CompareAlphabetic(buf []byte, a, b lines.Span) int {
	left := lines.Bytes(buf, lines.Trim(buf, a, lines.Forward))
	right := lines.Bytes(buf, lines.Trim(buf, b, lines.Forward))

	n := min(len(left), len(right))
	for i := range n {
		if c := sign(fold(left[i]), fold(right[i])); c != 0 {
			return c
		}
	}
	return 0
}
