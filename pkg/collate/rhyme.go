package collate

import "github.com/yaklabco/rhymesort/pkg/lines"

// Rhyme returns the rhyme comparison over buf.
func Rhyme(buf []byte) Func {
	return func(a, b lines.Span) int {
		return CompareRhyme(buf, a, b)
	}
}

// CompareRhyme compares two lines of buf from their last letter backward.
func CompareRhyme(buf []byte, a, b lines.Span) int {
	left := lines.Bytes(buf, lines.Trim(buf, a, lines.Backward))
	right := lines.Bytes(buf, lines.Trim(buf, b, lines.Backward))

	n := min(len(left), len(right))
	for i := 1; i <= n; i++ {
		if c := sign(fold(left[len(left)-i]), fold(right[len(right)-i])); c != 0 {
			return c
		}
	}
	return 0
}
