// Package lines splits an immutable text buffer into zero-copy line spans.
//
// A Collection never copies or rewrites the bytes it was built from. Spans are
// (offset, length) pairs into that buffer and may be reordered freely; the
// buffer itself keeps the file's original layout, so it can always be
// replayed verbatim.
package lines

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	// Terminator is the byte that ends a line.
	Terminator byte = '\n'

	// Sentinel marks the end of usable data when it appears in a buffer.
	// Nothing after the first sentinel is split into lines.
	Sentinel byte = 0
)

// Span is a non-owning view of one line: Len content bytes starting at Start.
// The terminator is never part of a span.
type Span struct {
	Start int
	Len   int
}

// End returns the offset one past the last content byte.
func (s Span) End() int {
	return s.Start + s.Len
}

// Size returns the record size of the line: its content plus the terminator slot.
func (s Span) Size() int {
	return s.Len + 1
}

// Trivial reports whether the line is too short to be worth sorting.
// Empty and single-byte lines are trivial.
func (s Span) Trivial() bool {
	return s.Len <= 1
}

// Bytes returns the bytes of span s within buf.
// It panics if s does not lie inside buf; spans are only ever produced by
// Extract and Trim, so a bad span is a programming error.
func Bytes(buf []byte, s Span) []byte {
	checkSpan(buf, s)
	return buf[s.Start:s.End()]
}

func checkSpan(buf []byte, s Span) {
	if s.Start < 0 || s.Len < 0 || s.End() > len(buf) {
		panic(fmt.Sprintf("lines: span [%d,%d) out of range for buffer of %d bytes",
			s.Start, s.End(), len(buf)))
	}
}

// Collection is the result of splitting a buffer into lines.
type Collection struct {
	// Buffer is the original input. It is never modified.
	Buffer []byte

	// Spans holds one span per line, in file order.
	Spans []Span

	// Terminators holds the offset of every terminator byte that ended a line.
	Terminators []int

	// DataEnd is the offset where splitting stopped: len(Buffer), or the
	// offset of the first sentinel byte.
	DataEnd int
}

// Len returns the number of lines.
func (c *Collection) Len() int {
	return len(c.Spans)
}

// Line returns the content of the i-th line in file order.
func (c *Collection) Line(i int) []byte {
	return Bytes(c.Buffer, c.Spans[i])
}

// Clone returns a copy of the span slice that can be reordered independently.
func (c *Collection) Clone() []Span {
	out := make([]Span, len(c.Spans))
	copy(out, c.Spans)
	return out
}

// CountTrivial returns the number of trivial lines.
func (c *Collection) CountTrivial() int {
	return lo.CountBy(c.Spans, Span.Trivial)
}

// Truncated reports whether a sentinel byte cut the data short.
func (c *Collection) Truncated() bool {
	return c.DataEnd < len(c.Buffer)
}
